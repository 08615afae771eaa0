// Package metadata implement the HPGe detector metadata database.
//
// A database is a directory of per-detector YAML records named after the
// detector (eg. V09999A.yaml). It is normally a checkout of the private
// hardware-metadata repository; a limited public fallback is available for
// building geometries without access to it.
package metadata

import (
	"fmt"
)

// DetectorKind is the HPGe detector geometry family.
type DetectorKind string

// Detector geometry families used in the experiment.
const (
	KindCoax DetectorKind = "coax"
	KindBeGe DetectorKind = "bege"
	KindICPC DetectorKind = "icpc"
	KindPPC  DetectorKind = "ppc"
)

// Enrichment is the Ge-76 isotopic enrichment fraction with uncertainty.
type Enrichment struct {
	Val float64 `yaml:"val" json:"val"`
	Unc float64 `yaml:"unc,omitempty" json:"unc,omitempty"`
}

// Production describe the crystal production record.
type Production struct {
	Enrichment Enrichment `yaml:"enrichment" json:"enrichment"`
	Order      int        `yaml:"order,omitempty" json:"order,omitempty"`
	Slice      string     `yaml:"slice,omitempty" json:"slice,omitempty"`
}

// GrooveRadius is the inner and outer radius of the groove ring in mm.
type GrooveRadius struct {
	Outer float64 `yaml:"outer" json:"outer"`
	Inner float64 `yaml:"inner" json:"inner"`
}

// Groove describe the groove cut around the p+ contact.
type Groove struct {
	DepthInMM  float64      `yaml:"depth_in_mm" json:"depth_in_mm"`
	RadiusInMM GrooveRadius `yaml:"radius_in_mm" json:"radius_in_mm"`
}

// Contact describe the p+ contact dimple.
type Contact struct {
	RadiusInMM float64 `yaml:"radius_in_mm" json:"radius_in_mm"`
	DepthInMM  float64 `yaml:"depth_in_mm" json:"depth_in_mm"`
}

// Taper describe a conical cut on the crystal edge.
type Taper struct {
	AngleInDeg float64 `yaml:"angle_in_deg" json:"angle_in_deg"`
	HeightInMM float64 `yaml:"height_in_mm" json:"height_in_mm"`
}

// Tapers groups the crystal edge cuts.
type Tapers struct {
	Top    Taper `yaml:"top,omitempty" json:"top,omitempty"`
	Bottom Taper `yaml:"bottom,omitempty" json:"bottom,omitempty"`
}

// CrystalGeometry describe the crystal dimensions in mm.
type CrystalGeometry struct {
	HeightInMM float64 `yaml:"height_in_mm" json:"height_in_mm"`
	RadiusInMM float64 `yaml:"radius_in_mm" json:"radius_in_mm"`
	Groove     Groove  `yaml:"groove,omitempty" json:"groove,omitempty"`
	PPContact  Contact `yaml:"pp_contact,omitempty" json:"pp_contact,omitempty"`
	Taper      Tapers  `yaml:"taper,omitempty" json:"taper,omitempty"`

	// Borehole depth for inverted-coax and coax detectors, 0 otherwise.
	BoreholeDepthInMM  float64 `yaml:"borehole_depth_in_mm,omitempty" json:"borehole_depth_in_mm,omitempty"`
	BoreholeRadiusInMM float64 `yaml:"borehole_radius_in_mm,omitempty" json:"borehole_radius_in_mm,omitempty"`
}

// HPGe is one detector metadata record.
type HPGe struct {
	Name       string          `yaml:"name" json:"name"`
	Kind       DetectorKind    `yaml:"type" json:"type"`
	Production Production      `yaml:"production" json:"production"`
	Geometry   CrystalGeometry `yaml:"geometry" json:"geometry"`
}

// Validate checks the fields needed for geometry construction.
func (m HPGe) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("detector record has no name")
	}
	if m.Geometry.HeightInMM <= 0 {
		return fmt.Errorf("detector %s: height cannot be <= 0.0", m.Name)
	}
	if m.Geometry.RadiusInMM <= 0 {
		return fmt.Errorf("detector %s: radius cannot be <= 0.0", m.Name)
	}
	if m.Geometry.Groove.RadiusInMM.Inner > m.Geometry.Groove.RadiusInMM.Outer {
		return fmt.Errorf("detector %s: groove inner radius exceeds outer radius", m.Name)
	}
	return nil
}

// DB resolves detector metadata records by detector name.
type DB interface {
	Detector(name string) (HPGe, error)
}

// NotFoundError reported when no database entry exists for a detector.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no metadata record for detector %q", e.Name)
}
