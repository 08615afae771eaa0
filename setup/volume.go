package setup

import (
	"github.com/legend-exp/geom-scarf/geometry"
)

// ColorRGBA is a display color hint, each channel in [0, 1].
type ColorRGBA [4]float64

// DetectorInfo marks a logical volume as an active detector for the
// downstream simulation. It is serialized into GDML auxiliary tags.
type DetectorInfo struct {
	// Type of the readout, eg. "germanium" or "optical".
	Type string `json:"type"`

	// UID is the detector channel identifier, unique per geometry.
	UID int `json:"uid"`

	// Metadata carries the detector record the volume was built from.
	Metadata interface{} `json:"metadata,omitempty"`
}

// LogicalVolume binds a solid to a material.
type LogicalVolume struct {
	Name     string
	Solid    *Solid
	Material *Material

	// Color is an optional display hint.
	Color *ColorRGBA

	// Detector is set if the volume is an active detector.
	Detector *DetectorInfo

	// Daughters are placements inside this volume, maintained by
	// Registry.Place.
	Daughters []*PhysicalVolume
}

// PhysicalVolume is one placement of a logical volume inside a mother
// volume. Positions are in mm relative to the mother center.
type PhysicalVolume struct {
	Name     string
	Volume   *LogicalVolume
	Mother   *LogicalVolume
	Position geometry.Point
	Rotation geometry.Rotation
}
