package scarf

import (
	"math"

	"github.com/legend-exp/geom-scarf/geometry"
	"github.com/legend-exp/geom-scarf/metadata"
	"github.com/legend-exp/geom-scarf/setup"
)

// CrystalProfile builds the revolution profile of an HPGe crystal from
// its metadata record. The profile starts at the p+ face (z = 0) and
// walks the outline outward and up: contact dimple, groove, bottom taper,
// side wall, top taper and, for detectors that have one, the borehole.
func CrystalProfile(m metadata.HPGe) geometry.Profile {
	g := m.Geometry
	profile := geometry.Profile{}
	add := func(r, z float64) {
		profile.R = append(profile.R, r)
		profile.Z = append(profile.Z, z)
	}

	// p+ contact dimple at the bottom center
	if g.PPContact.DepthInMM > 0 {
		add(0, g.PPContact.DepthInMM)
		add(g.PPContact.RadiusInMM, g.PPContact.DepthInMM)
		add(g.PPContact.RadiusInMM, 0)
	} else {
		add(0, 0)
	}

	// groove ring around the contact
	if g.Groove.DepthInMM > 0 {
		add(g.Groove.RadiusInMM.Inner, 0)
		add(g.Groove.RadiusInMM.Inner, g.Groove.DepthInMM)
		add(g.Groove.RadiusInMM.Outer, g.Groove.DepthInMM)
		add(g.Groove.RadiusInMM.Outer, 0)
	}

	// bottom taper towards the side wall
	if taperRadius, ok := taperCut(g.Taper.Bottom, g.RadiusInMM); ok {
		add(taperRadius, 0)
		add(g.RadiusInMM, g.Taper.Bottom.HeightInMM)
	} else {
		add(g.RadiusInMM, 0)
	}

	// side wall and top taper
	if taperRadius, ok := taperCut(g.Taper.Top, g.RadiusInMM); ok {
		add(g.RadiusInMM, g.HeightInMM-g.Taper.Top.HeightInMM)
		add(taperRadius, g.HeightInMM)
	} else {
		add(g.RadiusInMM, g.HeightInMM)
	}

	// top face, with borehole for coax and inverted-coax detectors
	if g.BoreholeDepthInMM > 0 {
		add(g.BoreholeRadiusInMM, g.HeightInMM)
		add(g.BoreholeRadiusInMM, g.HeightInMM-g.BoreholeDepthInMM)
		add(0, g.HeightInMM-g.BoreholeDepthInMM)
	} else {
		add(0, g.HeightInMM)
	}

	return profile
}

// taperCut returns the radius at the taper end, or ok=false when the
// record carries no taper.
func taperCut(taper metadata.Taper, radius float64) (float64, bool) {
	if taper.HeightInMM <= 0 || taper.AngleInDeg <= 0 {
		return 0, false
	}
	cut := taper.HeightInMM * math.Tan(taper.AngleInDeg*math.Pi/180)
	return radius - cut, true
}

// buildHPGe constructs the crystal logical volume for one detector.
func buildHPGe(m metadata.HPGe, mats *MaterialRegistry, reg *setup.Registry) (*setup.LogicalVolume, error) {
	germanium, err := mats.EnrichedGermanium()
	if err != nil {
		return nil, err
	}
	return addPolycone(m.Name, CrystalProfile(m), germanium, setup.ColorRGBA{1, 1, 1, 1}, reg)
}
