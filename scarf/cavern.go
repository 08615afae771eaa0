package scarf

import (
	"math"

	"github.com/legend-exp/geom-scarf/geometry"
	"github.com/legend-exp/geom-scarf/setup"
)

// BuildCavern constructs the cavern shell and places it in the world
// volume.
//
// The cavern implementation is very simplified, consisting of an upper
// hemisphere representing the hill and a lower cylinder representing the
// ground.
func BuildCavern(
	cavern *CavernConfig,
	world *setup.LogicalVolume,
	mats *MaterialRegistry,
	reg *setup.Registry,
) error {
	rock, err := mats.Rock()
	if err != nil {
		return err
	}

	upper := &setup.Solid{
		Name: "upper_cavern",
		Geometry: setup.SphereSolid{
			RMin:   cavern.InnerRadiusInMM,
			RMax:   cavern.OuterRadiusInMM,
			SPhi:   0,
			DPhi:   2 * math.Pi,
			STheta: 0,
			DTheta: math.Pi / 2.0,
			NSlice: defaultNSlice,
			NStack: 180,
		},
	}
	if err := reg.AddSolid(upper); err != nil {
		return err
	}

	lower1 := &setup.Solid{
		Name: "lowercavern1",
		Geometry: setup.TubsSolid{
			RMin: 0,
			RMax: cavern.OuterRadiusInMM,
			Dz:   10000,
			SPhi: 0,
			DPhi: 2 * math.Pi,
		},
	}
	if err := reg.AddSolid(lower1); err != nil {
		return err
	}

	lower2 := &setup.Solid{
		Name: "lowercavern2",
		Geometry: setup.TubsSolid{
			RMin: 0,
			RMax: 1000,
			Dz:   4000,
			SPhi: 0,
			DPhi: 2 * math.Pi,
		},
	}
	if err := reg.AddSolid(lower2); err != nil {
		return err
	}

	// carve the experiment pit out of the ground block
	lower := &setup.Solid{
		Name: "lower_cavern",
		Geometry: setup.BooleanSolid{
			Operation:   setup.Subtraction,
			First:       lower1.Name,
			Second:      lower2.Name,
			Translation: geometry.Point{X: 0, Y: 0, Z: 3000},
		},
	}
	if err := reg.AddSolid(lower); err != nil {
		return err
	}

	cavernSolid := &setup.Solid{
		Name: "cavern",
		Geometry: setup.BooleanSolid{
			Operation:   setup.Union,
			First:       upper.Name,
			Second:      lower.Name,
			Translation: geometry.Point{X: 0, Y: 0, Z: -5000},
		},
	}
	if err := reg.AddSolid(cavernSolid); err != nil {
		return err
	}

	color := setup.ColorRGBA{0.5, 0.5, 0.5, 0.1}
	cavernLV := &setup.LogicalVolume{
		Name:     "cavern",
		Solid:    cavernSolid,
		Material: rock,
		Color:    &color,
	}
	if err := reg.AddVolume(cavernLV); err != nil {
		return err
	}

	_, err = placePV("cavern", cavernLV, world, 1500, reg)
	return err
}
