package scarf

import (
	"math"

	"github.com/legend-exp/geom-scarf/setup"
)

// Calibration source dimensions in mm.
const (
	sourceHeight = 10
	sourceRadius = 1
)

// BuildSource constructs the calibration source and places it into the
// liquid argon at the configured offset from the LAr center.
func BuildSource(
	source *SourceConfig,
	cryostat *Cryostat,
	mats *MaterialRegistry,
	reg *setup.Registry,
) error {
	iron, err := mats.Predefined("G4_Fe")
	if err != nil {
		return err
	}

	sourceLV, err := addTubs("source", setup.TubsSolid{
		RMin:   0,
		RMax:   sourceRadius,
		Dz:     sourceHeight,
		SPhi:   0,
		DPhi:   2 * math.Pi,
		NSlice: defaultNSlice,
	}, iron, reg)
	if err != nil {
		return err
	}

	zPos := cryostat.LArHeight/2.0 + source.PosFromLArCenter
	_, err = placePV("source", sourceLV, cryostat.LAr, zPos, reg)
	return err
}
