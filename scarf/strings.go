package scarf

import (
	"github.com/legend-exp/geom-scarf/metadata"
	"github.com/legend-exp/geom-scarf/setup"
)

// BuildStrings resolves the configured HPGe detectors in the metadata
// database and places them into the liquid argon. Detector channel UIDs
// are assigned sequentially in configuration order.
func BuildStrings(
	hpges []HPGeEntry,
	cryostat *Cryostat,
	db metadata.DB,
	mats *MaterialRegistry,
	reg *setup.Registry,
) error {
	for uid, entry := range hpges {
		record, err := db.Detector(entry.Name)
		if err != nil {
			return err
		}
		if record.Production.Enrichment.Val == 0 {
			record.Production.Enrichment.Val = 0.9
		}

		crystalLV, err := buildHPGe(record, mats, reg)
		if err != nil {
			return err
		}
		crystalLV.Detector = &setup.DetectorInfo{
			Type:     "germanium",
			UID:      uid,
			Metadata: record,
		}

		zPos := cryostat.LArHeight/2.0 + entry.PPlusPosFromLArCenter
		crystalPV, err := placePV(entry.Name, crystalLV, cryostat.LAr, zPos, reg)
		if err != nil {
			return err
		}

		if err := setGermaniumReflectivity(crystalPV, cryostat.LArPV, mats, reg); err != nil {
			return err
		}

		log.Debugf("placed detector %s (uid %d) at z=%f mm", entry.Name, uid, zPos)
	}
	return nil
}

// setGermaniumReflectivity attaches the germanium surface between the LAr
// and a crystal placement.
func setGermaniumReflectivity(crystalPV, larPV *setup.PhysicalVolume, mats *MaterialRegistry, reg *setup.Registry) error {
	toGermanium, err := mats.SurfaceToGermanium()
	if err != nil {
		return err
	}
	return reg.AddBorderSurface(&setup.BorderSurface{
		Name:    "bsurface_lar_ge_" + crystalPV.Name,
		First:   larPV,
		Second:  crystalPV,
		Surface: toGermanium,
	})
}
