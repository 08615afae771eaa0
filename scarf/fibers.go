package scarf

import (
	"fmt"
	"math"

	"github.com/legend-exp/geom-scarf/setup"
)

// Fiber cross section in mm and default TPB coating thickness in µm.
const (
	fiberDim       = 1
	tpbThicknessUM = 1
)

// SiPM channel dimensions for the detailed shroud, in mm.
const (
	sipmHeight = 1
	// base UID of the fiber core channel in simplified mode
	fiberCoreUID = 100
)

// gap between neighbouring fiber modules in rad.
const moduleGapRad = 0.035

// BuildFiberShroud constructs the configured fiber shroud variant inside
// the liquid argon.
func BuildFiberShroud(
	shroud *FiberShroudConfig,
	cryostat *Cryostat,
	mats *MaterialRegistry,
	reg *setup.Registry,
) error {
	switch shroud.Mode {
	case ShroudSimplified:
		return buildSimplifiedShroud(shroud, cryostat, mats, reg)
	case ShroudDetailed:
		return buildDetailedShroud(shroud, cryostat, mats, reg)
	default:
		return fmt.Errorf("unsupported fiber shroud mode %q", shroud.Mode)
	}
}

// buildSimplifiedShroud builds the shroud as two thin coaxial tube
// shells: a TPB coating with the fiber core inside it. The core acts as
// the optical readout channel.
func buildSimplifiedShroud(
	shroud *FiberShroudConfig,
	cryostat *Cryostat,
	mats *MaterialRegistry,
	reg *setup.Registry,
) error {
	tpb, err := mats.TPBOnFibers()
	if err != nil {
		return err
	}
	fibers, err := mats.PSFibers()
	if err != nil {
		return err
	}

	coatingDim := fiberDim + 2*float64(tpbThicknessUM)/1e3

	coatingLV, err := addTubs("tpb_coating", setup.TubsSolid{
		RMin:   shroud.RadiusInMM - coatingDim/2,
		RMax:   shroud.RadiusInMM + coatingDim/2,
		Dz:     shroud.HeightInMM,
		SPhi:   0,
		DPhi:   2 * math.Pi,
		NSlice: defaultNSlice,
	}, tpb, reg)
	if err != nil {
		return err
	}
	color := setup.ColorRGBA{0, 1, 0.165, 0.07}
	coatingLV.Color = &color

	coreLV, err := addTubs("fiber_core", setup.TubsSolid{
		RMin:   shroud.RadiusInMM - float64(fiberDim)/2,
		RMax:   shroud.RadiusInMM + float64(fiberDim)/2,
		Dz:     shroud.HeightInMM,
		SPhi:   0,
		DPhi:   2 * math.Pi,
		NSlice: defaultNSlice,
	}, fibers, reg)
	if err != nil {
		return err
	}
	coreLV.Detector = &setup.DetectorInfo{Type: "optical", UID: fiberCoreUID}

	corePV, err := placePV("fiber_core", coreLV, coatingLV, 0, reg)
	if err != nil {
		return err
	}

	shroudPV, err := placePV("fiber_shroud", coatingLV, cryostat.LAr,
		cryostat.LArHeight/2.0+shroud.CenterPosFromLArCenter, reg)
	if err != nil {
		return err
	}

	if err := setTPBSurface(shroudPV, cryostat.LArPV, mats, reg); err != nil {
		return err
	}
	return setFiberCoreSurface(shroudPV, corePV, mats, reg)
}

// buildDetailedShroud builds the shroud as individual fiber modules with
// top and bottom SiPM channels, as in the full 360° barrel.
func buildDetailedShroud(
	shroud *FiberShroudConfig,
	cryostat *Cryostat,
	mats *MaterialRegistry,
	reg *setup.Registry,
) error {
	modules := shroud.Modules
	if modules == nil {
		return fmt.Errorf("detailed fiber shroud needs a modules section")
	}

	tpb, err := mats.TPBOnFibers()
	if err != nil {
		return err
	}
	fibers, err := mats.PSFibers()
	if err != nil {
		return err
	}
	silicon, err := mats.Predefined("G4_Si")
	if err != nil {
		return err
	}

	tpbThickness := modules.TPBThicknessNM
	if tpbThickness == 0 {
		tpbThickness = tpbThicknessUM * 1e3
	}
	coatingDim := fiberDim + 2*tpbThickness/1e6

	centerZ := cryostat.LArHeight/2.0 + shroud.CenterPosFromLArCenter
	dPhi := 2 * math.Pi / float64(modules.Count)
	segmentPhi := dPhi - moduleGapRad

	for i := 0; i < modules.Count; i++ {
		moduleName := fmt.Sprintf("%s%d", modules.NamePrefix, i)
		sPhi := float64(i) * dPhi

		coatingLV, err := addTubs(moduleName+"_tpb", setup.TubsSolid{
			RMin: shroud.RadiusInMM - coatingDim/2,
			RMax: shroud.RadiusInMM + coatingDim/2,
			Dz:   shroud.HeightInMM,
			SPhi: sPhi,
			DPhi: segmentPhi,
		}, tpb, reg)
		if err != nil {
			return err
		}
		color := setup.ColorRGBA{0, 1, 0.165, 0.07}
		coatingLV.Color = &color

		coreLV, err := addTubs(moduleName+"_fiber_core", setup.TubsSolid{
			RMin: shroud.RadiusInMM - float64(fiberDim)/2,
			RMax: shroud.RadiusInMM + float64(fiberDim)/2,
			Dz:   shroud.HeightInMM,
			SPhi: sPhi,
			DPhi: segmentPhi,
		}, fibers, reg)
		if err != nil {
			return err
		}

		corePV, err := placePV(moduleName+"_fiber_core", coreLV, coatingLV, 0, reg)
		if err != nil {
			return err
		}
		modulePV, err := placePV(moduleName, coatingLV, cryostat.LAr, centerZ, reg)
		if err != nil {
			return err
		}

		if err := setTPBSurface(modulePV, cryostat.LArPV, mats, reg); err != nil {
			return err
		}
		if err := setFiberCoreSurface(modulePV, corePV, mats, reg); err != nil {
			return err
		}

		// SiPM channels above and below the fiber ends
		for _, sipm := range []struct {
			name string
			uid  int
			zPos float64
		}{
			{
				name: fmt.Sprintf("%s%d", modules.ChannelTopPrefix, i),
				uid:  modules.BaseRawID + 2*i,
				zPos: centerZ + shroud.HeightInMM/2 + sipmHeight/2.0 + overlapTol,
			},
			{
				name: fmt.Sprintf("%s%d", modules.ChannelBottomPrefix, i),
				uid:  modules.BaseRawID + 2*i + 1,
				zPos: centerZ - shroud.HeightInMM/2 - sipmHeight/2.0 - overlapTol,
			},
		} {
			sipmLV, err := addTubs(sipm.name, setup.TubsSolid{
				RMin: shroud.RadiusInMM - coatingDim/2,
				RMax: shroud.RadiusInMM + coatingDim/2,
				Dz:   sipmHeight,
				SPhi: sPhi,
				DPhi: segmentPhi,
			}, silicon, reg)
			if err != nil {
				return err
			}
			sipmLV.Detector = &setup.DetectorInfo{Type: "optical", UID: sipm.uid}

			sipmPV, err := placePV(sipm.name, sipmLV, cryostat.LAr, sipm.zPos, reg)
			if err != nil {
				return err
			}

			toSiPM, err := mats.SurfaceToSiPM()
			if err != nil {
				return err
			}
			if err := reg.AddBorderSurface(&setup.BorderSurface{
				Name:    "bsurface_lar_" + sipm.name,
				First:   cryostat.LArPV,
				Second:  sipmPV,
				Surface: toSiPM,
			}); err != nil {
				return err
			}
		}
	}

	log.Debugf("built detailed fiber shroud with %d modules", modules.Count)
	return nil
}

// setTPBSurface attaches the rough wavelength-shifter surface between the
// LAr and a TPB coated placement, in both crossing directions.
func setTPBSurface(tpbPV, larPV *setup.PhysicalVolume, mats *MaterialRegistry, reg *setup.Registry) error {
	larToTPB, err := mats.SurfaceLArToTPB()
	if err != nil {
		return err
	}

	if err := reg.AddBorderSurface(&setup.BorderSurface{
		Name:    "bsurface_lar_tpb_" + tpbPV.Name,
		First:   larPV,
		Second:  tpbPV,
		Surface: larToTPB,
	}); err != nil {
		return err
	}
	return reg.AddBorderSurface(&setup.BorderSurface{
		Name:    "bsurface_tpb_lar_" + tpbPV.Name,
		First:   tpbPV,
		Second:  larPV,
		Surface: larToTPB,
	})
}

// setFiberCoreSurface makes the fiber core absorbing, so it can act as a
// sensitive detector.
func setFiberCoreSurface(tpbPV, corePV *setup.PhysicalVolume, mats *MaterialRegistry, reg *setup.Registry) error {
	toCore, err := mats.SurfaceToFiberCore()
	if err != nil {
		return err
	}
	return reg.AddBorderSurface(&setup.BorderSurface{
		Name:    "bsurface_tpb_fiber_" + corePV.Name,
		First:   tpbPV,
		Second:  corePV,
		Surface: toCore,
	})
}
