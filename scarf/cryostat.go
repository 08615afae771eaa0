package scarf

import (
	"github.com/legend-exp/geom-scarf/geometry"
	"github.com/legend-exp/geom-scarf/setup"
)

// The SCARF cryostat is based on the CAD model but simplified to generic
// polycones. The inner vessel is almost cylindrical with a slight tapering
// to account for the change in wall thickness; the LAr fills the inner
// vessel with a gaseous argon gap on top; the outer vessel is a simple
// cylinder surrounded by a lead shield.

// tolerance in mm to avoid volume overlaps.
const overlapTol = 0.01

// InnerCryostatProfile is the revolution profile of the inner vessel.
// The LAr must be placed as a daughter volume for this to make sense.
func InnerCryostatProfile(cryostat *CryostatConfig) geometry.Profile {
	inner := cryostat.Inner

	return geometry.Profile{
		R: []float64{
			0,
			inner.RadiusInMM + inner.Lower.ThicknessInMM, // lower corner
			inner.RadiusInMM + inner.Lower.ThicknessInMM, // change in thickness
			inner.RadiusInMM + inner.Lower.ThicknessInMM/2 + inner.Upper.ThicknessInMM/2,
			inner.RadiusInMM + inner.Lower.ThicknessInMM/2 + inner.Upper.ThicknessInMM/2,
			0,
		},
		Z: []float64{
			0,
			0,
			inner.Lower.HeightInMM + inner.Lower.ThicknessInMM, // change in thickness
			inner.Lower.HeightInMM + inner.Lower.ThicknessInMM,
			inner.Lower.HeightInMM + inner.Upper.HeightInMM + inner.Lower.ThicknessInMM,
			inner.Lower.HeightInMM + inner.Upper.HeightInMM + inner.Lower.ThicknessInMM, // top corner
		},
	}
}

// LArProfile is the revolution profile of the liquid argon volume. It
// follows InnerCryostatProfile shifted inward by the wall thickness.
func LArProfile(cryostat *CryostatConfig) geometry.Profile {
	inner := cryostat.Inner

	return geometry.Profile{
		R: []float64{
			0,
			inner.RadiusInMM, // lower corner
			inner.RadiusInMM, // change in thickness
			inner.RadiusInMM + inner.Lower.ThicknessInMM/2 - inner.Upper.ThicknessInMM/2,
			inner.RadiusInMM + inner.Lower.ThicknessInMM/2 - inner.Upper.ThicknessInMM/2, // top
			0,
		},
		Z: []float64{
			0,
			0,
			inner.Lower.HeightInMM, // change in thickness
			inner.Lower.HeightInMM,
			inner.Lower.HeightInMM + inner.Upper.HeightInMM - overlapTol,
			inner.Lower.HeightInMM + inner.Upper.HeightInMM - overlapTol, // top corner
		},
	}
}

// GaseousArgonProfile is the revolution profile of the argon gas gap
// placed at the top of the LAr volume.
func GaseousArgonProfile(cryostat *CryostatConfig) geometry.Profile {
	inner := cryostat.Inner
	radius := inner.RadiusInMM + inner.Lower.ThicknessInMM/2 - inner.Upper.ThicknessInMM/2 - overlapTol

	return geometry.Profile{
		R: []float64{0, radius, radius, 0},
		Z: []float64{
			0,
			0,
			cryostat.GasArgon.HeightInMM - 2*overlapTol,
			cryostat.GasArgon.HeightInMM - 2*overlapTol,
		},
	}
}

// OuterCryostatProfile is the revolution profile of the outer vessel.
func OuterCryostatProfile(cryostat *CryostatConfig) geometry.Profile {
	outer := cryostat.Outer

	return geometry.Profile{
		R: []float64{
			0,
			outer.RadiusInMM + outer.ThicknessInMM,
			outer.RadiusInMM + outer.ThicknessInMM,
			outer.RadiusInMM,
			outer.RadiusInMM,
			0,
		},
		Z: []float64{
			0,
			0,
			outer.HeightInMM,
			outer.HeightInMM,
			outer.ThicknessInMM,
			outer.ThicknessInMM,
		},
	}
}

// CryostatLidProfile is the revolution profile of the lid, for now just a
// cylinder.
func CryostatLidProfile(cryostat *CryostatConfig) geometry.Profile {
	lid := cryostat.Top

	return geometry.Profile{
		R: []float64{0, lid.RadiusInMM, lid.RadiusInMM, 0},
		Z: []float64{0, 0, lid.HeightInMM, lid.HeightInMM},
	}
}

// LeadProfile is the revolution profile of the lead shield.
func LeadProfile(cryostat *CryostatConfig) geometry.Profile {
	outer := cryostat.Outer
	lead := cryostat.Lead

	return geometry.Profile{
		R: []float64{
			0,
			outer.RadiusInMM + lead.AirGapInMM,
			outer.RadiusInMM + lead.AirGapInMM,
			outer.RadiusInMM + lead.AirGapInMM + lead.ThicknessInMM,
			outer.RadiusInMM + lead.AirGapInMM + lead.ThicknessInMM,
			0,
		},
		Z: []float64{
			0,
			0,
			outer.HeightInMM + lead.AirGapInMM,
			outer.HeightInMM + lead.AirGapInMM,
			-lead.ThicknessInMM,
			-lead.ThicknessInMM,
		},
	}
}

// Cryostat is the result of BuildCryostat, carrying what downstream
// builders need to place volumes inside the argon.
type Cryostat struct {
	// LAr is the liquid argon logical volume.
	LAr *setup.LogicalVolume

	// LArPV is the liquid argon placement.
	LArPV *setup.PhysicalVolume

	// LArHeight is the full LAr column height in mm.
	LArHeight float64
}

// BuildCryostat constructs the cryostat, LAr, gas gap, lid and lead
// shield and places them into the world volume.
//
// The geometry for the lower part of the cryostat and the lid is
// approximate.
func BuildCryostat(
	cryostat *CryostatConfig,
	world *setup.LogicalVolume,
	mats *MaterialRegistry,
	reg *setup.Registry,
) (*Cryostat, error) {
	steel, err := mats.MetalSteel()
	if err != nil {
		return nil, err
	}
	lar, err := mats.LiquidArgon()
	if err != nil {
		return nil, err
	}
	gasAr, err := mats.Predefined("G4_Ar")
	if err != nil {
		return nil, err
	}
	leadMat, err := mats.Predefined("G4_Pb")
	if err != nil {
		return nil, err
	}

	shift := (cryostat.Inner.Lower.HeightInMM + cryostat.Inner.Upper.HeightInMM) / 2.0

	// inner vessel
	innerLV, err := addPolycone("inner_cryostat", InnerCryostatProfile(cryostat),
		steel, setup.ColorRGBA{0.7, 0.3, 0.3, 0.1}, reg)
	if err != nil {
		return nil, err
	}
	innerPV, err := placePV("inner_cryostat", innerLV, world, -shift, reg)
	if err != nil {
		return nil, err
	}

	// liquid argon
	larLV, err := addPolycone("lar", LArProfile(cryostat),
		lar, setup.ColorRGBA{0, 1, 1, 0.5}, reg)
	if err != nil {
		return nil, err
	}
	larPV, err := placePV("lar", larLV, innerLV, cryostat.Inner.Lower.ThicknessInMM, reg)
	if err != nil {
		return nil, err
	}

	if err := setSteelReflectivity(larPV, innerPV, mats, reg); err != nil {
		return nil, err
	}

	// gaseous argon gap between the LAr surface and the inner vessel
	gasLV, err := addPolycone("gaseous_argon", GaseousArgonProfile(cryostat),
		gasAr, setup.ColorRGBA{0.8784, 1.0, 1.0, 1.0}, reg)
	if err != nil {
		return nil, err
	}
	gasZ := cryostat.Inner.Lower.HeightInMM + cryostat.Inner.Upper.HeightInMM - cryostat.GasArgon.HeightInMM
	if _, err := placePV("gaseous_argon", gasLV, larLV, gasZ, reg); err != nil {
		return nil, err
	}

	// outer vessel
	outerLV, err := addPolycone("outer_cryostat", OuterCryostatProfile(cryostat),
		steel, setup.ColorRGBA{0.7, 0.3, 0.3, 0.1}, reg)
	if err != nil {
		return nil, err
	}
	outerZ := -150 - cryostat.Inner.Lower.ThicknessInMM - shift
	if _, err := placePV("outer_cryostat", outerLV, world, outerZ, reg); err != nil {
		return nil, err
	}

	// lid
	lidLV, err := addPolycone("cryostat_lid", CryostatLidProfile(cryostat),
		steel, setup.ColorRGBA{0.7, 0.3, 0.3, 0.1}, reg)
	if err != nil {
		return nil, err
	}
	lidZ := cryostat.Inner.Lower.HeightInMM + cryostat.Inner.Upper.HeightInMM + 3 - shift
	if _, err := placePV("cryostat_lid", lidLV, world, lidZ, reg); err != nil {
		return nil, err
	}

	// lead shield
	leadLV, err := addPolycone("lead_shield", LeadProfile(cryostat),
		leadMat, setup.ColorRGBA{0.9, 0.9, 0.9, 0.1}, reg)
	if err != nil {
		return nil, err
	}
	leadZ := -150 - 2*cryostat.Outer.ThicknessInMM - cryostat.Lead.AirGapInMM - shift
	if _, err := placePV("lead_shield", leadLV, world, leadZ, reg); err != nil {
		return nil, err
	}

	log.Debugf("built cryostat, LAr column height %f mm",
		cryostat.Inner.Lower.HeightInMM+cryostat.Inner.Upper.HeightInMM)

	return &Cryostat{
		LAr:       larLV,
		LArPV:     larPV,
		LArHeight: cryostat.Inner.Lower.HeightInMM + cryostat.Inner.Upper.HeightInMM,
	}, nil
}

// setSteelReflectivity attaches the steel surface between the LAr and the
// inner vessel, in both crossing directions.
func setSteelReflectivity(larPV, cryostatPV *setup.PhysicalVolume, mats *MaterialRegistry, reg *setup.Registry) error {
	toSteel, err := mats.SurfaceToSteel()
	if err != nil {
		return err
	}

	if err := reg.AddBorderSurface(&setup.BorderSurface{
		Name:    "bsurface_lar_cryostat",
		First:   larPV,
		Second:  cryostatPV,
		Surface: toSteel,
	}); err != nil {
		return err
	}
	return reg.AddBorderSurface(&setup.BorderSurface{
		Name:    "bsurface_cryostat_lar",
		First:   cryostatPV,
		Second:  larPV,
		Surface: toSteel,
	})
}
