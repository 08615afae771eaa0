package gdml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legend-exp/geom-scarf/geometry"
	"github.com/legend-exp/geom-scarf/setup"
)

func TestConvertCompoundMaterial(t *testing.T) {
	reg := minimalRegistry(t)

	properties := setup.Properties{}
	properties.AddConst("SCINTILLATIONYIELD", 1000)
	properties.AddVec("RINDEX", []float64{1.88, 9.68}, []float64{1.22, 1.38})

	require.NoError(t, reg.AddMaterial(&setup.Material{
		Name: "liquid_argon",
		Specs: setup.MaterialSpecs{MaterialType: setup.MaterialCompound{
			Density:       1.39,
			StateOfMatter: setup.Liquid,
			Temperature:   88.8,
			Elements:      []setup.ElementCount{{Symbol: "Ar", NAtoms: 1}},
			Properties:    properties,
		}},
	}))

	doc, err := Convert(reg)
	require.NoError(t, err)

	// predefined materials have no definition, the compound does
	require.Len(t, doc.Materials.Materials, 1)
	material := doc.Materials.Materials[0]
	assert.Equal(t, "liquid_argon", material.Name)
	assert.Equal(t, "liquid", material.State)
	assert.Equal(t, "1.39", material.Density.Value)
	assert.Equal(t, "g/cm3", material.Density.Unit)
	require.NotNil(t, material.Temperature)
	assert.Equal(t, "88.8", material.Temperature.Value)
	require.Len(t, material.Composites, 1)
	assert.Equal(t, "argon", material.Composites[0].Ref)

	require.Len(t, doc.Materials.Elements, 1)
	assert.Equal(t, "Ar", doc.Materials.Elements[0].Formula)
	assert.Equal(t, 18, doc.Materials.Elements[0].Z)

	// properties are hoisted into define matrices
	require.Len(t, doc.Define.Matrices, 2)
	assert.Equal(t, "liquid_argon_SCINTILLATIONYIELD", doc.Define.Matrices[0].Name)
	assert.Equal(t, 1, doc.Define.Matrices[0].ColDim)
	assert.Equal(t, "1000", doc.Define.Matrices[0].Values)
	assert.Equal(t, "liquid_argon_RINDEX", doc.Define.Matrices[1].Name)
	assert.Equal(t, 2, doc.Define.Matrices[1].ColDim)
	assert.Equal(t, "1.88 1.22 9.68 1.38", doc.Define.Matrices[1].Values)

	require.Len(t, material.Properties, 2)
	assert.Equal(t, "RINDEX", material.Properties[1].Name)
	assert.Equal(t, "liquid_argon_RINDEX", material.Properties[1].Ref)
}

func TestConvertBooleanSolid(t *testing.T) {
	reg := minimalRegistry(t)

	require.NoError(t, reg.AddSolid(&setup.Solid{
		Name: "carved",
		Geometry: setup.BooleanSolid{
			Operation:   setup.Subtraction,
			First:       "world",
			Second:      "source",
			Translation: geometry.Point{Z: 3000},
		},
	}))

	doc, err := Convert(reg)
	require.NoError(t, err)

	require.Len(t, doc.Solids.Entries, 3)
	boolean, ok := doc.Solids.Entries[2].(BooleanSolid)
	require.True(t, ok)
	assert.Equal(t, "subtraction", boolean.XMLName.Local)
	assert.Equal(t, "world", boolean.First.Ref)
	assert.Equal(t, "source", boolean.Second.Ref)
	require.NotNil(t, boolean.PositionRef)
	assert.Equal(t, "carved_pos", boolean.PositionRef.Ref)
	assert.Nil(t, boolean.RotationRef)
}

func TestConvertBooleanSolidUnknownOperand(t *testing.T) {
	reg := minimalRegistry(t)

	require.NoError(t, reg.AddSolid(&setup.Solid{
		Name: "broken",
		Geometry: setup.BooleanSolid{
			Operation: setup.Union,
			First:     "world",
			Second:    "no_such_solid",
		},
	}))

	_, err := Convert(reg)
	assert.Error(t, err)
}

func TestConvertDetectorAuxiliary(t *testing.T) {
	reg := minimalRegistry(t)

	source, ok := reg.Volume("source")
	require.True(t, ok)
	source.Detector = &setup.DetectorInfo{Type: "germanium", UID: 7}
	source.Color = &setup.ColorRGBA{1, 0, 0, 0.5}

	doc, err := Convert(reg)
	require.NoError(t, err)

	// daughters come before mothers, the world last
	require.Len(t, doc.Structure.Volumes, 2)
	volume := doc.Structure.Volumes[0]
	require.Equal(t, "source", volume.Name)
	assert.Equal(t, "world", doc.Structure.Volumes[1].Name)

	require.Len(t, volume.Auxiliary, 2)
	detector := volume.Auxiliary[0]
	assert.Equal(t, "RMG_detector", detector.AuxType)
	assert.Equal(t, "germanium", detector.AuxValue)
	require.Len(t, detector.Children, 1)
	assert.Equal(t, "det_uid", detector.Children[0].AuxType)
	assert.Equal(t, "7", detector.Children[0].AuxValue)

	color := volume.Auxiliary[1]
	assert.Equal(t, "color", color.AuxType)
	assert.Equal(t, "#ff000080", color.AuxValue)
}

func TestConvertBorderSurfaces(t *testing.T) {
	reg := minimalRegistry(t)

	surface := &setup.OpticalSurface{
		Name:   "surface_to_source",
		Model:  "unified",
		Finish: "ground",
		Type:   "dielectric_metal",
		Value:  0.5,
	}
	surface.Properties.AddVec("REFLECTIVITY",
		[]float64{1.88, 9.68}, []float64{0.3, 0.3})
	require.NoError(t, reg.AddSurface(surface))

	sourcePV, ok := reg.Placement("source")
	require.True(t, ok)
	worldPV := &setup.PhysicalVolume{Name: "source2", Volume: sourcePV.Volume, Mother: reg.World()}
	require.NoError(t, reg.Place(worldPV))
	require.NoError(t, reg.AddBorderSurface(&setup.BorderSurface{
		Name:    "bsurface_source",
		First:   sourcePV,
		Second:  worldPV,
		Surface: surface,
	}))

	doc, err := Convert(reg)
	require.NoError(t, err)

	// the optical surface definition follows the shape solids
	require.Len(t, doc.Solids.Entries, 3)
	optical, ok := doc.Solids.Entries[2].(OpticalSurface)
	require.True(t, ok)
	assert.Equal(t, "surface_to_source", optical.Name)
	assert.Equal(t, "ground", optical.Finish)
	require.Len(t, optical.Properties, 1)
	assert.Equal(t, "surface_to_source_REFLECTIVITY", optical.Properties[0].Ref)

	require.Len(t, doc.Structure.BorderSurfaces, 1)
	border := doc.Structure.BorderSurfaces[0]
	assert.Equal(t, "bsurface_source", border.Name)
	assert.Equal(t, "surface_to_source", border.SurfaceProperty)
	require.Len(t, border.PhysVolRefs, 2)
	assert.Equal(t, "source", border.PhysVolRefs[0].Ref)
	assert.Equal(t, "source2", border.PhysVolRefs[1].Ref)
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#ffffffff", colorHex(setup.ColorRGBA{1, 1, 1, 1}))
	assert.Equal(t, "#00000000", colorHex(setup.ColorRGBA{0, 0, 0, 0}))
	assert.Equal(t, "#ff000080", colorHex(setup.ColorRGBA{1, 0, 0, 0.5}))
	// out of range channels are clamped
	assert.Equal(t, "#ff0000ff", colorHex(setup.ColorRGBA{2, -1, 0, 1}))
}
