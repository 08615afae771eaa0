package scarf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legend-exp/geom-scarf/setup"
)

func TestEnergiesFromNM(t *testing.T) {
	energies := energiesFromNM([]float64{650, 400, 128})

	require.Len(t, energies, 3)
	assert.InDelta(t, 1.9075, energies[0], 1e-4)
	assert.InDelta(t, 3.0996, energies[1], 1e-4)
	assert.InDelta(t, 9.6863, energies[2], 1e-4)
	for i := 1; i < len(energies); i++ {
		assert.Less(t, energies[i-1], energies[i])
	}
}

func TestMaterialRegistryMemoizes(t *testing.T) {
	materials := NewMaterialRegistry(setup.NewRegistry())

	first, err := materials.LiquidArgon()
	require.NoError(t, err)
	second, err := materials.LiquidArgon()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, materials.reg.Materials(), 1)
}

func TestLiquidArgonProperties(t *testing.T) {
	materials := NewMaterialRegistry(setup.NewRegistry())

	lar, err := materials.LiquidArgon()
	require.NoError(t, err)

	compound, ok := lar.Specs.MaterialType.(setup.MaterialCompound)
	require.True(t, ok)
	assert.Equal(t, setup.Liquid, compound.StateOfMatter)
	assert.Equal(t, 88.8, compound.Temperature)

	byName := map[string]setup.VecProperty{}
	for _, vec := range compound.Properties.Vec {
		byName[vec.Name] = vec
	}
	for _, name := range []string{"RINDEX", "RAYLEIGH", "ABSLENGTH", "SCINTILLATIONCOMPONENT1"} {
		vec, ok := byName[name]
		require.True(t, ok, name)
		require.Equal(t, len(vec.Energies), len(vec.Values), name)
		for i := 1; i < len(vec.Energies); i++ {
			assert.Less(t, vec.Energies[i-1], vec.Energies[i], name)
		}
	}
	// index at 650 nm pairs with the lowest energy, 128 nm with the highest
	rindex := byName["RINDEX"]
	assert.InDelta(t, 1.222, rindex.Values[0], 1e-9)
	assert.InDelta(t, 1.357, rindex.Values[len(rindex.Values)-1], 1e-9)

	consts := map[string]float64{}
	for _, c := range compound.Properties.Const {
		consts[c.Name] = c.Value
	}
	assert.Equal(t, 1000.0, consts["SCINTILLATIONYIELD"])
	assert.Equal(t, 1590.0, consts["SCINTILLATIONTIMECONSTANT2"])
}

func TestMaterialRegistryBuildsAllMaterials(t *testing.T) {
	reg := setup.NewRegistry()
	materials := NewMaterialRegistry(reg)

	builders := map[string]func() (*setup.Material, error){
		"liquid_argon":       materials.LiquidArgon,
		"metal_steel":        materials.MetalSteel,
		"rock":               materials.Rock,
		"enriched_germanium": materials.EnrichedGermanium,
		"tpb_on_fibers":      materials.TPBOnFibers,
		"ps_fibers":          materials.PSFibers,
		"pmma":               materials.PMMA,
		"pmma_cl2":           materials.PMMAOuter,
		"pen":                materials.PEN,
	}
	for name, build := range builders {
		material, err := build()
		require.NoError(t, err, name)
		assert.Equal(t, name, material.Name)

		registered, ok := reg.Material(name)
		require.True(t, ok, name)
		assert.Same(t, material, registered)
	}
	assert.Len(t, reg.Materials(), len(builders))

	pen, _ := reg.Material("pen")
	compound, ok := pen.Specs.MaterialType.(setup.MaterialCompound)
	require.True(t, ok)
	assert.Equal(t, 1.30, compound.Density)
	assert.Equal(t, []setup.ElementCount{
		{Symbol: "C", NAtoms: 14},
		{Symbol: "H", NAtoms: 10},
		{Symbol: "O", NAtoms: 4},
	}, compound.Elements)
}

func TestPredefinedMaterial(t *testing.T) {
	materials := NewMaterialRegistry(setup.NewRegistry())

	iron, err := materials.Predefined("G4_Fe")
	require.NoError(t, err)

	predefined, ok := iron.Specs.MaterialType.(setup.MaterialPredefined)
	require.True(t, ok)
	assert.Equal(t, "G4_Fe", predefined.PredefinedID)
}

func TestMaterialRegistrySurfaces(t *testing.T) {
	reg := setup.NewRegistry()
	materials := NewMaterialRegistry(reg)

	builders := []func() (*setup.OpticalSurface, error){
		materials.SurfaceToSteel,
		materials.SurfaceToGermanium,
		materials.SurfaceLArToTPB,
		materials.SurfaceToFiberCore,
		materials.SurfaceToSiPM,
	}
	for _, build := range builders {
		first, err := build()
		require.NoError(t, err)
		second, err := build()
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, "unified", first.Model)
	}
	assert.Len(t, reg.Surfaces(), len(builders))
}
