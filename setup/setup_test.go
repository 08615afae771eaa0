package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legend-exp/geom-scarf/geometry"
)

func testMaterial(name string) *Material {
	return &Material{
		Name:  name,
		Specs: MaterialSpecs{MaterialPredefined{PredefinedID: "G4_Galactic"}},
	}
}

func testSolid(name string) *Solid {
	return &Solid{
		Name:     name,
		Geometry: BoxSolid{Size: geometry.Vec3D{X: 10, Y: 10, Z: 10}},
	}
}

func testVolume(name string, reg *Registry, t *testing.T) *LogicalVolume {
	t.Helper()
	solid := testSolid(name)
	require.NoError(t, reg.AddSolid(solid))
	material := testMaterial("material_" + name)
	require.NoError(t, reg.AddMaterial(material))
	volume := &LogicalVolume{Name: name, Solid: solid, Material: material}
	require.NoError(t, reg.AddVolume(volume))
	return volume
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.AddSolid(testSolid("box")))
	assert.Error(t, reg.AddSolid(testSolid("box")))

	require.NoError(t, reg.AddMaterial(testMaterial("vacuum")))
	assert.Error(t, reg.AddMaterial(testMaterial("vacuum")))
}

func TestRegistryRejectsInvalidSolid(t *testing.T) {
	reg := NewRegistry()
	err := reg.AddSolid(&Solid{Name: "flat", Geometry: BoxSolid{}})
	assert.Error(t, err)
	_, ok := reg.Solid("flat")
	assert.False(t, ok)
}

func TestRegistryVolumeNeedsSolidAndMaterial(t *testing.T) {
	reg := NewRegistry()
	solid := testSolid("box")
	require.NoError(t, reg.AddSolid(solid))
	material := testMaterial("vacuum")
	require.NoError(t, reg.AddMaterial(material))

	assert.Error(t, reg.AddVolume(&LogicalVolume{Name: "v", Material: material}))
	assert.Error(t, reg.AddVolume(&LogicalVolume{Name: "v", Solid: solid}))
	assert.NoError(t, reg.AddVolume(&LogicalVolume{Name: "v", Solid: solid, Material: material}))
}

func TestRegistryPlaceAttachesDaughter(t *testing.T) {
	reg := NewRegistry()
	mother := testVolume("mother", reg, t)
	daughter := testVolume("daughter", reg, t)

	pv := &PhysicalVolume{
		Name:     "daughter_placement",
		Volume:   daughter,
		Mother:   mother,
		Position: geometry.Point{Z: 5},
	}
	require.NoError(t, reg.Place(pv))

	require.Len(t, mother.Daughters, 1)
	assert.Equal(t, pv, mother.Daughters[0])

	found, ok := reg.Placement("daughter_placement")
	require.True(t, ok)
	assert.Equal(t, pv, found)

	assert.Error(t, reg.Place(pv))
}

func TestRegistryWorldMustBeRegistered(t *testing.T) {
	reg := NewRegistry()
	world := &LogicalVolume{Name: "world"}
	assert.Error(t, reg.SetWorld(world))
	assert.Nil(t, reg.World())

	registered := testVolume("world2", reg, t)
	require.NoError(t, reg.SetWorld(registered))
	assert.Equal(t, registered, reg.World())
}

func TestRegistryPreservesInsertionOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"cryostat", "lar", "hpge"} {
		require.NoError(t, reg.AddSolid(testSolid(name)))
	}

	names := []string{}
	for _, solid := range reg.Solids() {
		names = append(names, solid.Name)
	}
	assert.Equal(t, []string{"cryostat", "lar", "hpge"}, names)
}
