package scarf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legend-exp/geom-scarf/metadata"
	"github.com/legend-exp/geom-scarf/setup"
)

func TestConstructRequiresPublicOptIn(t *testing.T) {
	_, err := Construct(nil, nil, Options{})
	assert.Error(t, err)
}

func TestConstructBareCryostat(t *testing.T) {
	reg, err := Construct(nil, nil, Options{PublicGeometry: true})
	require.NoError(t, err)

	world := reg.World()
	require.NotNil(t, world)
	assert.Equal(t, "world", world.Name)

	for _, name := range []string{"inner_cryostat", "lar", "outer_cryostat", "lead_shield"} {
		_, ok := reg.Volume(name)
		assert.True(t, ok, "missing volume %s", name)
	}

	// nothing else was configured
	_, ok := reg.Volume("source")
	assert.False(t, ok)
	_, ok = reg.Volume("fiber_shroud")
	assert.False(t, ok)
}

func TestConstructDefaultGeometry(t *testing.T) {
	config, err := LoadConfig("scarf_pen.yaml")
	require.NoError(t, err)

	reg, err := Construct(config, metadata.NewPublicDB(), Options{})
	require.NoError(t, err)

	// detectors from the config, with sequential channel UIDs
	for uid, name := range []string{"V09999A", "B99000A"} {
		volume, ok := reg.Volume(name)
		require.True(t, ok, "missing detector volume %s", name)
		require.NotNil(t, volume.Detector)
		assert.Equal(t, "germanium", volume.Detector.Type)
		assert.Equal(t, uid, volume.Detector.UID)

		record, ok := volume.Detector.Metadata.(metadata.HPGe)
		require.True(t, ok)
		assert.Equal(t, name, record.Name)
	}

	// simplified fiber shroud with its optical channel
	core, ok := reg.Volume("fiber_core")
	require.True(t, ok)
	require.NotNil(t, core.Detector)
	assert.Equal(t, "optical", core.Detector.Type)
	assert.Equal(t, 100, core.Detector.UID)

	_, ok = reg.Volume("source")
	assert.True(t, ok)

	// detector placements hang in the LAr at the configured offsets
	pv, ok := reg.Placement("V09999A")
	require.True(t, ok)
	assert.Equal(t, "lar", pv.Mother.Name)
	assert.Equal(t, 1500.0/2+120, pv.Position.Z)
}

func TestConstructUnknownDetector(t *testing.T) {
	config := &Config{
		HPGes: []HPGeEntry{{Name: "X00000A", PPlusPosFromLArCenter: 100}},
	}

	_, err := Construct(config, metadata.NewPublicDB(), Options{})
	require.Error(t, err)
	assert.IsType(t, metadata.NotFoundError{}, err)
}

func TestConstructDetailedShroud(t *testing.T) {
	config := &Config{
		FiberShroud: &FiberShroudConfig{
			Mode:                   ShroudDetailed,
			HeightInMM:             1000,
			RadiusInMM:             115,
			CenterPosFromLArCenter: 180,
			Modules: &FiberModulesConfig{
				Count:               3,
				NamePrefix:          "IB",
				ChannelTopPrefix:    "sipm_top_",
				ChannelBottomPrefix: "sipm_bot_",
				BaseRawID:           300,
				TPBThicknessNM:      1000,
			},
		},
	}

	reg, err := Construct(config, nil, Options{PublicGeometry: true})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		moduleName := fmt.Sprintf("IB%d_tpb", i)
		_, ok := reg.Volume(moduleName)
		assert.True(t, ok, "missing module volume %s", moduleName)
	}

	top, ok := reg.Volume("sipm_top_1")
	require.True(t, ok)
	require.NotNil(t, top.Detector)
	assert.Equal(t, 302, top.Detector.UID)

	bottom, ok := reg.Volume("sipm_bot_1")
	require.True(t, ok)
	require.NotNil(t, bottom.Detector)
	assert.Equal(t, 303, bottom.Detector.UID)
}

func TestConstructCavern(t *testing.T) {
	config := &Config{
		Cavern: &CavernConfig{InnerRadiusInMM: 7000, OuterRadiusInMM: 8000},
	}

	reg, err := Construct(config, nil, Options{PublicGeometry: true})
	require.NoError(t, err)

	_, ok := reg.Volume("cavern")
	assert.True(t, ok)

	pv, ok := reg.Placement("cavern")
	require.True(t, ok)
	assert.Equal(t, reg.World().Name, pv.Mother.Name)
	assert.Equal(t, 1500.0, pv.Position.Z)

	solid, ok := reg.Solid("cavern")
	require.True(t, ok)
	boolean, ok := solid.Geometry.(setup.BooleanSolid)
	require.True(t, ok)
	assert.Equal(t, setup.Union, boolean.Operation)
}
