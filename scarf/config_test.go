package scarf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltinConfig(t *testing.T) {
	config, err := LoadConfig("scarf_pen.yaml")
	require.NoError(t, err)

	require.Len(t, config.HPGes, 2)
	assert.Equal(t, "V09999A", config.HPGes[0].Name)
	assert.Equal(t, 120.0, config.HPGes[0].PPlusPosFromLArCenter)
	assert.Equal(t, "B99000A", config.HPGes[1].Name)

	require.NotNil(t, config.Source)
	assert.Equal(t, 400.0, config.Source.PosFromLArCenter)

	require.NotNil(t, config.FiberShroud)
	assert.Equal(t, ShroudSimplified, config.FiberShroud.Mode)
	assert.Equal(t, 1000.0, config.FiberShroud.HeightInMM)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
hpges:
  - name: C99000A
    pplus_pos_from_lar_center: 300
cavern:
  inner_radius_in_mm: 7000
  outer_radius_in_mm: 8000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	require.Len(t, config.HPGes, 1)
	assert.Equal(t, "C99000A", config.HPGes[0].Name)
	require.NotNil(t, config.Cavern)
	assert.Equal(t, 8000.0, config.Cavern.OuterRadiusInMM)
	assert.Nil(t, config.Source)
}

func TestLoadConfigNotFound(t *testing.T) {
	_, err := LoadConfig("no_such_config.yaml")
	assert.Error(t, err)
}

func TestDefaultCryostat(t *testing.T) {
	cryostat, err := DefaultCryostat()
	require.NoError(t, err)

	assert.Equal(t, 450.0, cryostat.Inner.RadiusInMM)
	assert.Equal(t, 1100.0, cryostat.Inner.Upper.HeightInMM)
	assert.Equal(t, 400.0, cryostat.Inner.Lower.HeightInMM)
	assert.Equal(t, 150.0, cryostat.GasArgon.HeightInMM)
	assert.Equal(t, 100.0, cryostat.Lead.ThicknessInMM)
	assert.NoError(t, cryostat.validate())
}

func TestConfigValidate(t *testing.T) {
	for name, config := range map[string]*Config{
		"unnamed hpge": {HPGes: []HPGeEntry{{PPlusPosFromLArCenter: 100}}},
		"shroud without mode": {FiberShroud: &FiberShroudConfig{
			HeightInMM: 100, RadiusInMM: 100,
		}},
		"detailed shroud without modules": {FiberShroud: &FiberShroudConfig{
			Mode: ShroudDetailed, HeightInMM: 100, RadiusInMM: 100,
		}},
		"cavern radii inverted": {Cavern: &CavernConfig{
			InnerRadiusInMM: 8000, OuterRadiusInMM: 7000,
		}},
	} {
		err := config.Validate()
		require.Error(t, err, name)
		assert.IsType(t, E{}, err, name)
	}

	valid := &Config{
		HPGes: []HPGeEntry{{Name: "V09999A", PPlusPosFromLArCenter: 120}},
		FiberShroud: &FiberShroudConfig{
			Mode: ShroudDetailed, HeightInMM: 1000, RadiusInMM: 115,
			Modules: &FiberModulesConfig{Count: 9, NamePrefix: "IB"},
		},
	}
	assert.NoError(t, valid.Validate())
}

func TestConfigValidateReportsAllProblems(t *testing.T) {
	config := &Config{
		HPGes:  []HPGeEntry{{}},
		Cavern: &CavernConfig{},
	}

	err := config.Validate()
	require.Error(t, err)

	errs, ok := err.(E)
	require.True(t, ok)
	assert.Contains(t, errs, "hpges[0]")
	assert.Contains(t, errs, "cavern.inner_radius_in_mm")

	message := err.Error()
	assert.Contains(t, message, "hpges[0]")
	assert.Contains(t, message, "missing detector name")
}

func TestMergeConfigs(t *testing.T) {
	base, err := LoadConfig("scarf_pen.yaml")
	require.NoError(t, err)

	merged := MergeConfigs(base, nil)
	assert.Equal(t, base, merged)

	extra := &Config{
		Source: &SourceConfig{PosFromLArCenter: 250},
	}
	merged = MergeConfigs(base, extra)

	assert.Equal(t, 250.0, merged.Source.PosFromLArCenter)
	assert.Equal(t, base.HPGes, merged.HPGes)
	assert.Equal(t, base.FiberShroud, merged.FiberShroud)

	// base stays untouched
	assert.Equal(t, 400.0, base.Source.PosFromLArCenter)
}
