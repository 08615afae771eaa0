package scarf

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed configs/*.yaml
var builtinConfigs embed.FS

// Config is the geometry configuration root. All sections are optional;
// an absent section means the component is not built (the cryostat falls
// back to the built-in dimensions, since every other component lives
// inside it).
type Config struct {
	HPGes       []HPGeEntry        `yaml:"hpges,omitempty"`
	Source      *SourceConfig      `yaml:"source,omitempty"`
	FiberShroud *FiberShroudConfig `yaml:"fiber_shroud,omitempty"`
	Cavern      *CavernConfig      `yaml:"cavern,omitempty"`
	Cryostat    *CryostatConfig    `yaml:"cryostat,omitempty"`
}

// HPGeEntry places one HPGe detector. The name must resolve in the
// detector metadata database. The offset positions the p+ contact face
// relative to the liquid argon center, in mm.
type HPGeEntry struct {
	Name                  string  `yaml:"name"`
	PPlusPosFromLArCenter float64 `yaml:"pplus_pos_from_lar_center"`
}

// SourceConfig places the calibration source.
type SourceConfig struct {
	PosFromLArCenter float64 `yaml:"pos_from_lar_center"`
}

// ShroudMode selects the fiber shroud construction variant.
type ShroudMode string

// Supported fiber shroud modes.
const (
	ShroudSimplified ShroudMode = "simplified"
	ShroudDetailed   ShroudMode = "detailed"
)

// FiberShroudConfig describes the wavelength-shifting fiber shroud.
type FiberShroudConfig struct {
	Mode                   ShroudMode `yaml:"mode"`
	HeightInMM             float64    `yaml:"height_in_mm"`
	RadiusInMM             float64    `yaml:"radius_in_mm"`
	CenterPosFromLArCenter float64    `yaml:"center_pos_from_lar_center"`

	// Modules configures the detailed mode; ignored in simplified mode.
	Modules *FiberModulesConfig `yaml:"modules,omitempty"`
}

// FiberModulesConfig describes the fiber modules of the detailed shroud.
type FiberModulesConfig struct {
	Count               int     `yaml:"count"`
	NamePrefix          string  `yaml:"name_prefix"`
	ChannelTopPrefix    string  `yaml:"channel_top_prefix"`
	ChannelBottomPrefix string  `yaml:"channel_bottom_prefix"`
	BaseRawID           int     `yaml:"base_rawid"`
	TPBThicknessNM      float64 `yaml:"tpb_thickness_nm"`
}

// CavernConfig describes the simplified cavern shell.
type CavernConfig struct {
	InnerRadiusInMM float64 `yaml:"inner_radius_in_mm"`
	OuterRadiusInMM float64 `yaml:"outer_radius_in_mm"`
}

// VesselSection is one section of the inner cryostat wall.
type VesselSection struct {
	ThicknessInMM float64 `yaml:"thickness_in_mm"`
	HeightInMM    float64 `yaml:"height_in_mm"`
}

// InnerVessel describes the inner cryostat.
type InnerVessel struct {
	RadiusInMM float64       `yaml:"radius_in_mm"`
	Upper      VesselSection `yaml:"upper"`
	Lower      VesselSection `yaml:"lower"`
}

// OuterVessel describes the outer cryostat.
type OuterVessel struct {
	RadiusInMM    float64 `yaml:"radius_in_mm"`
	HeightInMM    float64 `yaml:"height_in_mm"`
	ThicknessInMM float64 `yaml:"thickness_in_mm"`
}

// LidConfig describes the cryostat lid.
type LidConfig struct {
	HeightInMM float64 `yaml:"height_in_mm"`
	RadiusInMM float64 `yaml:"radius_in_mm"`
}

// GasArgonConfig describes the gaseous argon gap on top of the LAr.
type GasArgonConfig struct {
	HeightInMM float64 `yaml:"height_in_mm"`
}

// LeadConfig describes the lead shield around the cryostat.
type LeadConfig struct {
	AirGapInMM    float64 `yaml:"air_gap_in_mm"`
	ThicknessInMM float64 `yaml:"thickness_in_mm"`
}

// CryostatConfig groups the cryostat dimensions.
type CryostatConfig struct {
	Inner    InnerVessel    `yaml:"inner"`
	Outer    OuterVessel    `yaml:"outer"`
	Top      LidConfig      `yaml:"top"`
	GasArgon GasArgonConfig `yaml:"gas_argon"`
	Lead     LeadConfig     `yaml:"lead"`
}

// LoadConfig loads a geometry configuration. The argument is either a path
// to a user YAML file, or the name of a config shipped with geom-scarf
// (eg. "scarf_pen.yaml").
func LoadConfig(nameOrPath string) (*Config, error) {
	raw, err := os.ReadFile(nameOrPath)
	if os.IsNotExist(err) {
		raw, err = builtinConfigs.ReadFile("configs/" + nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("geometry config not found: %s", nameOrPath)
		}
	} else if err != nil {
		return nil, fmt.Errorf("reading geometry config %q: %w", nameOrPath, err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("parsing geometry config %q: %w", nameOrPath, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultCryostat loads the built-in cryostat dimension block.
func DefaultCryostat() (*CryostatConfig, error) {
	raw, err := builtinConfigs.ReadFile("configs/cryostat.yaml")
	if err != nil {
		return nil, err
	}
	cryostat := &CryostatConfig{}
	if err := yaml.Unmarshal(raw, cryostat); err != nil {
		return nil, fmt.Errorf("parsing built-in cryostat config: %w", err)
	}
	return cryostat, nil
}

// MergeConfigs overlays extra on top of base. Non-empty sections of extra
// replace the corresponding sections of base. A nil extra returns base
// unchanged.
func MergeConfigs(base, extra *Config) *Config {
	if extra == nil {
		return base
	}
	merged := *base
	if len(extra.HPGes) > 0 {
		merged.HPGes = extra.HPGes
	}
	if extra.Source != nil {
		merged.Source = extra.Source
	}
	if extra.FiberShroud != nil {
		merged.FiberShroud = extra.FiberShroud
	}
	if extra.Cavern != nil {
		merged.Cavern = extra.Cavern
	}
	if extra.Cryostat != nil {
		merged.Cryostat = extra.Cryostat
	}
	return &merged
}
