package scarf

import "fmt"

// E maps config sections to their validation errors.
type E map[string]error

func (e E) Error() string {
	return fmt.Sprintf("%+v", map[string]error(e))
}

// Validate checks the configuration sections. All found problems are
// reported at once.
func (c *Config) Validate() error {
	errs := E{}

	for i, hpge := range c.HPGes {
		if hpge.Name == "" {
			errs[fmt.Sprintf("hpges[%d]", i)] = fmt.Errorf("missing detector name")
		}
	}

	if shroud := c.FiberShroud; shroud != nil {
		switch shroud.Mode {
		case ShroudSimplified:
		case ShroudDetailed:
			if shroud.Modules == nil {
				errs["fiber_shroud"] = fmt.Errorf("detailed mode needs a modules section")
			} else if shroud.Modules.Count <= 0 {
				errs["fiber_shroud"] = fmt.Errorf("modules count cannot be <= 0")
			}
		default:
			errs["fiber_shroud"] = fmt.Errorf("unsupported mode %q", shroud.Mode)
		}
		if shroud.HeightInMM <= 0 {
			errs["fiber_shroud.height_in_mm"] = fmt.Errorf("height cannot be <= 0.0")
		}
		if shroud.RadiusInMM <= 0 {
			errs["fiber_shroud.radius_in_mm"] = fmt.Errorf("radius cannot be <= 0.0")
		}
	}

	if cavern := c.Cavern; cavern != nil {
		if cavern.InnerRadiusInMM <= 0 {
			errs["cavern.inner_radius_in_mm"] = fmt.Errorf("radius cannot be <= 0.0")
		}
		if cavern.OuterRadiusInMM <= cavern.InnerRadiusInMM {
			errs["cavern.outer_radius_in_mm"] = fmt.Errorf("outer radius cannot be <= inner radius")
		}
	}

	if cryostat := c.Cryostat; cryostat != nil {
		if err := cryostat.validate(); err != nil {
			errs["cryostat"] = err
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (c *CryostatConfig) validate() error {
	for name, value := range map[string]float64{
		"inner.radius_in_mm":          c.Inner.RadiusInMM,
		"inner.upper.height_in_mm":    c.Inner.Upper.HeightInMM,
		"inner.upper.thickness_in_mm": c.Inner.Upper.ThicknessInMM,
		"inner.lower.height_in_mm":    c.Inner.Lower.HeightInMM,
		"inner.lower.thickness_in_mm": c.Inner.Lower.ThicknessInMM,
		"outer.radius_in_mm":          c.Outer.RadiusInMM,
		"outer.height_in_mm":          c.Outer.HeightInMM,
		"outer.thickness_in_mm":       c.Outer.ThicknessInMM,
		"top.height_in_mm":            c.Top.HeightInMM,
		"top.radius_in_mm":            c.Top.RadiusInMM,
		"gas_argon.height_in_mm":      c.GasArgon.HeightInMM,
		"lead.thickness_in_mm":        c.Lead.ThicknessInMM,
	} {
		if value <= 0 {
			return fmt.Errorf("%s cannot be <= 0.0", name)
		}
	}
	if c.Lead.AirGapInMM < 0 {
		return fmt.Errorf("lead.air_gap_in_mm cannot be < 0.0")
	}
	return nil
}
