package scarf

import (
	"fmt"

	"github.com/legend-exp/geom-scarf/geometry"
	"github.com/legend-exp/geom-scarf/metadata"
	"github.com/legend-exp/geom-scarf/setup"
)

// World cube edge in mm.
const worldSize = 20000

// Options tune geometry construction.
type Options struct {
	// PublicGeometry allows constructing from the public fallback
	// metadata only. Requiring an explicit opt-in avoids accidental
	// creation of wrong geometries from sample crystal data.
	PublicGeometry bool
}

// Construct builds the SCARF geometry and returns the registry containing
// the world volume.
//
// A nil config builds the bare cryostat. A nil db falls back to the public
// metadata database, which must be explicitly allowed via
// Options.PublicGeometry.
func Construct(cfg *Config, db metadata.DB, opts Options) (*setup.Registry, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if db == nil {
		if !opts.PublicGeometry {
			return nil, fmt.Errorf("cannot construct geometry from public data only, if not explicitly instructed")
		}
		log.Warn("CONSTRUCTING GEOMETRY FROM PUBLIC DATA ONLY")
		db = metadata.NewPublicDB()
	}

	reg := setup.NewRegistry()
	mats := NewMaterialRegistry(reg)

	world, err := buildWorld(mats, reg)
	if err != nil {
		return nil, err
	}

	cryostatCfg := cfg.Cryostat
	if cryostatCfg == nil {
		cryostatCfg, err = DefaultCryostat()
		if err != nil {
			return nil, err
		}
	}
	cryostat, err := BuildCryostat(cryostatCfg, world, mats, reg)
	if err != nil {
		return nil, err
	}

	if len(cfg.HPGes) > 0 {
		if err := BuildStrings(cfg.HPGes, cryostat, db, mats, reg); err != nil {
			return nil, err
		}
	}

	if cfg.FiberShroud != nil {
		if err := BuildFiberShroud(cfg.FiberShroud, cryostat, mats, reg); err != nil {
			return nil, err
		}
	}

	if cfg.Source != nil {
		if err := BuildSource(cfg.Source, cryostat, mats, reg); err != nil {
			return nil, err
		}
	}

	if cfg.Cavern != nil {
		if err := BuildCavern(cfg.Cavern, world, mats, reg); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func buildWorld(mats *MaterialRegistry, reg *setup.Registry) (*setup.LogicalVolume, error) {
	vacuum, err := mats.Predefined("G4_Galactic")
	if err != nil {
		return nil, err
	}

	worldSolid := &setup.Solid{
		Name: "world",
		Geometry: setup.BoxSolid{
			Size: geometry.Vec3D{X: worldSize, Y: worldSize, Z: worldSize},
		},
	}
	if err := reg.AddSolid(worldSolid); err != nil {
		return nil, err
	}

	world := &setup.LogicalVolume{
		Name:     "world",
		Solid:    worldSolid,
		Material: vacuum,
	}
	if err := reg.AddVolume(world); err != nil {
		return nil, err
	}
	if err := reg.SetWorld(world); err != nil {
		return nil, err
	}
	return world, nil
}
