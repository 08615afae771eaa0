package cli

import (
	conf "github.com/legend-exp/geom-scarf/config"
	"github.com/legend-exp/geom-scarf/gdml"
	"github.com/legend-exp/geom-scarf/metadata"
	"github.com/legend-exp/geom-scarf/scarf"
)

// run executes one geometry construction: load the geometry config, open
// the detector databases, construct the registry and write the GDML file.
func run(runConfig *conf.Config) error {
	if err := conf.SetupConfig(runConfig); err != nil {
		return err
	}
	if err := conf.SetLoggerLevel(runConfig.LoggingLevel); err != nil {
		return err
	}

	geometryConfig, err := scarf.LoadConfig(runConfig.GeometryConfig)
	if err != nil {
		return err
	}

	db, err := openDetectorDB(runConfig)
	if err != nil {
		return err
	}

	reg, err := scarf.Construct(geometryConfig, db, scarf.Options{
		PublicGeometry: runConfig.PublicGeometry,
	})
	if err != nil {
		return err
	}

	return gdml.Write(reg, runConfig.OutputPath)
}

// openDetectorDB assembles the detector metadata lookup chain. Records
// from --extra-detectors shadow the main database. A nil result means no
// database is available and construction falls back to public data.
func openDetectorDB(runConfig *conf.Config) (metadata.DB, error) {
	var chain metadata.Chain

	if runConfig.ExtraDetectorsPath != "" {
		extra, err := metadata.NewDirDB(runConfig.ExtraDetectorsPath)
		if err != nil {
			return nil, err
		}
		chain = append(chain, extra)
	}
	if runConfig.DetectorDBPath != "" {
		main, err := metadata.NewDirDB(runConfig.DetectorDBPath)
		if err != nil {
			return nil, err
		}
		chain = append(chain, main)
	}

	if len(chain) == 0 {
		return nil, nil
	}
	return chain, nil
}
