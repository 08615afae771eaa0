// Package cli implement the geom-scarf command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	conf "github.com/legend-exp/geom-scarf/config"
)

var log = conf.NamedLogger("cli")

// Launch parses arguments and runs the geometry construction.
func Launch() {
	runConfig := conf.Config{}

	rootCmd := &cobra.Command{
		Use:   "geom-scarf <filename.gdml>",
		Short: "construct the SCARF test stand geometry",
		Long: "Constructs the monte carlo geometry of the SCARF liquid argon " +
			"test stand and writes it to a GDML file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			runConfig.OutputPath = args[0]
			return run(&runConfig)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&runConfig.GeometryConfig, "config", "c", "",
		"built-in geometry config name or path to a YAML geometry config")
	flags.StringVar(&runConfig.DetectorDBPath, "detector-db", "",
		"directory with detector metadata records (default $SCARF_METADATA)")
	flags.StringVar(&runConfig.ExtraDetectorsPath, "extra-detectors", "",
		"directory with supplementary detector records, shadowing the main database")
	flags.BoolVar(&runConfig.PublicGeometry, "public-geometry", false,
		"construct from public sample metadata when no database is available")
	flags.StringVar(&runConfig.LoggingLevel, "logging-level", "",
		"log verbosity: panic, fatal, error, warn, info or debug")

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
