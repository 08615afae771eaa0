// Package config provide run configuration from command-line and environment.
package config

import "os"

// SetupConfig fills environment-derived defaults and checks the config.
func SetupConfig(conf *Config) error {
	if conf.DetectorDBPath == "" {
		if path := os.Getenv("SCARF_METADATA"); path != "" {
			conf.DetectorDBPath = path
		}
	}

	if conf.GeometryConfig == "" {
		conf.GeometryConfig = "scarf_pen.yaml"
	}

	if conf.LoggingLevel == "" {
		conf.LoggingLevel = "info"
	}

	return checkConfig(conf)
}
