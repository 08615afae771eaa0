package config

import (
	"fmt"
	"os"
	"strings"
)

type checkFunc func(conf *Config) error

func checkConfig(conf *Config) error {
	checkFuncs := []checkFunc{
		checkOutputPath,
		checkLoggingLevel,
		checkDetectorDirs,
	}

	for _, checkFunc := range checkFuncs {
		if err := checkFunc(conf); err != nil {
			return err
		}
	}

	return nil
}

func checkOutputPath(conf *Config) error {
	if conf.OutputPath == "" {
		return fmt.Errorf("missing output file path")
	}
	if !strings.HasSuffix(conf.OutputPath, ".gdml") {
		return fmt.Errorf("output file %q does not end with .gdml", conf.OutputPath)
	}
	return nil
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}

func checkLoggingLevel(conf *Config) error {
	level := strings.ToLower(conf.LoggingLevel)
	for _, l := range availableLoggingLevels {
		if l == level {
			conf.LoggingLevel = level
			return nil
		}
	}
	return fmt.Errorf("invalid logging level %q, one of: %s",
		conf.LoggingLevel, strings.Join(availableLoggingLevels, ", "))
}

func checkDetectorDirs(conf *Config) error {
	for _, dir := range []string{conf.DetectorDBPath, conf.ExtraDetectorsPath} {
		if dir == "" {
			continue
		}
		stat, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("detector metadata directory %q: %w", dir, err)
		}
		if !stat.IsDir() {
			return fmt.Errorf("detector metadata path %q is not a directory", dir)
		}
	}
	return nil
}
