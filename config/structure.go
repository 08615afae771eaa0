package config

// Config contains a full geometry construction run configuration.
type Config struct {
	// OutputPath is the GDML file to write.
	OutputPath string

	// GeometryConfig is a built-in config name or a path to a YAML file.
	GeometryConfig string

	// DetectorDBPath is a directory containing per-detector metadata records.
	// Empty means no private database is available.
	DetectorDBPath string

	// ExtraDetectorsPath is a directory of supplementary per-detector records
	// which shadow the main database.
	ExtraDetectorsPath string

	// PublicGeometry allows constructing from the public fallback metadata
	// only. Without it a missing detector database is an error.
	PublicGeometry bool

	LoggingLevel string
}
