package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Sample   SampleConfig   `mapstructure:"sample"   validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// SampleConfig controls the generated sample dataset: how many rows the
// sample endpoint produces by default and the seed that makes them
// reproducible.
type SampleConfig struct {
	Size int   `mapstructure:"size" validate:"required,gt=0,lte=100000"`
	Seed int64 `mapstructure:"seed"`
}

// AnalysisConfig contains settings for the demographic analyzer.
type AnalysisConfig struct {
	// Precision is the number of decimal places percentage answers keep.
	Precision int `mapstructure:"precision" validate:"gte=0,lte=6"`
}
