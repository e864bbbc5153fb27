package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies that Load applies the expected default values
// when no environment variables are set.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 1000, cfg.Sample.Size, "Default sample size should be 1000")
	assert.Equal(t, int64(42), cfg.Sample.Seed, "Default sample seed should be 42")
	assert.Equal(t, 2, cfg.Analysis.Precision, "Default precision should be 2 decimal places")
}

// TestLoadFromEnv verifies that Load correctly reads values from environment
// variables with the CENSUS_ prefix.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CENSUS_SERVER_PORT", "9090")
	t.Setenv("CENSUS_SERVER_LOG_LEVEL", "debug")
	t.Setenv("CENSUS_SAMPLE_SIZE", "250")
	t.Setenv("CENSUS_SAMPLE_SEED", "7")
	t.Setenv("CENSUS_ANALYSIS_PRECISION", "1")

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 250, cfg.Sample.Size)
	assert.Equal(t, int64(7), cfg.Sample.Seed)
	assert.Equal(t, 1, cfg.Analysis.Precision)
}

// TestLoadValidationErrors verifies that invalid values are rejected.
func TestLoadValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid log level", "CENSUS_SERVER_LOG_LEVEL", "verbose"},
		{"port out of range", "CENSUS_SERVER_PORT", "70000"},
		{"negative sample size", "CENSUS_SAMPLE_SIZE", "-5"},
		{"sample size too large", "CENSUS_SAMPLE_SIZE", "5000000"},
		{"precision too large", "CENSUS_ANALYSIS_PRECISION", "12"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			cfg, err := Load()
			assert.Error(t, err, "Load() should reject %s=%s", tc.key, tc.value)
			assert.Nil(t, cfg)
		})
	}
}
