package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LOSTCITIES_SEED", "LOSTCITIES_LOG_LEVEL", "LOSTCITIES_LOG_FILE", "LOSTCITIES_TELEMETRY",
		"HONEYCOMB_LOSTCITIES_API_KEY", "HONEYCOMB_LOSTCITIES_DATASET",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel:         "info",
		LogFile:          "lostcities.log",
		HoneycombDataset: "lostcities",
	}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOSTCITIES_SEED", "1234")
	t.Setenv("LOSTCITIES_LOG_LEVEL", "debug")
	t.Setenv("LOSTCITIES_TELEMETRY", "true")
	t.Setenv("HONEYCOMB_LOSTCITIES_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Telemetry)
	assert.Equal(t, "secret", cfg.HoneycombAPIKey)
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv("LOSTCITIES_SEED", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
