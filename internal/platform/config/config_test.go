package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, Server{
		Addr:            ":8080",
		LogLevel:        "info",
		LogFormat:       "json",
		MaxBatch:        100,
		ShutdownTimeout: 10 * time.Second,
		MetricsEnabled:  true,
	}, cfg)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("EUTD_ADDR", "127.0.0.1:9090")
	t.Setenv("EUTD_LOG_LEVEL", "debug")
	t.Setenv("EUTD_LOG_FORMAT", "text")
	t.Setenv("EUTD_MAX_BATCH", "500")
	t.Setenv("EUTD_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("EUTD_METRICS_ENABLED", "false")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, 500, cfg.MaxBatch)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.MetricsEnabled)
}

func TestFromEnvRejects(t *testing.T) {
	tests := map[string][2]string{
		"zero batch":       {"EUTD_MAX_BATCH", "0"},
		"huge batch":       {"EUTD_MAX_BATCH", "100000"},
		"non-numeric":      {"EUTD_MAX_BATCH", "lots"},
		"bad level":        {"EUTD_LOG_LEVEL", "loud"},
		"bad format":       {"EUTD_LOG_FORMAT", "xml"},
		"negative timeout": {"EUTD_SHUTDOWN_TIMEOUT", "-1s"},
	}
	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(" Warn ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
