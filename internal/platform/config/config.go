// Package config loads server and CLI configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// MaxBatchCeiling bounds EUTD_MAX_BATCH whatever the operator asks for.
const MaxBatchCeiling = 10_000

// Server captures HTTP server and fixture generation settings.
type Server struct {
	Addr            string        `env:"EUTD_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"EUTD_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"EUTD_LOG_FORMAT" envDefault:"json"`
	MaxBatch        int           `env:"EUTD_MAX_BATCH" envDefault:"100"`
	ShutdownTimeout time.Duration `env:"EUTD_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled  bool          `env:"EUTD_METRICS_ENABLED" envDefault:"true"`
}

// FromEnv parses and validates the server configuration.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Server) Validate() error {
	if c.MaxBatch < 1 || c.MaxBatch > MaxBatchCeiling {
		return fmt.Errorf("EUTD_MAX_BATCH must be between 1 and %d, got %d", MaxBatchCeiling, c.MaxBatch)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("EUTD_SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("EUTD_LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return nil
}

// ParseLevel maps debug, info, warn and error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
