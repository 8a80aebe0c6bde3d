// Package logger builds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
)

// New returns a JSON or text logger writing to w at level.
func New(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With("service", "eutestdata")
}
