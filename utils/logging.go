package utils

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ParseLogLevel maps a config log level name to a slog level
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Wrapf(ErrInvalidConfig, "[ParseLogLevel] unknown log level: %q", name)
}

// NewLogger builds a text logger writing to w, tagged with a fresh run id
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(slog.String("run_id", uuid.NewString()))
}
