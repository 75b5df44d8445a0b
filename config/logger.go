package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a slog.Logger for the given environment and level.
// Production uses the JSON handler (CloudWatch parses it); otherwise text.
// level may be debug, info, warn or error; anything else means info.
func NewLogger(environment, level string) *slog.Logger {
	return newLogger(os.Stdout, environment, level)
}

func newLogger(w io.Writer, environment, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
