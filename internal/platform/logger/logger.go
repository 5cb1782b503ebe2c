// Package logger builds the process-wide structured logger. Every service
// and handler takes a *slog.Logger; this is the only place that decides how
// log lines actually look.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New returns a logger writing to stdout. Format is "json" or "text"; level
// is one of debug, info, warn, error. Unknown values fall back to text at
// info level.
func New(format, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
