// Package logging configures slog for the server: JSON to stdout, with an
// optional database sink for errors.
package logging

import (
	"io"
	"log/slog"
	"os"
)

var stdout io.Writer = os.Stdout

// Setup installs a JSON logger on stdout as the default slog logger.
func Setup(level slog.Level) *slog.Logger {
	logger := slog.New(NewJSONHandler(stdout, level))
	slog.SetDefault(logger)
	return logger
}

func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// ParseLevel maps APP_ENV to a level: debug in development, info elsewhere.
func ParseLevel(env string) slog.Level {
	if env == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
