// Package logging configures the process-wide slog logger from the
// LOG_LEVEL setting. Matching is case-insensitive and unknown values fall
// back to info.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// TextHandler builds a human-readable slog handler writing to the provided
// writer. The debug level also reports timestamps.
func TextHandler(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "info":
		lvl = log.InfoLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	case "fatal", "critical":
		lvl = log.FatalLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		Level:           lvl,
	})
}

// JSONHandler builds a structured slog handler for log collectors that
// expect one JSON object per line.
func JSONHandler(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: Level(logLevel),
	})
}

// Level maps a LOG_LEVEL string to the slog level used for filtering.
func Level(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal", "critical":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup installs the default logger for the process. Everything that logs
// through log/slog picks this up, including the request middleware.
func Setup(logLevel string) {
	slog.SetDefault(slog.New(TextHandler(logLevel, nil)))
}
