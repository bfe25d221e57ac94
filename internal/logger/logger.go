// Package logger builds the process-wide slog.Logger from configuration.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the level and output format of a logger
type Options struct {
	Level  string // debug, info, warn or error
	Format string // json or text
	Output io.Writer
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return slog.LevelInfo, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// New returns a logger for options. Unknown levels or formats fall back to
// info and json, and the fallback is reported through the new logger.
func New(options Options) *slog.Logger {
	lvl, ok := level(options.Level)
	if !ok {
		bad := options.Level
		options.Level = ""
		logger := New(options)
		logger.Warn("could not parse logger level", slog.String("level", bad))
		return logger
	}
	opts := slog.HandlerOptions{Level: lvl}

	output := options.Output
	if output == nil {
		output = os.Stdout
	}

	switch strings.ToLower(options.Format) {
	case "", "json":
		return slog.New(slog.NewJSONHandler(output, &opts))
	case "text":
		return slog.New(slog.NewTextHandler(output, &opts))
	default:
		bad := options.Format
		options.Format = "json"
		logger := New(options)
		logger.Warn("could not parse logger format", slog.String("format", bad))
		return logger
	}
}
