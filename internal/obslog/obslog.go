// Package obslog wires up the zerolog logger shared by the cachebench
// CLI and its subcommands.
package obslog

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a zerolog.Logger gated at levelStr ("debug", "info", "warn",
// "error"; unrecognized values fall back to info). When format is
// "console" output is written through zerolog's human-readable console
// writer; anything else (including the empty string) produces newline
// JSON suitable for log aggregation.
func New(levelStr, format string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer = os.Stderr
	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	if format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: writer, TimeFormat: "15:04:05"}).
			Level(level).With().Timestamp().Logger()
	}
	return logger
}
