// Package logger builds the zerolog logger used across the CLI.
//
// Diagnostics go to stderr so command output on stdout stays clean and
// pipeable. The default format is the human console writer; set the
// format to "json" to get machine-readable lines instead.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how the logger is built.
type Options struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	// Unrecognised or empty values fall back to "info".
	Level string
	// Format selects the output encoding: "console" (default) or "json".
	Format string
	// Output overrides the destination. Defaults to os.Stderr.
	Output io.Writer
}

// New builds a logger from opts. The level is applied globally so it can
// still be lowered after construction (the --verbose flag does this).
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.ToLower(strings.TrimSpace(opts.Format)) != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	zerolog.SetGlobalLevel(ParseLevel(opts.Level))

	return zerolog.New(out).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to a zerolog.Level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
