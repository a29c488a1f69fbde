// Package logging builds the zerolog loggers used by the CLI and API.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level and output format.
type Config struct {
	// Level is a zerolog level name; unparseable values fall back to info.
	Level string
	// Format is "console" (human-readable) or "json".
	Format string
	// Out defaults to os.Stderr.
	Out io.Writer
}

// New returns a logger writing to cfg.Out with a timestamp on every event.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
