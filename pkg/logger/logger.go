// Package logger configures zerolog for the kiosk binaries.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Options controls logger construction
type Options struct {
	Service string
	Level   string
	Pretty  bool
	Output  io.Writer
}

// New builds a zerolog logger and installs it as the global logger.
// Unknown levels fall back to info.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Str("service", opts.Service).
		Logger()

	zlog.Logger = l
	return l
}

// ParseLevel maps a config value to a zerolog level
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop returns a disabled logger for tests and silent runs
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// FromContext returns the logger stored in ctx, or the global logger
func FromContext(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &zlog.Logger
}
