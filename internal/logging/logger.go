// Package logging maps the client's verbosity profiles onto zerolog loggers.
package logging

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"elementsrpc/internal/config"
)

var defaultProfile atomic.Value

func init() {
	defaultProfile.Store(config.LogProfileNormal)
}

// SetDefaultProfile sets the process-wide profile used by clients whose
// configuration does not name one. Unknown profiles are ignored.
func SetDefaultProfile(profile string) {
	switch profile {
	case config.LogProfileNone, config.LogProfileNormal, config.LogProfileDebug:
		defaultProfile.Store(profile)
	}
}

// DefaultProfile returns the process-wide profile
func DefaultProfile() string {
	return defaultProfile.Load().(string)
}

// Level returns the zerolog level for a profile
func Level(profile string) zerolog.Level {
	switch profile {
	case config.LogProfileNone:
		return zerolog.Disabled
	case config.LogProfileDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger for the given profile and format writing to out.
// An empty profile selects the process-wide default.
func New(profile, format string, out io.Writer) zerolog.Logger {
	if profile == "" {
		profile = DefaultProfile()
	}
	if profile == config.LogProfileNone {
		return zerolog.Nop()
	}

	if format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).Level(Level(profile)).With().Timestamp().Logger()
}

// FromConfig builds the logger described by cfg, writing to stderr
func FromConfig(cfg *config.Config) zerolog.Logger {
	return New(cfg.LogProfile, cfg.LogFormat, os.Stderr)
}
