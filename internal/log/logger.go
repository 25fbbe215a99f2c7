// SPDX-License-Identifier: MIT

// Package log bootstraps the zerolog logger the library traces through.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the package logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Service string    // optional service name attached to every log entry
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the package logger exactly once. Callers that never
// invoke it get an info-level logger on stderr, adjustable through the
// LOG_LEVEL and LOG_SERVICE environment variables.
func Configure(cfg Config) {
	once.Do(func() {
		writer := cfg.Output
		if writer == nil {
			writer = os.Stderr
		}

		base = zerolog.New(writer).Level(resolveLevel(cfg)).With().
			Timestamp().
			Str("service", resolveService(cfg)).
			Logger()
	})
}

// resolveLevel picks the log level from the explicit config, then the
// LOG_LEVEL environment variable. Unparseable levels fall back to info.
func resolveLevel(cfg Config) zerolog.Level {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	} else if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	return level
}

// resolveService picks the service name from the explicit config, then the
// LOG_SERVICE environment variable, then the package default.
func resolveService(cfg Config) string {
	if cfg.Service != "" {
		return cfg.Service
	}
	if service := os.Getenv("LOG_SERVICE"); service != "" {
		return service
	}
	return "envconfig"
}

func logger() zerolog.Logger {
	Configure(Config{})
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str("component", component).Logger()
}
