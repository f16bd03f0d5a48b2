// SPDX-License-Identifier: MIT
//
// File: logging.go
// Role: centralized zerolog facade. One global logger, configured once at
//       startup; library packages stay logger-free and return errors,
//       the CLI logs at its boundary.

// Package logging provides zerolog-based structured logging for collabnet.
//
// Usage:
//
//	logging.Init(logging.Config{Level: "info", Format: "console"})
//	logging.Info().Int("records", n).Msg("tracks loaded")
//
// Always terminate chains with .Msg() or .Send(); an unterminated event is
// never emitted.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: debug, info, warn, error. Default: info.
	Level string

	// Format is the output format: json or console. Default: console.
	Format string

	// Output is the log writer. Default: os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the defaults used before Init is called.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

var (
	log zerolog.Logger

	// mu protects reconfiguration; events read the logger by value.
	mu sync.RWMutex
)

//nolint:gochecknoinits // logging must work before an explicit Init call
func init() {
	initLogger(DefaultConfig())
}

// Init configures the global logger. Safe to call more than once;
// subsequent calls reconfigure.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

func initLogger(cfg Config) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "console"
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	output := cfg.Output
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	log = zerolog.New(output).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// L returns the global logger for direct use or child derivation.
func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return log
}

// With creates a child logger context with additional default fields.
//
//	buildLog := logging.With().Str("component", "builder").Logger()
func With() zerolog.Context {
	mu.RLock()
	defer mu.RUnlock()

	return log.With()
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event {
	l := L()

	return l.Debug()
}

// Info starts an info-level event.
func Info() *zerolog.Event {
	l := L()

	return l.Info()
}

// Warn starts a warn-level event.
func Warn() *zerolog.Event {
	l := L()

	return l.Warn()
}

// Error starts an error-level event.
func Error() *zerolog.Event {
	l := L()

	return l.Error()
}

// Fatal starts a fatal-level event; Msg exits the process.
func Fatal() *zerolog.Event {
	l := L()

	return l.Fatal()
}
