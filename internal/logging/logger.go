// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

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
	// Level is the minimum log level: trace, debug, info, warn, error, fatal, panic, disabled.
	Level string

	// Format is the output format: json or console.
	Format string

	// Caller includes caller file and line number in logs.
	Caller bool

	// OmitTimestamp drops the time field. storectl sets it for terse stderr.
	OmitTimestamp bool

	// Output is the writer for log output. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the logger used before Init: info level JSON on stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Output: os.Stderr}
}

var (
	mu   sync.RWMutex
	root zerolog.Logger
)

//nolint:gochecknoinits // packages log during init of the server before main configures logging
func init() {
	root = build(DefaultConfig())
}

// Init replaces the global logger. Later calls reconfigure it.
func Init(cfg Config) {
	l := build(cfg)
	mu.Lock()
	root = l
	mu.Unlock()
}

func build(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	var w io.Writer = cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		w = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(w).With()
	if !cfg.OmitTimestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// parseLevel maps a configured level name to zerolog, falling back to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func current() *zerolog.Logger {
	mu.RLock()
	l := root
	mu.RUnlock()
	return &l
}

// SetLogger replaces the global logger. Tests use it to capture output.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	root = l
	mu.Unlock()
}

// GetLevel returns the current global log level.
func GetLevel() zerolog.Level {
	return zerolog.GlobalLevel()
}

// Debug starts a debug message.
func Debug() *zerolog.Event { return current().Debug() }

// Info starts an info message.
func Info() *zerolog.Event { return current().Info() }

// Warn starts a warning message.
func Warn() *zerolog.Event { return current().Warn() }

// Error starts an error message.
func Error() *zerolog.Event { return current().Error() }

// Fatal starts a fatal message; os.Exit(1) follows once it is written.
func Fatal() *zerolog.Event { return current().Fatal() }

// NewTestLogger creates a logger that writes JSON to w.
//
//	var buf bytes.Buffer
//	logging.SetLogger(logging.NewTestLogger(&buf))
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
