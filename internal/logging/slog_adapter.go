// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/rs/zerolog"
)

// SlogHandler is an slog.Handler that writes through zerolog. sutureslog
// needs a *slog.Logger; this keeps supervisor events in the same stream.
//
// Attributes passed to WithAttrs are folded into the zerolog context once,
// so per-record cost only covers the record's own attributes.
type SlogHandler struct {
	logger zerolog.Logger
	prefix string // dotted group path, "" or ending in "."
}

// NewSlogHandler wraps the global logger as configured at call time.
func NewSlogHandler() *SlogHandler {
	return &SlogHandler{logger: *current()}
}

// NewSlogHandlerWithLogger wraps logger.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout zerolog
func NewSlogHandlerWithLogger(logger zerolog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// NewSlogLogger returns an *slog.Logger over the global logger.
func NewSlogLogger() *slog.Logger {
	return slog.New(NewSlogHandler())
}

func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	zl := zerologLevel(level)
	return zl >= h.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

//nolint:gocritic // signature fixed by slog.Handler
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(zerologLevel(record.Level))
	record.Attrs(func(a slog.Attr) bool {
		event = appendAttr(event, h.prefix, a)
		return true
	})
	event.Msg(record.Message)
	return nil
}

func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	ctx := h.logger.With()
	for _, a := range attrs {
		ctx = appendAttr(ctx, h.prefix, a)
	}
	return &SlogHandler{logger: ctx.Logger(), prefix: h.prefix}
}

func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &SlogHandler{logger: h.logger, prefix: h.prefix + name + "."}
}

// fieldAppender is satisfied by both *zerolog.Event and zerolog.Context.
type fieldAppender[T any] interface {
	Str(key, val string) T
	Int64(key string, i int64) T
	Uint64(key string, i uint64) T
	Float64(key string, f float64) T
	Bool(key string, b bool) T
	Dur(key string, d time.Duration) T
	Time(key string, t time.Time) T
	AnErr(key string, err error) T
	Interface(key string, i interface{}) T
}

func appendAttr[T fieldAppender[T]](dst T, prefix string, a slog.Attr) T {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	key := prefix + a.Key

	switch a.Value.Kind() {
	case slog.KindGroup:
		inner := prefix
		if a.Key != "" {
			inner = key + "."
		}
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, inner, ga)
		}
		return dst
	case slog.KindString:
		return dst.Str(key, a.Value.String())
	case slog.KindInt64:
		return dst.Int64(key, a.Value.Int64())
	case slog.KindUint64:
		return dst.Uint64(key, a.Value.Uint64())
	case slog.KindFloat64:
		return dst.Float64(key, a.Value.Float64())
	case slog.KindBool:
		return dst.Bool(key, a.Value.Bool())
	case slog.KindDuration:
		return dst.Dur(key, a.Value.Duration())
	case slog.KindTime:
		return dst.Time(key, a.Value.Time())
	}
	if err, ok := a.Value.Any().(error); ok {
		return dst.AnErr(key, err)
	}
	return dst.Interface(key, a.Value.Any())
}

func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	case level >= slog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
