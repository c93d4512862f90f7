// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// NewRequestID returns a random UUID for requests that arrive without one.
func NewRequestID() string {
	return uuid.NewString()
}

// ContextWithRequestID returns a copy of ctx carrying id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID, or "" if none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Ctx returns the global logger, tagged with the request_id found in ctx.
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Store load failed")
func Ctx(ctx context.Context) *zerolog.Logger {
	l := current()
	if id := RequestIDFromContext(ctx); id != "" {
		tagged := l.With().Str("request_id", id).Logger()
		return &tagged
	}
	return l
}
