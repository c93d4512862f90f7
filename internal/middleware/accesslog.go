// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/storefinder/internal/logging"
)

// AccessLog writes one structured log line per request. Server errors log at
// warn level, everything else at debug so production logs stay quiet.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := wrapResponseWriter(w)

		next(sw, r)

		level := zerolog.DebugLevel
		if sw.statusCode >= http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}

		logging.Ctx(r.Context()).WithLevel(level).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("route", routePattern(r)).
			Int("status", sw.statusCode).
			Int("bytes", sw.bytes).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP request")
	}
}
