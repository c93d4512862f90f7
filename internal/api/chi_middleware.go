// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/storefinder/internal/config"
	"github.com/tomtom215/storefinder/internal/metrics"
)

// Limit caps requests per client IP within Window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// Route-group limits applied on top of the configured general limit.
var (
	LimitFeedback = Limit{Requests: 30, Window: time.Minute}
	LimitExport   = Limit{Requests: 10, Window: time.Minute}
	LimitHealth   = Limit{Requests: 1000, Window: time.Minute}
)

// Guards builds the CORS and rate limiting middleware from the security
// config. With rate limiting disabled every Limit is a pass-through.
type Guards struct {
	general  Limit
	disabled bool
	cors     func(http.Handler) http.Handler
}

// NewGuards builds the middleware for sec. An empty origin list rejects
// every cross-origin request.
func NewGuards(sec config.SecurityConfig) *Guards {
	return &Guards{
		general:  Limit{Requests: sec.RateLimitReqs, Window: sec.RateLimitWindow},
		disabled: sec.RateLimitDisabled,
		cors: cors.Handler(cors.Options{
			AllowedOrigins: sec.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "If-None-Match", "X-Request-ID"},
			ExposedHeaders: []string{"ETag", "X-Request-ID", "Retry-After"},
			MaxAge:         int((24 * time.Hour).Seconds()),
		}),
	}
}

func (g *Guards) CORS() func(http.Handler) http.Handler {
	return g.cors
}

// General limits the /api/v1 group.
func (g *Guards) General() func(http.Handler) http.Handler {
	return g.Limit(g.general)
}

// Limit returns an IP-keyed limiter. Rejected requests get a RATE_LIMITED
// envelope and are counted in metrics.
func (g *Guards) Limit(l Limit) func(http.Handler) http.Handler {
	if g.disabled || l.Requests <= 0 {
		return passThrough
	}
	return httprate.Limit(l.Requests, l.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RateLimitRejections.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(int(l.Window.Seconds())))
			respondError(w, http.StatusTooManyRequests, "RATE_LIMITED",
				"Too many requests, retry after "+l.Window.String(), nil)
		}),
	)
}

// securityHeaders sets the response hardening headers for API routes. HSTS
// is only sent over TLS.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		if r.TLS != nil {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}
		next.ServeHTTP(w, r)
	})
}

func passThrough(next http.Handler) http.Handler { return next }
