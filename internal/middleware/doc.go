// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

/*
Package middleware provides HTTP middleware for the storefinder API.

All middleware here has the http.HandlerFunc-wrapping shape; the api package
adapts it into chi's func(http.Handler) http.Handler form.

Key Components:

  - RequestID: X-Request-ID propagation into the response and the logging
    context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - AccessLog: one zerolog line per request

Typical order inside the router:

	r.Use(adapt(middleware.RequestID))
	r.Use(adapt(middleware.AccessLog))
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(adapt(middleware.PrometheusMetrics))
	    ...
	})

CORS, rate limiting and compression come from go-chi/cors, go-chi/httprate
and chi's own middleware package.
*/
package middleware
