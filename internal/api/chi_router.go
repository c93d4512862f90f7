// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/storefinder/internal/config"
	"github.com/tomtom215/storefinder/internal/middleware"
)

// compressionLevel is the gzip level used for API responses.
const compressionLevel = 5

// Router wires the Handler into a chi route tree.
type Router struct {
	handler *Handler
	guards  *Guards
}

// NewRouter creates a Router. A nil Guards uses the default security config.
func NewRouter(handler *Handler, guards *Guards) *Router {
	if guards == nil {
		guards = NewGuards(config.Defaults().Security)
	}
	return &Router{handler: handler, guards: guards}
}

// wrap adapts HandlerFunc middleware to chi's func(http.Handler) http.Handler.
func wrap(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global Middleware Stack
	r.Use(wrap(middleware.RequestID)) // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)
	r.Use(wrap(middleware.AccessLog))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.guards.CORS()) // CORS must be global to handle OPTIONS preflight

	// Health Endpoints
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.guards.Limit(LimitHealth))
		r.Use(securityHeaders)
		r.Use(wrap(middleware.PrometheusMetrics))

		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// Core API Endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.guards.General())
		r.Use(securityHeaders)
		r.Use(wrap(middleware.PrometheusMetrics))
		r.Use(chimiddleware.Compress(compressionLevel))

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", router.handler.Stores)
			r.Get("/types", router.handler.StoreTypes)
			r.Get("/geojson", router.handler.GeoJSON)
			r.With(router.guards.Limit(LimitExport)).Get("/export.xlsx", router.handler.ExportXLSX)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/summary", router.handler.AnalyticsSummary)
			r.Get("/top-rated", router.handler.TopRated)
			r.Get("/rating-distribution", router.handler.RatingDistribution)
			r.Get("/map-view", router.handler.MapView)
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Get("/", router.handler.ListFeedback)
			r.With(router.guards.Limit(LimitFeedback)).Post("/", router.handler.SubmitFeedback)
		})
	})

	// Operations
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
