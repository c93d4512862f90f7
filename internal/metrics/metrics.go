// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store load sources.
const (
	LoadSourceCache = "cache"
	LoadSourceFile  = "file"
	LoadSourceSeed  = "seed"
)

var (
	// Store Repository Metrics
	StoreLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_loads_total",
			Help: "Total number of store collection loads by source",
		},
		[]string{"source"}, // "cache", "file", "seed"
	)

	StoreLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_load_errors_total",
			Help: "Total number of failed store collection loads",
		},
	)

	StoreLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "store_load_duration_seconds",
			Help:    "Duration of store collection loads in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	StoreSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_saves_total",
			Help: "Total number of store collection saves by status",
		},
		[]string{"status"}, // "success", "error"
	)

	StoreRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "store_records",
			Help: "Number of records in the most recently loaded or saved store collection",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "analytics"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// Feedback Metrics
	FeedbackSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submissions_total",
			Help: "Total number of feedback submissions by status",
		},
		[]string{"status"},
	)

	FeedbackGCRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_gc_runs_total",
			Help: "Total number of feedback store value-log GC runs",
		},
	)

	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_rate_limited_total",
			Help: "Total number of requests rejected by a rate limiter",
		},
	)

	// Export Metrics
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_exports_total",
			Help: "Total number of store exports by format",
		},
		[]string{"format"}, // "xlsx", "geojson"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordStoreLoad records a successful store collection load.
func RecordStoreLoad(source string, records int, duration time.Duration) {
	StoreLoadsTotal.WithLabelValues(source).Inc()
	StoreLoadDuration.Observe(duration.Seconds())
	StoreRecords.Set(float64(records))
}

// RecordStoreLoadError records a failed store collection load.
func RecordStoreLoadError() {
	StoreLoadErrors.Inc()
}

// RecordStoreSave records a store collection save.
func RecordStoreSave(records int, err error) {
	if err != nil {
		StoreSavesTotal.WithLabelValues("error").Inc()
		return
	}
	StoreSavesTotal.WithLabelValues("success").Inc()
	StoreRecords.Set(float64(records))
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup records a cache hit or miss for the given cache type.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
		return
	}
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// RecordFeedback records a feedback submission.
func RecordFeedback(err error) {
	if err != nil {
		FeedbackSubmitted.WithLabelValues("error").Inc()
		return
	}
	FeedbackSubmitted.WithLabelValues("success").Inc()
}

// RecordExport records a completed export.
func RecordExport(format string) {
	ExportsTotal.WithLabelValues(format).Inc()
}
