// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

// Package metrics provides Prometheus instrumentation for Storefinder.
//
// Collectors are registered with the default registry through promauto and
// exposed by the HTTP server on /metrics. Callers use the Record* helpers
// rather than touching collectors directly.
//
// # Metric Families
//
// Store repository:
//   - store_loads_total{source}: loads served from cache, file or first-run seed
//   - store_load_errors_total: loads that failed with a data load error
//   - store_load_duration_seconds: load latency
//   - store_saves_total{status}: whole-collection saves
//   - store_records: size of the current collection
//
// HTTP API:
//   - api_requests_total{method,endpoint,status_code}
//   - api_request_duration_seconds{method,endpoint}
//   - api_active_requests
//
// Supporting components:
//   - cache_hits_total, cache_misses_total, cache_evictions_total{cache_type}
//   - feedback_submissions_total{status}, feedback_gc_runs_total
//   - store_exports_total{format}
//
// # Example PromQL
//
//	# Share of loads served from memory
//	sum(rate(store_loads_total{source="cache"}[5m])) / sum(rate(store_loads_total[5m]))
//
//	# p95 API latency per endpoint
//	histogram_quantile(0.95, sum by (le, endpoint) (rate(api_request_duration_seconds_bucket[5m])))
package metrics
