// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package models

import "time"

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse wraps every JSON payload except the raw GeoJSON and XLSX
// exports. Data is null when Status is StatusError.
//
//	{"status":"success","data":{"stores":[...],"total":1},"metadata":{"timestamp":"2026-03-01T12:00:00Z","query_time_ms":2}}
//	{"status":"error","data":null,"error":{"code":"VALIDATION_ERROR","message":"top must be at least 1"},"metadata":{...}}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"` // served from the analytics cache
}

// APIError codes: VALIDATION_ERROR, INVALID_REQUEST, DATA_LOAD_ERROR,
// DATA_WRITE_ERROR, FEEDBACK_UNAVAILABLE, FEEDBACK_READ_ERROR,
// FEEDBACK_WRITE_ERROR, EXPORT_ERROR, RATE_LIMITED and INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by /health and /health/ready. Status is
// "healthy" or "degraded".
type HealthStatus struct {
	Status      string  `json:"status"`
	Version     string  `json:"version"`
	StoresReady bool    `json:"stores_ready"`
	StoreCount  int     `json:"store_count"`
	Uptime      float64 `json:"uptime"`
}

// Liveness is returned by /health/live.
type Liveness struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime"`
}
