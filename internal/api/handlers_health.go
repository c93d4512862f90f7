// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/storefinder/internal/logging"
	"github.com/tomtom215/storefinder/internal/models"
)

// Health reports service status
//
// @Summary Health check
// @Description Reports the service version, uptime and whether the store collection can be loaded. A failing load reports "degraded" but still answers 200.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondOK(w, http.StatusOK, h.probeStores(r), start, false)
}

// HealthLive is the liveness probe
//
// @Summary Liveness probe
// @Description Answers 200 as long as the process serves HTTP.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.Liveness} "Alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondOK(w, http.StatusOK, models.Liveness{Alive: true, Uptime: h.uptime()}, start, false)
}

// HealthReady is the readiness probe
//
// @Summary Readiness probe
// @Description Answers 200 when the store collection can be loaded and 503 otherwise.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Ready"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "Not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := h.probeStores(r)
	if health.StoresReady {
		respondOK(w, http.StatusOK, health, time.Now(), false)
		return
	}
	// The probe payload is still useful to operators, so it goes in Data.
	writeEnvelope(w, http.StatusServiceUnavailable, &models.APIResponse{
		Status:   models.StatusError,
		Data:     health,
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    &models.APIError{Code: "DATA_LOAD_ERROR", Message: "Store data is not available"},
	})
}

func (h *Handler) uptime() float64 {
	return time.Since(h.startTime).Seconds()
}

// probeStores loads the collection through the repository, which serves
// its cached copy when caching is enabled.
func (h *Handler) probeStores(r *http.Request) models.HealthStatus {
	health := models.HealthStatus{Status: "healthy", Version: h.version, Uptime: h.uptime()}

	records, err := h.source.Load(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Health check could not load stores")
		health.Status = "degraded"
		return health
	}
	health.StoresReady = true
	health.StoreCount = len(records)
	return health
}
