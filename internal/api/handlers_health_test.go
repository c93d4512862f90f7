// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/storefinder/internal/models"
)

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.get(t, "/api/v1/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var health models.HealthStatus
	decodeData(t, w, &health)

	if health.Status != "healthy" || !health.StoresReady || health.StoreCount != 5 {
		t.Errorf("health = %+v", health)
	}
	if health.Version != "test" {
		t.Errorf("Version = %q, want test", health.Version)
	}
}

func TestHealth_Degraded(t *testing.T) {
	env := setupTestEnv(t)
	env.corrupt(t)

	w := env.get(t, "/api/v1/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, health must answer even when degraded", w.Code)
	}

	var health models.HealthStatus
	decodeData(t, w, &health)
	if health.Status != "degraded" || health.StoresReady {
		t.Errorf("health = %+v", health)
	}
}

func TestHealthLive(t *testing.T) {
	env := setupTestEnv(t)
	env.corrupt(t)

	if w := env.get(t, "/api/v1/health/live"); w.Code != http.StatusOK {
		t.Errorf("live status = %d, want 200 regardless of data", w.Code)
	}
}

func TestHealthReady(t *testing.T) {
	tests := []struct {
		name    string
		corrupt bool
		status  int
	}{
		{"ready", false, http.StatusOK},
		{"not ready", true, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			if tt.corrupt {
				env.corrupt(t)
			}
			w := env.get(t, "/api/v1/health/ready")
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}

			var health models.HealthStatus
			got := decodeData(t, w, &health)
			if health.StoresReady == tt.corrupt {
				t.Errorf("StoresReady = %v with corrupt=%v", health.StoresReady, tt.corrupt)
			}
			if tt.corrupt && (got.Error == nil || got.Error.Code != "DATA_LOAD_ERROR") {
				t.Errorf("error = %+v, want DATA_LOAD_ERROR", got.Error)
			}
		})
	}
}
