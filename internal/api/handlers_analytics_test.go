// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"context"
	"math"
	"net/http"
	"testing"

	"github.com/tomtom215/storefinder/internal/models"
)

func TestAnalyticsSummary(t *testing.T) {
	env := setupTestEnv(t)

	w := env.get(t, "/api/v1/analytics/summary?top=2")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var summary models.AnalyticsSummary
	decodeData(t, w, &summary)

	if summary.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", summary.TotalCount)
	}
	if summary.StoreTypes != 5 {
		t.Errorf("StoreTypes = %d, want 5", summary.StoreTypes)
	}
	if summary.TotalReviews != 525 {
		t.Errorf("TotalReviews = %d, want 525", summary.TotalReviews)
	}
	if math.Abs(summary.AverageRating-4.5) > 1e-9 {
		t.Errorf("AverageRating = %v, want 4.5", summary.AverageRating)
	}
	if len(summary.TopRated) != 2 || summary.TopRated[0].Name != "City Books" || summary.TopRated[1].Name != "Fashion Store" {
		t.Errorf("TopRated = %+v", summary.TopRated)
	}
}

func TestAnalyticsSummary_DefaultTop(t *testing.T) {
	env := setupTestEnv(t)

	var summary models.AnalyticsSummary
	decodeData(t, env.get(t, "/api/v1/analytics/summary?type=books"), &summary)

	if summary.TotalCount != 1 || len(summary.TopRated) != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.CountsByType["books"] != 1 {
		t.Errorf("CountsByType = %v", summary.CountsByType)
	}
}

func TestAnalyticsSummary_Cached(t *testing.T) {
	env := setupTestEnv(t)

	first := decodeEnvelope(t, env.get(t, "/api/v1/analytics/summary"))
	if first.Metadata.Cached {
		t.Error("first request should not be served from cache")
	}

	second := decodeEnvelope(t, env.get(t, "/api/v1/analytics/summary"))
	if !second.Metadata.Cached {
		t.Error("second identical request should be served from cache")
	}

	other := decodeEnvelope(t, env.get(t, "/api/v1/analytics/summary?top=3"))
	if other.Metadata.Cached {
		t.Error("a different query must not hit the cached entry")
	}
}

func TestAnalyticsSummary_SaveInvalidatesCache(t *testing.T) {
	env := setupTestEnv(t)

	decodeEnvelope(t, env.get(t, "/api/v1/analytics/summary"))

	replacement := []models.StoreRecord{{
		ID: "9", Name: "Night Pharmacy", Type: "pharmacy",
		Address: "1 Late St", Lat: 40.7, Lng: -74.0, Rating: 3.9, Reviews: 12,
	}}
	if err := env.repo.Save(context.Background(), replacement); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var summary models.AnalyticsSummary
	env2 := decodeData(t, env.get(t, "/api/v1/analytics/summary"), &summary)
	if env2.Metadata.Cached {
		t.Error("response after save should not come from cache")
	}
	if summary.TotalCount != 1 || summary.TopRated[0].Name != "Night Pharmacy" {
		t.Errorf("summary after save = %+v", summary)
	}
}

func TestAnalytics_InvalidParameters(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name   string
		target string
	}{
		{"top zero", "/api/v1/analytics/summary?top=0"},
		{"top above max", "/api/v1/analytics/summary?top=101"},
		{"top not a number", "/api/v1/analytics/summary?top=five"},
		{"n negative", "/api/v1/analytics/top-rated?n=-1"},
		{"n above max", "/api/v1/analytics/top-rated?n=1000"},
		{"bins zero", "/api/v1/analytics/rating-distribution?bins=0"},
		{"bins above max", "/api/v1/analytics/rating-distribution?bins=51"},
		{"map view bad type", "/api/v1/analytics/map-view?type=a%2Fb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, env.get(t, tt.target), http.StatusBadRequest, "VALIDATION_ERROR")
		})
	}
}

func TestTopRated(t *testing.T) {
	env := setupTestEnv(t)

	var list models.StoreList
	decodeData(t, env.get(t, "/api/v1/analytics/top-rated?n=3"), &list)

	want := []string{"City Books", "Fashion Store", "Central Grocery"}
	if list.Total != len(want) {
		t.Fatalf("Total = %d, want %d", list.Total, len(want))
	}
	for i, name := range want {
		if list.Stores[i].Name != name {
			t.Errorf("stores[%d] = %q, want %q", i, list.Stores[i].Name, name)
		}
	}
}

func TestRatingDistribution(t *testing.T) {
	env := setupTestEnv(t)

	var dist models.RatingDistribution
	decodeData(t, env.get(t, "/api/v1/analytics/rating-distribution?bins=5"), &dist)

	if len(dist.Buckets) != 5 {
		t.Fatalf("len(Buckets) = %d, want 5", len(dist.Buckets))
	}
	if dist.Total != 5 {
		t.Errorf("Total = %d, want 5", dist.Total)
	}
	// Every sample rating is in [4, 5].
	if dist.Buckets[4].Count != 5 || dist.Buckets[4].Min != 4 || dist.Buckets[4].Max != 5 {
		t.Errorf("last bucket = %+v", dist.Buckets[4])
	}
}

func TestMapView(t *testing.T) {
	env := setupTestEnv(t)

	var view models.MapView
	decodeData(t, env.get(t, "/api/v1/analytics/map-view"), &view)

	if view.Count != 5 {
		t.Fatalf("Count = %d, want 5", view.Count)
	}
	if math.Abs(view.Center.Lat-40.7148) > 1e-9 || math.Abs(view.Center.Lng-(-74.0080)) > 1e-9 {
		t.Errorf("Center = %+v", view.Center)
	}
	if view.Bounds.MinLat != 40.7128 || view.Bounds.MaxLat != 40.7168 {
		t.Errorf("Bounds = %+v", view.Bounds)
	}
}

func TestMapView_Empty(t *testing.T) {
	env := setupTestEnv(t)

	var view models.MapView
	decodeData(t, env.get(t, "/api/v1/analytics/map-view?type=pharmacy"), &view)

	if view != (models.MapView{}) {
		t.Errorf("empty selection = %+v, want zero value", view)
	}
}

func TestAnalytics_DataLoadError(t *testing.T) {
	env := setupTestEnv(t)
	env.corrupt(t)

	for _, target := range []string{
		"/api/v1/analytics/summary",
		"/api/v1/analytics/top-rated",
		"/api/v1/analytics/rating-distribution",
		"/api/v1/analytics/map-view",
	} {
		t.Run(target, func(t *testing.T) {
			expectError(t, env.get(t, target), http.StatusInternalServerError, "DATA_LOAD_ERROR")
		})
	}
}

func TestHandler_ClearCacheWithoutCache(t *testing.T) {
	h := NewHandler(HandlerDeps{})
	h.ClearCache()
	if _, ok := h.cached("anything"); ok {
		t.Error("handler without cache reported a hit")
	}
}
