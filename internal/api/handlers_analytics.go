// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/storefinder/internal/cache"
	"github.com/tomtom215/storefinder/internal/models"
)

// checkCacheAndReturnIfHit writes the cached response for key, if present,
// and reports whether it did.
func (h *Handler) checkCacheAndReturnIfHit(w http.ResponseWriter, key string, start time.Time) bool {
	if data, ok := h.cached(key); ok {
		respondOK(w, http.StatusOK, data, start, true)
		return true
	}
	return false
}

// AnalyticsSummary returns aggregate statistics
//
// @Summary Catalog summary
// @Description Returns counts by type, the average rating, total reviews and the top rated stores for the filtered collection. Responses are cached per query until the store collection is saved.
// @Tags Analytics
// @Produce json
// @Param type query string false "Store type, or 'all'" maxlength(64)
// @Param search query string false "Case-insensitive substring of name or address" maxlength(200)
// @Param top query int false "Number of top rated stores" default(5) minimum(1) maximum(100)
// @Success 200 {object} models.APIResponse{data=models.AnalyticsSummary} "Summary"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 500 {object} models.APIResponse "Store data could not be loaded"
// @Router /analytics/summary [get]
func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, apiErr := bindSummary(r.URL.Query(), h.config.API.DefaultTopN)
	if apiErr == nil {
		apiErr = validateRequest(&req)
	}
	if apiErr == nil {
		apiErr = checkMax("top", req.Top, h.config.API.MaxTopN)
	}
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	key := cache.GenerateKey("summary", req)
	if h.checkCacheAndReturnIfHit(w, key, start) {
		return
	}

	summary, err := h.engine.Summary(r.Context(), req.Criteria(), req.Top)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	h.remember(key, summary)
	respondOK(w, http.StatusOK, summary, start, false)
}

// TopRated returns the best rated stores
//
// @Summary Top rated stores
// @Description Returns up to n stores ordered by rating, then review count, then collection order.
// @Tags Analytics
// @Produce json
// @Param type query string false "Store type, or 'all'" maxlength(64)
// @Param search query string false "Case-insensitive substring of name or address" maxlength(200)
// @Param n query int false "Number of stores" default(5) minimum(1) maximum(100)
// @Success 200 {object} models.APIResponse{data=models.StoreList} "Top rated stores"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 500 {object} models.APIResponse "Store data could not be loaded"
// @Router /analytics/top-rated [get]
func (h *Handler) TopRated(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, apiErr := bindTopRated(r.URL.Query(), h.config.API.DefaultTopN)
	if apiErr == nil {
		apiErr = validateRequest(&req)
	}
	if apiErr == nil {
		apiErr = checkMax("n", req.N, h.config.API.MaxTopN)
	}
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	key := cache.GenerateKey("top-rated", req)
	if h.checkCacheAndReturnIfHit(w, key, start) {
		return
	}

	stores, err := h.engine.TopRated(r.Context(), req.Criteria(), req.N)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	result := models.StoreList{Stores: stores, Total: len(stores)}
	h.remember(key, result)
	respondOK(w, http.StatusOK, result, start, false)
}

// RatingDistribution returns a histogram of ratings
//
// @Summary Rating distribution
// @Description Buckets ratings into equal-width bins over [0, 5]. Ratings outside the scale are clamped into the first or last bin.
// @Tags Analytics
// @Produce json
// @Param type query string false "Store type, or 'all'" maxlength(64)
// @Param search query string false "Case-insensitive substring of name or address" maxlength(200)
// @Param bins query int false "Number of bins" default(10) minimum(1) maximum(50)
// @Success 200 {object} models.APIResponse{data=models.RatingDistribution} "Histogram"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 500 {object} models.APIResponse "Store data could not be loaded"
// @Router /analytics/rating-distribution [get]
func (h *Handler) RatingDistribution(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, apiErr := bindDistribution(r.URL.Query())
	if apiErr == nil {
		apiErr = validateRequest(&req)
	}
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	key := cache.GenerateKey("rating-distribution", req)
	if h.checkCacheAndReturnIfHit(w, key, start) {
		return
	}

	buckets, err := h.engine.Distribution(r.Context(), req.Criteria(), req.Bins)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	result := models.RatingDistribution{Buckets: buckets, Total: total}
	h.remember(key, result)
	respondOK(w, http.StatusOK, result, start, false)
}

// MapView returns the centre and bounds of the filtered stores
//
// @Summary Map view
// @Description Returns the mean coordinate and the bounding box of the filtered stores. An empty selection yields count 0 and zero coordinates.
// @Tags Analytics
// @Produce json
// @Param type query string false "Store type, or 'all'" maxlength(64)
// @Param search query string false "Case-insensitive substring of name or address" maxlength(200)
// @Success 200 {object} models.APIResponse{data=models.MapView} "Map framing"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 500 {object} models.APIResponse "Store data could not be loaded"
// @Router /analytics/map-view [get]
func (h *Handler) MapView(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := bindFilter(r.URL.Query())
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	key := cache.GenerateKey("map-view", req)
	if h.checkCacheAndReturnIfHit(w, key, start) {
		return
	}

	view, err := h.engine.MapView(r.Context(), req.Criteria())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	h.remember(key, view)
	respondOK(w, http.StatusOK, view, start, false)
}
