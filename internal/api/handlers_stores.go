// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/storefinder/internal/export"
	"github.com/tomtom215/storefinder/internal/logging"
	"github.com/tomtom215/storefinder/internal/models"
)

// Stores lists stores matching the type and search filters
//
// @Summary List stores
// @Description Returns stores filtered by type and free-text search over name and address, in collection order. When both lat and lng are supplied every entry carries distance_km from that point.
// @Tags Stores
// @Accept json
// @Produce json
// @Param type query string false "Store type, or 'all'" maxlength(64)
// @Param search query string false "Case-insensitive substring of name or address" maxlength(200)
// @Param query query string false "Alias for search; ignored when search is given" maxlength(200)
// @Param lat query number false "Reference latitude" minimum(-90) maximum(90)
// @Param lng query number false "Reference longitude" minimum(-180) maximum(180)
// @Success 200 {object} models.APIResponse{data=models.StoreList} "Matching stores"
// @Success 200 {object} models.APIResponse{data=models.StoreDistanceList} "Matching stores with distances"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 500 {object} models.APIResponse "Store data could not be loaded"
// @Router /stores [get]
func (h *Handler) Stores(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, apiErr := bindStoreList(r.URL.Query())
	if apiErr == nil {
		apiErr = validateRequest(&req)
	}
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	if req.Lat != nil && req.Lng != nil {
		stores, err := h.engine.Nearby(r.Context(), req.Criteria(), *req.Lat, *req.Lng)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondOK(w, http.StatusOK, models.StoreDistanceList{
			Stores: stores,
			Total:  len(stores),
			Origin: models.LatLng{Lat: *req.Lat, Lng: *req.Lng},
		}, start, false)
		return
	}

	stores, err := h.engine.Stores(r.Context(), req.Criteria())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondOK(w, http.StatusOK, models.StoreList{Stores: stores, Total: len(stores)}, start, false)
}

// StoreTypes lists the distinct store types
//
// @Summary List store types
// @Description Returns the distinct store types of the whole collection in ascending order.
// @Tags Stores
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.StoreTypes} "Store types"
// @Failure 500 {object} models.APIResponse "Store data could not be loaded"
// @Router /stores/types [get]
func (h *Handler) StoreTypes(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	types, err := h.engine.Types(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondOK(w, http.StatusOK, models.StoreTypes{Types: types, Total: len(types)}, start, false)
}

// ExportXLSX downloads the filtered stores as a spreadsheet
//
// @Summary Export stores as XLSX
// @Description Streams the filtered stores as an Excel workbook with one row per store.
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param type query string false "Store type, or 'all'" maxlength(64)
// @Param search query string false "Case-insensitive substring of name or address" maxlength(200)
// @Success 200 {file} file "XLSX workbook"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 500 {object} models.APIResponse "Export failed"
// @Router /stores/export.xlsx [get]
func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	req := bindFilter(r.URL.Query())
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	stores, err := h.engine.Stores(r.Context(), req.Criteria())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	// Build in memory first so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, stores); err != nil {
		respondError(w, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to generate spreadsheet", err)
		return
	}

	w.Header().Set("Content-Type", export.XLSXContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="stores.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write XLSX export")
	}
}

// GeoJSON returns the filtered stores as a FeatureCollection
//
// @Summary Export stores as GeoJSON
// @Description Returns a bare GeoJSON FeatureCollection (no response envelope) of Point features with [lng, lat] coordinates.
// @Tags Export
// @Produce application/geo+json
// @Param type query string false "Store type, or 'all'" maxlength(64)
// @Param search query string false "Case-insensitive substring of name or address" maxlength(200)
// @Success 200 {object} models.GeoJSONFeatureCollection "Feature collection"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 500 {object} models.APIResponse "Store data could not be loaded"
// @Router /stores/geojson [get]
func (h *Handler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	req := bindFilter(r.URL.Query())
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	stores, err := h.engine.Stores(r.Context(), req.Criteria())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	data, err := json.Marshal(export.GeoJSON(stores))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to encode GeoJSON", err)
		return
	}

	w.Header().Set("Content-Type", export.GeoJSONContentType)
	w.Header().Set("ETag", generateETag(data))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write GeoJSON export")
	}
}
