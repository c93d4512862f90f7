// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/storefinder/internal/logging"
	"github.com/tomtom215/storefinder/internal/models"
	"github.com/tomtom215/storefinder/internal/store"
	"github.com/tomtom215/storefinder/internal/validation"
)

// writeEnvelope encodes resp with an ETag over the encoded body. Clients
// revalidate on every request (no-cache).
func writeEnvelope(w http.ResponseWriter, status int, resp *models.APIResponse) {
	body, err := json.Marshal(resp)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to encode response envelope")
		http.Error(w, `{"status":"error","data":null}`, http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-cache")
	h.Set("Vary", "Accept-Encoding")
	h.Set("ETag", generateETag(body))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Debug().Err(err).Msg("Client went away before the response was written")
	}
}

func respondOK(w http.ResponseWriter, status int, data interface{}, start time.Time, cached bool) {
	writeEnvelope(w, status, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			Cached:      cached,
		},
	})
}

// respondError logs err, if any, and writes an error envelope. message is
// what the client sees; err never leaves the server.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", code).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("Request failed")
	}
	respondAPIError(w, status, &models.APIError{Code: code, Message: message})
}

func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	writeEnvelope(w, status, &models.APIResponse{
		Status:   models.StatusError,
		Metadata: models.Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// respondStoreError maps repository failures onto error codes.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrDataLoad):
		respondError(w, http.StatusInternalServerError, "DATA_LOAD_ERROR", "Failed to load store data", err)
	case errors.Is(err, store.ErrDataWrite):
		respondError(w, http.StatusInternalServerError, "DATA_WRITE_ERROR", "Failed to save store data", err)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", err)
	}
}

// generateETag returns a strong validator: the quoted FNV-1a hash of body.
func generateETag(body []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(body)
	return fmt.Sprintf(`"%016x"`, h.Sum64())
}

// sanitizeLogValue renders control characters as \xNN so request values
// cannot break log lines.
func sanitizeLogValue(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if isControl(r) {
			fmt.Fprintf(&b, `\x%02x`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isControl(r rune) bool { return r < 0x20 || r == 0x7f }

// validateRequest runs the struct's validate tags and converts a failure
// into an API error.
func validateRequest(v interface{}) *models.APIError {
	if verr := validation.ValidateStruct(v); verr != nil {
		return validationAPIError(verr)
	}
	return nil
}

func validationAPIError(verr *validation.RequestValidationError) *models.APIError {
	e := verr.ToAPIError()
	return &models.APIError{Code: e.Code, Message: e.Message, Details: e.Details}
}

// fieldError builds a VALIDATION_ERROR for a single field.
func fieldError(field, tag, message string) *models.APIError {
	return &models.APIError{
		Code:    validation.CodeValidation,
		Message: message,
		Details: map[string]interface{}{"field": field, "tag": tag},
	}
}
