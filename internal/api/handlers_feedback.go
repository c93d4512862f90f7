// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/storefinder/internal/feedback"
	"github.com/tomtom215/storefinder/internal/logging"
	"github.com/tomtom215/storefinder/internal/models"
	"github.com/tomtom215/storefinder/internal/validation"
)

// maxFeedbackBodyBytes bounds the POST /feedback body.
const maxFeedbackBodyBytes = 64 << 10

// SubmitFeedback stores a feedback submission
//
// @Summary Submit feedback
// @Description Stores a rating (1-5) with an optional comment and optional store reference. The referenced store must exist.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param feedback body models.FeedbackInput true "Feedback"
// @Success 201 {object} models.APIResponse{data=models.Feedback} "Stored feedback"
// @Failure 400 {object} models.APIResponse "Malformed body or invalid fields"
// @Failure 500 {object} models.APIResponse "Feedback could not be stored"
// @Failure 503 {object} models.APIResponse "Feedback storage is not configured"
// @Router /feedback [post]
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.feedback == nil {
		respondError(w, http.StatusServiceUnavailable, "FEEDBACK_UNAVAILABLE", "Feedback storage is not configured", nil)
		return
	}

	var in models.FeedbackInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFeedbackBodyBytes)).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Request body must be a JSON feedback object", nil)
		return
	}

	if apiErr := validateRequest(&in); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	if in.StoreID != nil {
		known, err := h.storeExists(r, *in.StoreID)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		if !known {
			respondAPIError(w, http.StatusBadRequest, fieldError("store_id", "exists",
				fmt.Sprintf("store_id %s does not match a known store", in.StoreID.String())))
			return
		}
	}

	fb, err := h.feedback.Submit(r.Context(), in)
	if err != nil {
		var verr *validation.RequestValidationError
		switch {
		case errors.As(err, &verr):
			respondAPIError(w, http.StatusBadRequest, validationAPIError(verr))
		case errors.Is(err, feedback.ErrClosed):
			respondError(w, http.StatusServiceUnavailable, "FEEDBACK_UNAVAILABLE", "Feedback storage is closed", err)
		default:
			respondError(w, http.StatusInternalServerError, "FEEDBACK_WRITE_ERROR", "Failed to store feedback", err)
		}
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("feedback_id", fb.ID).
		Int("rating", fb.Rating).
		Msg("Feedback received")
	respondOK(w, http.StatusCreated, fb, start, false)
}

// ListFeedback returns recent feedback
//
// @Summary List feedback
// @Description Returns the most recent feedback submissions, newest first, together with the total count.
// @Tags Feedback
// @Produce json
// @Param limit query int false "Maximum entries" default(50) minimum(1) maximum(1000)
// @Success 200 {object} models.APIResponse{data=models.FeedbackList} "Recent feedback"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Failure 500 {object} models.APIResponse "Feedback could not be read"
// @Failure 503 {object} models.APIResponse "Feedback storage is not configured"
// @Router /feedback [get]
func (h *Handler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.feedback == nil {
		respondError(w, http.StatusServiceUnavailable, "FEEDBACK_UNAVAILABLE", "Feedback storage is not configured", nil)
		return
	}

	req, apiErr := bindFeedbackList(r.URL.Query())
	if apiErr == nil {
		apiErr = validateRequest(&req)
	}
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	entries, err := h.feedback.List(r.Context(), req.Limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "FEEDBACK_READ_ERROR", "Failed to read feedback", err)
		return
	}
	total, err := h.feedback.Count(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "FEEDBACK_READ_ERROR", "Failed to count feedback", err)
		return
	}

	respondOK(w, http.StatusOK, models.FeedbackList{Feedback: entries, Total: total}, start, false)
}

func (h *Handler) storeExists(r *http.Request, id models.StoreID) (bool, error) {
	records, err := h.source.Load(r.Context())
	if err != nil {
		return false, err
	}
	for _, rec := range records {
		if rec.ID.Equal(id) {
			return true, nil
		}
	}
	return false, nil
}
