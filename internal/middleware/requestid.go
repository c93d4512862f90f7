// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package middleware

import (
	"context"
	"net/http"
	"regexp"

	"github.com/tomtom215/storefinder/internal/logging"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// validRequestID bounds what a client may send as its own request ID before
// it reaches logs and response headers.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// RequestID reuses a well-formed X-Request-ID from the client or generates a
// UUID, echoes it in the response and stores it in the request context so
// logging.Ctx tags every log line of the request.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !validRequestID.MatchString(requestID) {
			requestID = logging.NewRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)
		next(w, r.WithContext(logging.ContextWithRequestID(r.Context(), requestID)))
	}
}

// GetRequestID returns the request ID stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	return logging.RequestIDFromContext(ctx)
}
