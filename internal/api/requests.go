// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/storefinder/internal/models"
	"github.com/tomtom215/storefinder/internal/query"
)

// Request structs bind query parameters; validation tags are checked by
// validateRequest and the `query` tag names the parameter in error messages.

// FilterRequest is the type/search pair shared by most read endpoints.
type FilterRequest struct {
	Type   string `query:"type" validate:"max=64"`
	Search string `query:"search" validate:"max=200"`
}

// Criteria converts the request into query criteria.
func (f FilterRequest) Criteria() query.Criteria {
	return query.Criteria{Type: f.Type, Search: f.Search}
}

// StoreListRequest binds GET /stores.
type StoreListRequest struct {
	FilterRequest
	Lat *float64 `query:"lat" validate:"omitempty,finite,gte=-90,lte=90"`
	Lng *float64 `query:"lng" validate:"omitempty,finite,gte=-180,lte=180"`
}

// SummaryRequest binds GET /analytics/summary.
type SummaryRequest struct {
	FilterRequest
	Top int `query:"top" validate:"min=1"`
}

// TopRatedRequest binds GET /analytics/top-rated.
type TopRatedRequest struct {
	FilterRequest
	N int `query:"n" validate:"min=1"`
}

// DistributionRequest binds GET /analytics/rating-distribution.
type DistributionRequest struct {
	FilterRequest
	Bins int `query:"bins" validate:"min=1,max=50"`
}

// FeedbackListRequest binds GET /feedback.
type FeedbackListRequest struct {
	Limit int `query:"limit" validate:"min=1,max=1000"`
}

// DefaultFeedbackLimit is the page size of GET /feedback.
const DefaultFeedbackLimit = 50

// bindFilter reads the type and search parameters. "query" is accepted as an
// alias for "search"; search wins when both are present.
func bindFilter(q url.Values) FilterRequest {
	search := q.Get("search")
	if !q.Has("search") {
		search = q.Get("query")
	}
	return FilterRequest{
		Type:   strings.TrimSpace(q.Get("type")),
		Search: strings.TrimSpace(search),
	}
}

func bindStoreList(q url.Values) (StoreListRequest, *models.APIError) {
	req := StoreListRequest{FilterRequest: bindFilter(q)}

	var apiErr *models.APIError
	if req.Lat, apiErr = parseFloatParam(q, "lat"); apiErr != nil {
		return req, apiErr
	}
	if req.Lng, apiErr = parseFloatParam(q, "lng"); apiErr != nil {
		return req, apiErr
	}
	if (req.Lat == nil) != (req.Lng == nil) {
		return req, fieldError("lat", "required_with", "lat and lng must be given together")
	}
	return req, nil
}

func bindSummary(q url.Values, def int) (SummaryRequest, *models.APIError) {
	top, apiErr := parseIntParam(q, "top", def)
	return SummaryRequest{FilterRequest: bindFilter(q), Top: top}, apiErr
}

func bindTopRated(q url.Values, def int) (TopRatedRequest, *models.APIError) {
	n, apiErr := parseIntParam(q, "n", def)
	return TopRatedRequest{FilterRequest: bindFilter(q), N: n}, apiErr
}

func bindDistribution(q url.Values) (DistributionRequest, *models.APIError) {
	bins, apiErr := parseIntParam(q, "bins", query.DefaultRatingBins)
	return DistributionRequest{FilterRequest: bindFilter(q), Bins: bins}, apiErr
}

func bindFeedbackList(q url.Values) (FeedbackListRequest, *models.APIError) {
	limit, apiErr := parseIntParam(q, "limit", DefaultFeedbackLimit)
	return FeedbackListRequest{Limit: limit}, apiErr
}

// parseIntParam returns def when the parameter is absent.
func parseIntParam(q url.Values, key string, def int) (int, *models.APIError) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fieldError(key, "number", fmt.Sprintf("%s must be an integer", key))
	}
	return n, nil
}

// parseFloatParam returns nil when the parameter is absent.
func parseFloatParam(q url.Values, key string) (*float64, *models.APIError) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fieldError(key, "number", fmt.Sprintf("%s must be a number", key))
	}
	return &f, nil
}

// checkMax enforces a configured upper bound the struct tags cannot express.
func checkMax(field string, value, limit int) *models.APIError {
	if value > limit {
		return fieldError(field, "max", fmt.Sprintf("%s must be at most %d", field, limit))
	}
	return nil
}
