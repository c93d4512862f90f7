// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the process. It caches struct
// metadata, reports fields by their query or JSON name, and adds a
// "finite" tag that rejects NaN and infinite floats (coordinates parsed from
// query strings accept "NaN").
//
// # Usage
//
//	type NearbyRequest struct {
//	    Lat float64 `query:"lat" validate:"finite,gte=-90,lte=90"`
//	    Lng float64 `query:"lng" validate:"finite,gte=-180,lte=180"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// ToAPIError produces the VALIDATION_ERROR shape used by every handler. A
// single failure carries field, tag and value details; several failures are
// joined into one message with a "fields" detail list.
package validation
