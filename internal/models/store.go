// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// StoreID identifies a store within a collection.
//
// Upstream producers write ids either as JSON numbers or as JSON strings, so
// StoreID keeps the textual form and decodes from both. It encodes back as a
// JSON number when the text is a canonical integer ("42") and as a string
// otherwise ("a-17", "007"). Integral numbers such as 1.0 or 2e0 decode to
// their integer form.
//
// Uniqueness is not enforced anywhere.
type StoreID string

// StoreIDFromInt returns the StoreID for an integer id.
func StoreIDFromInt(n int64) StoreID {
	return StoreID(strconv.FormatInt(n, 10))
}

// Int returns the id as an integer when it is a canonical integer.
func (id StoreID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != string(id) {
		return 0, false
	}
	return n, true
}

// String implements fmt.Stringer.
func (id StoreID) String() string {
	return string(id)
}

// Equal reports whether id and other name the same store: numerically when
// both are integers, textually otherwise.
func (id StoreID) Equal(other StoreID) bool {
	a, aok := id.Int()
	b, bok := other.Int()
	if aok && bok {
		return a == b
	}
	return id == other
}

// IsZero reports whether the id is absent.
func (id StoreID) IsZero() bool {
	return id == ""
}

// MarshalJSON implements json.Marshaler.
func (id StoreID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, ok := id.Int(); ok {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a number, a string or null.
func (id *StoreID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("store id: %w", err)
		}
		*id = StoreID(s)
		return nil
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("store id must be a number or string, got %s", data)
		}
		if f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
			*id = StoreIDFromInt(int64(f))
			return nil
		}
		*id = StoreID(data)
		return nil
	}
}

// StoreRecord is a single retail store in the catalog.
//
// The longitude is always carried under the canonical key "lng". Documents
// that use "lon" are normalized by the store repository when they are loaded,
// so nothing past the storage boundary ever sees the alternate key.
//
// Rating and Reviews are passed through as stored: a rating outside [0,5] or a
// negative review count is not rejected and flows into aggregates unchanged.
//
// Example:
//
//	{
//	  "id": 2,
//	  "name": "City Books",
//	  "type": "books",
//	  "address": "456 Book Lane, New York, NY",
//	  "lat": 40.7138,
//	  "lng": -74.007,
//	  "rating": 4.8,
//	  "reviews": 85
//	}
type StoreRecord struct {
	ID      StoreID `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Rating  float64 `json:"rating"`
	Reviews int64   `json:"reviews"`
}

// StoreDistance is a StoreRecord annotated with its great-circle distance
// from a caller-supplied reference point.
type StoreDistance struct {
	StoreRecord
	DistanceKM float64 `json:"distance_km"`
}

// StoreList is the payload of the store listing endpoint.
type StoreList struct {
	Stores []StoreRecord `json:"stores"`
	Total  int           `json:"total"`
}

// StoreDistanceList is the payload of the store listing endpoint when a
// reference point was supplied.
type StoreDistanceList struct {
	Stores []StoreDistance `json:"stores"`
	Total  int             `json:"total"`
	Origin LatLng          `json:"origin"`
}

// StoreTypes is the payload of the store type listing endpoint.
type StoreTypes struct {
	Types []string `json:"types"`
	Total int      `json:"total"`
}
