// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package models

// GeoJSON types for the store map export (RFC 7946).

// GeoJSONGeometry is a Point geometry; Coordinates are [lng, lat].
type GeoJSONGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// GeoJSONProperties carries the store attributes shown in map popups.
type GeoJSONProperties struct {
	ID      StoreID `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
	Reviews int64   `json:"reviews"`
}

// GeoJSONFeature is a single store marker.
type GeoJSONFeature struct {
	Type       string            `json:"type"`
	Geometry   GeoJSONGeometry   `json:"geometry"`
	Properties GeoJSONProperties `json:"properties"`
}

// GeoJSONFeatureCollection is the root GeoJSON object.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}
