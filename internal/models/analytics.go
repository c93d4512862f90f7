// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package models

// AnalyticsSummary holds aggregate statistics over a (possibly filtered)
// store collection.
//
// Fields:
//   - TotalCount: number of records summarized
//   - CountsByType: records per type; JSON encoding renders keys in ascending order
//   - TypeCounts: the same counts as a slice sorted ascending by type name
//   - StoreTypes: number of distinct types
//   - AverageRating: arithmetic mean of ratings, 0 for an empty collection
//   - TotalReviews: sum of review counts
//   - TopRated: highest rated stores, ties broken by reviews then collection order
type AnalyticsSummary struct {
	TotalCount    int            `json:"total_count"`
	CountsByType  map[string]int `json:"counts_by_type"`
	TypeCounts    []TypeCount    `json:"type_counts"`
	StoreTypes    int            `json:"store_types"`
	AverageRating float64        `json:"average_rating"`
	TotalReviews  int64          `json:"total_reviews"`
	TopRated      []StoreRecord  `json:"top_rated"`
}

// TypeCount is the number of stores of one type.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// RatingBucket is one bin of the rating histogram. Min is inclusive; Max is
// exclusive except for the last bucket.
type RatingBucket struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// RatingDistribution is the payload of the rating histogram endpoint.
type RatingDistribution struct {
	Buckets []RatingBucket `json:"buckets"`
	Total   int            `json:"total"`
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is the bounding box of a set of coordinates.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// MapView describes how to frame a set of stores on a map: the mean
// coordinate as the centre plus the bounding box. Count is 0 and the other
// fields are zero for an empty collection.
type MapView struct {
	Center LatLng `json:"center"`
	Bounds Bounds `json:"bounds"`
	Count  int    `json:"count"`
}
