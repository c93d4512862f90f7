// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package query

import (
	"math"

	"github.com/tomtom215/storefinder/internal/models"
)

const earthRadiusKM = 6371.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// HaversineKM returns the great-circle distance between two points in kilometres.
func HaversineKM(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

// WithDistances annotates each record with its distance from (lat, lng).
// Order is preserved; this is an annotation, not a radius search.
func WithDistances(records []models.StoreRecord, lat, lng float64) []models.StoreDistance {
	out := make([]models.StoreDistance, 0, len(records))
	for _, r := range records {
		out = append(out, models.StoreDistance{
			StoreRecord: r,
			DistanceKM:  roundTo(HaversineKM(lat, lng, r.Lat, r.Lng), 3),
		})
	}
	return out
}

// MapViewOf returns the mean coordinate and bounding box of records, used to
// centre and fit the store map. An empty collection yields the zero MapView.
func MapViewOf(records []models.StoreRecord) models.MapView {
	if len(records) == 0 {
		return models.MapView{}
	}

	first := records[0]
	bounds := models.Bounds{
		MinLat: first.Lat, MaxLat: first.Lat,
		MinLng: first.Lng, MaxLng: first.Lng,
	}
	var sumLat, sumLng float64
	for _, r := range records {
		sumLat += r.Lat
		sumLng += r.Lng
		bounds.MinLat = math.Min(bounds.MinLat, r.Lat)
		bounds.MaxLat = math.Max(bounds.MaxLat, r.Lat)
		bounds.MinLng = math.Min(bounds.MinLng, r.Lng)
		bounds.MaxLng = math.Max(bounds.MaxLng, r.Lng)
	}

	n := float64(len(records))
	return models.MapView{
		Center: models.LatLng{Lat: sumLat / n, Lng: sumLng / n},
		Bounds: bounds,
		Count:  len(records),
	}
}
