// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package export

import (
	"github.com/tomtom215/storefinder/internal/metrics"
	"github.com/tomtom215/storefinder/internal/models"
)

// GeoJSONContentType is the media type of a GeoJSON document.
const GeoJSONContentType = "application/geo+json"

// GeoJSON converts records to a FeatureCollection of Point features.
// Coordinates follow RFC 7946 order: [longitude, latitude].
func GeoJSON(records []models.StoreRecord) models.GeoJSONFeatureCollection {
	features := make([]models.GeoJSONFeature, len(records))
	for i, r := range records {
		features[i] = models.GeoJSONFeature{
			Type: "Feature",
			Geometry: models.GeoJSONGeometry{
				Type:        "Point",
				Coordinates: [2]float64{r.Lng, r.Lat},
			},
			Properties: models.GeoJSONProperties{
				ID:      r.ID,
				Name:    r.Name,
				Type:    r.Type,
				Address: r.Address,
				Rating:  r.Rating,
				Reviews: r.Reviews,
			},
		}
	}

	metrics.RecordExport("geojson")
	return models.GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
