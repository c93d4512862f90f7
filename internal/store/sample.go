// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package store

import "github.com/tomtom215/storefinder/internal/models"

// SampleStores returns the bootstrap collection written on first run so that
// a fresh deployment has something to show on the map. The stores cluster
// around lower Manhattan (40.7128, -74.0060), one per store type.
//
// A new slice is returned on every call.
func SampleStores() []models.StoreRecord {
	return []models.StoreRecord{
		{
			ID:      "1",
			Name:    "Central Grocery",
			Type:    "grocery",
			Address: "123 Main St, New York, NY",
			Lat:     40.7128,
			Lng:     -74.0060,
			Rating:  4.5,
			Reviews: 120,
		},
		{
			ID:      "2",
			Name:    "City Books",
			Type:    "books",
			Address: "456 Book Lane, New York, NY",
			Lat:     40.7138,
			Lng:     -74.0070,
			Rating:  4.8,
			Reviews: 85,
		},
		{
			ID:      "3",
			Name:    "Electronics Hub",
			Type:    "electronics",
			Address: "789 Tech Ave, New York, NY",
			Lat:     40.7148,
			Lng:     -74.0080,
			Rating:  4.2,
			Reviews: 95,
		},
		{
			ID:      "4",
			Name:    "Fashion Store",
			Type:    "clothing",
			Address: "321 Fashion Blvd, New York, NY",
			Lat:     40.7158,
			Lng:     -74.0090,
			Rating:  4.6,
			Reviews: 150,
		},
		{
			ID:      "5",
			Name:    "General Shop",
			Type:    "general",
			Address: "654 Market St, New York, NY",
			Lat:     40.7168,
			Lng:     -74.0100,
			Rating:  4.4,
			Reviews: 75,
		},
	}
}
