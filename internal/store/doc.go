// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

// Package store persists the store collection as a single JSON document.
//
// The document has one array field holding one object per store:
//
//	{
//	  "stores": [
//	    {"id": 1, "name": "Central Grocery", "type": "grocery",
//	     "address": "123 Main St, New York, NY",
//	     "lat": 40.7128, "lng": -74.006, "rating": 4.5, "reviews": 120}
//	  ]
//	}
//
// Some producers write the longitude as "lon"; Load folds it into "lng" so
// nothing downstream branches on the key name. Save always writes "lng".
//
// # First Run
//
// When the document does not exist, Load writes SampleStores() to it and
// returns that collection, so a fresh deployment is usable without manual
// seeding.
//
// # Errors
//
//   - *DataLoadError: the document exists but cannot be read or has the wrong shape
//   - *DataWriteError: the document location is not writable
//
// Neither is retried. Out-of-range ratings, coordinates and review counts are
// passed through unchanged.
//
// # Caching
//
// With Config.CacheEnabled the collection is held in memory after the first
// load. Every Save replaces the cached copy, so the next Load always sees the
// last save. Each cached Load also stats the document and rereads it when its
// size or modification time changed, which picks up writes from other
// processes such as storectl. Invalidate forces a reread.
package store
