// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

/*
Package cache provides a thread-safe in-memory cache with TTL support.

The HTTP layer keeps computed analytics responses here so repeated requests
skip the load-filter-aggregate pipeline. Every successful store save clears
the cache, so a cached response never outlives the collection it was computed
from.

# Usage

	responses := cache.New("analytics", 5*time.Minute)

	key := cache.GenerateKey("summary", params)
	if v, ok := responses.Get(key); ok {
		return v.(*models.AnalyticsSummary)
	}
	responses.Set(key, summary)

# Expiry

Entries expire lazily on Get. Serve runs a periodic sweep and is registered
with the supervisor tree so it stops with the process.

# Metrics

Lookups and evictions are exported as cache_hits_total, cache_misses_total and
cache_evictions_total,
labelled by cache name.
*/
package cache
