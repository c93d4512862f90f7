// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

/*
Package api serves the store locator over HTTP.

Routes are built with chi in SetupChi:

	/api/v1/health[/live|/ready]          health probes
	/api/v1/stores                        filtered listing, optional distances
	/api/v1/stores/types                  distinct store types
	/api/v1/stores/geojson                GeoJSON FeatureCollection
	/api/v1/stores/export.xlsx            spreadsheet download
	/api/v1/analytics/summary             counts, averages, top rated
	/api/v1/analytics/top-rated           best rated stores
	/api/v1/analytics/rating-distribution rating histogram
	/api/v1/analytics/map-view            centre and bounding box
	/api/v1/feedback                      POST to submit, GET to list
	/metrics                              Prometheus exposition
	/swagger/*                            Swagger UI

# Responses

Every JSON endpoint except the GeoJSON export answers with the
models.APIResponse envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 1, "cached": true}
	}

Errors carry a machine-readable code:

	VALIDATION_ERROR      400  query parameter or body field out of range
	INVALID_REQUEST       400  body is not a JSON object
	DATA_LOAD_ERROR       500  the store document could not be read or parsed
	DATA_WRITE_ERROR      500  the store document could not be written
	EXPORT_ERROR          500  spreadsheet or GeoJSON encoding failed
	FEEDBACK_UNAVAILABLE  503  no feedback store configured, or it is closed

# Caching

Analytics responses are cached per query in a cache.Cacher. Register
Handler.OnStoresSaved with the repository so a save clears them:

	repo.OnSave(handler.OnStoresSaved)
*/
package api
