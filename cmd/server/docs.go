// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

// @title Storefinder API
// @version 1.0
// @description Store locator and catalog analytics over a JSON store collection.
// @description Lists can be narrowed by store type and a case-insensitive name search,
// @description and annotated with distances from a latitude/longitude. Analytics
// @description responses are cached until the collection is next saved. Errors use the
// @description same envelope as successes with status "error" and an error object
// @description carrying a machine-readable code.
// @description
// @description Requests are limited per client IP: 100/min by default, 30/min for
// @description feedback submission and 10/min for XLSX exports.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/storefinder/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3857
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks and readiness probes
//
// @tag.name Stores
// @tag.description Store listings, nearby search and store types
//
// @tag.name Analytics
// @tag.description Summary, top-rated stores, rating distribution and map view
//
// @tag.name Export
// @tag.description GeoJSON and Excel exports of the filtered store collection
//
// @tag.name Feedback
// @tag.description Customer ratings and comments
package main
