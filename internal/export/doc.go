// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

// Package export renders store collections for download: an Excel workbook
// built with excelize's stream writer, and a GeoJSON FeatureCollection for
// map clients.
package export
