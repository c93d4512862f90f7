// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

// Package models defines the data types shared by the repository, the query
// engine, the HTTP API and the CLI.
//
// # Core Types
//
//   - StoreRecord: a retail store (id, name, type, address, lat/lng, rating, reviews)
//   - StoreID: an id that may be stored as a JSON number or a JSON string
//   - AnalyticsSummary: counts, mean rating, review totals and top-rated stores
//   - MapView, RatingBucket: map framing and rating histogram
//   - Feedback, FeedbackInput: user feedback submissions
//   - APIResponse, Metadata, APIError: the HTTP response envelope
//
// All JSON tags use snake_case. Coordinates use the canonical keys "lat" and
// "lng".
package models
