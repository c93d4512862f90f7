// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

// Package query filters and aggregates store collections.
//
// The functions in this package are pure: they read a borrowed slice of
// records, never modify it, and never fail. Out-of-range values (a rating of
// 7, negative review counts) are folded into results as they are.
//
// # Filtering
//
//	matches := query.Filter(records, "grocery", "main st")
//
// The type filter is "all" (or empty) or a case-insensitive exact match; the
// search text is a case-insensitive substring of name or address. Both are
// AND-combined and the result keeps collection order.
//
// # Analytics
//
//	summary := query.Summarize(records, query.DefaultTopN)
//	best := query.TopRated(records, 3)
//
// TopRated orders by rating, then review count, then collection order, so
// equal inputs always produce equal outputs.
//
// # Engine
//
// Engine pairs these functions with a Source (the store repository) for
// callers that want "load then query" in one call, such as HTTP handlers and
// CLI commands.
package query
