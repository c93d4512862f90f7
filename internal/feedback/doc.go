// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

// Package feedback stores customer feedback submissions in BadgerDB.
//
// Entries are JSON documents keyed by feedback:<unix-nanos>:<uuid>, so key
// order is submission order and List can walk the keyspace backwards to
// return the newest entries first.
//
//	store, err := feedback.Open(feedback.Config{Path: "data/feedback"})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	fb, err := store.Submit(ctx, models.FeedbackInput{Rating: 5, Comment: "Great"})
//
// GCLoop runs value log garbage collection in the background. The server
// registers it with the supervisor tree through services.FeedbackGCService.
package feedback
