// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package models

import "time"

// FeedbackInput is the body accepted by POST /api/v1/feedback.
type FeedbackInput struct {
	StoreID *StoreID `json:"store_id,omitempty"`
	Rating  int      `json:"rating" validate:"required,min=1,max=5"`
	Comment string   `json:"comment" validate:"max=2000"`
}

// Feedback is a persisted feedback submission.
type Feedback struct {
	ID        string    `json:"id"`
	StoreID   *StoreID  `json:"store_id,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackList is the payload of GET /api/v1/feedback.
type FeedbackList struct {
	Feedback []Feedback `json:"feedback"`
	Total    int        `json:"total"`
}
