// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package services

import (
	"context"
	"fmt"
)

// StartStopper matches the lifecycle of *feedback.GCLoop.
type StartStopper interface {
	Start(ctx context.Context) error
	Stop()
	IsRunning() bool
}

// FeedbackGCService wraps the feedback value log GC loop as a supervised
// service.
//
// It adapts the Start/Stop lifecycle to suture's Serve pattern:
//  1. Calls Start(ctx) to begin the GC ticker
//  2. Waits for context cancellation
//  3. Calls Stop(), which waits for an in-progress GC pass to finish
//
// Example usage:
//
//	loop := feedback.NewGCLoop(fb, cfg.Feedback.GCInterval)
//	tree.Add(supervisor.LayerMaintenance, services.NewFeedbackGCService(loop))
type FeedbackGCService struct {
	loop StartStopper
	name string
}

// NewFeedbackGCService creates a new feedback GC service wrapper.
func NewFeedbackGCService(loop StartStopper) *FeedbackGCService {
	return &FeedbackGCService{
		loop: loop,
		name: "feedback-gc",
	}
}

// Serve implements suture.Service. A failed Start is returned immediately so
// suture restarts the service with backoff.
func (s *FeedbackGCService) Serve(ctx context.Context) error {
	if err := s.loop.Start(ctx); err != nil {
		return fmt.Errorf("feedback GC start failed: %w", err)
	}

	<-ctx.Done()

	s.loop.Stop()
	return ctx.Err()
}

// String implements fmt.Stringer; suture uses it as the service name.
func (s *FeedbackGCService) String() string {
	return s.name
}
