// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package feedback

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/storefinder/internal/metrics"
	"github.com/tomtom215/storefinder/internal/models"
	"github.com/tomtom215/storefinder/internal/validation"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Config{InMemory: true})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// steppedClock returns a clock that advances one second per call.
func steppedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

func TestSubmitAssignsIdentity(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	id := models.StoreIDFromInt(3)
	before := time.Now().UTC()
	fb, err := s.Submit(ctx, models.FeedbackInput{StoreID: &id, Rating: 4, Comment: "Friendly staff"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if fb.ID == "" {
		t.Error("Submit() should assign an id")
	}
	if fb.CreatedAt.Before(before) || fb.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt = %v, want UTC time after %v", fb.CreatedAt, before)
	}
	if fb.StoreID == nil || *fb.StoreID != "3" {
		t.Errorf("StoreID = %v, want 3", fb.StoreID)
	}
	if fb.Rating != 4 || fb.Comment != "Friendly staff" {
		t.Errorf("Submit() = %+v", fb)
	}

	list, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != fb.ID {
		t.Fatalf("List() = %+v, want the submitted entry", list)
	}
	if !list[0].CreatedAt.Equal(fb.CreatedAt) {
		t.Errorf("stored CreatedAt = %v, want %v", list[0].CreatedAt, fb.CreatedAt)
	}
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	s := openMemory(t)

	tests := []struct {
		name  string
		input models.FeedbackInput
		field string
	}{
		{name: "missing rating", input: models.FeedbackInput{}, field: "rating"},
		{name: "rating too high", input: models.FeedbackInput{Rating: 6}, field: "rating"},
		{name: "negative rating", input: models.FeedbackInput{Rating: -1}, field: "rating"},
		{name: "comment too long", input: models.FeedbackInput{Rating: 3, Comment: string(make([]byte, 2001))}, field: "comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.FeedbackSubmitted.WithLabelValues("error"))

			_, err := s.Submit(context.Background(), tt.input)
			var verr *validation.RequestValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Submit() error = %v, want *RequestValidationError", err)
			}
			if verr.Fields[0].Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Fields[0].Field, tt.field)
			}

			after := testutil.ToFloat64(metrics.FeedbackSubmitted.WithLabelValues("error"))
			if after != before+1 {
				t.Errorf("error counter moved by %v, want 1", after-before)
			}
		})
	}

	n, err := s.Count(context.Background())
	if err != nil || n != 0 {
		t.Errorf("Count() = %d, %v; rejected input must not be stored", n, err)
	}
}

func TestListNewestFirstWithLimit(t *testing.T) {
	s := openMemory(t)
	s.now = steppedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, comment := range []string{"first", "second", "third", "fourth"} {
		if _, err := s.Submit(ctx, models.FeedbackInput{Rating: 5, Comment: comment}); err != nil {
			t.Fatalf("Submit(%s) error = %v", comment, err)
		}
	}

	tests := []struct {
		limit int
		want  []string
	}{
		{limit: 0, want: []string{"fourth", "third", "second", "first"}},
		{limit: -1, want: []string{"fourth", "third", "second", "first"}},
		{limit: 2, want: []string{"fourth", "third"}},
		{limit: 10, want: []string{"fourth", "third", "second", "first"}},
	}

	for _, tt := range tests {
		list, err := s.List(ctx, tt.limit)
		if err != nil {
			t.Fatalf("List(%d) error = %v", tt.limit, err)
		}
		if len(list) != len(tt.want) {
			t.Fatalf("List(%d) returned %d entries, want %d", tt.limit, len(list), len(tt.want))
		}
		for i, fb := range list {
			if fb.Comment != tt.want[i] {
				t.Errorf("List(%d)[%d] = %q, want %q", tt.limit, i, fb.Comment, tt.want[i])
			}
		}
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 4 {
		t.Errorf("Count() = %d, want 4", n)
	}
}

func TestListEmpty(t *testing.T) {
	s := openMemory(t)

	list, err := s.List(context.Background(), 5)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("List() = %v, want empty non-nil slice", list)
	}
}

func TestCanceledContext(t *testing.T) {
	s := openMemory(t)
	if _, err := s.Submit(context.Background(), models.FeedbackInput{Rating: 2}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Submit(ctx, models.FeedbackInput{Rating: 2}); !errors.Is(err, context.Canceled) {
		t.Errorf("Submit() error = %v, want context.Canceled", err)
	}
	if _, err := s.List(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("List() error = %v, want context.Canceled", err)
	}
	if _, err := s.Count(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Count() error = %v, want context.Canceled", err)
	}
}

func TestClosedStore(t *testing.T) {
	s, err := Open(Config{InMemory: true})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}

	ctx := context.Background()
	if _, err := s.Submit(ctx, models.FeedbackInput{Rating: 5}); !errors.Is(err, ErrClosed) {
		t.Errorf("Submit() error = %v, want ErrClosed", err)
	}
	if _, err := s.List(ctx, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("List() error = %v, want ErrClosed", err)
	}
	if _, err := s.Count(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("Count() error = %v, want ErrClosed", err)
	}
	if err := s.RunGC(); !errors.Is(err, ErrClosed) {
		t.Errorf("RunGC() error = %v, want ErrClosed", err)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(Config{Path: dir})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	fb, err := s.Submit(ctx, models.FeedbackInput{Rating: 3, Comment: "Okay"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if err := s.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(Config{Path: dir})
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	list, err := reopened.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != fb.ID || list[0].Comment != "Okay" {
		t.Errorf("List() after reopen = %+v", list)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(Config{}); err == nil {
		t.Error("Open() without path or in-memory mode should fail")
	}
}

func TestRunGCInMemory(t *testing.T) {
	s := openMemory(t)
	before := testutil.ToFloat64(metrics.FeedbackGCRuns)

	if err := s.RunGC(); err != nil {
		t.Errorf("RunGC() on in-memory store = %v, want nil", err)
	}
	if got := testutil.ToFloat64(metrics.FeedbackGCRuns); got != before+1 {
		t.Errorf("gc runs = %v, want %v", got, before+1)
	}
}

func TestGCLoopLifecycle(t *testing.T) {
	s := openMemory(t)
	loop := NewGCLoop(s, 10*time.Millisecond)

	if loop.IsRunning() {
		t.Error("new loop should not be running")
	}
	if err := loop.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := loop.Start(context.Background()); err != nil {
		t.Errorf("second Start() error = %v", err)
	}
	if !loop.IsRunning() {
		t.Error("loop should be running after Start")
	}

	deadline := time.Now().Add(time.Second)
	for loop.LastRun().IsZero() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if loop.LastRun().IsZero() {
		t.Error("GC loop never ran")
	}

	loop.Stop()
	loop.Stop()
	if loop.IsRunning() {
		t.Error("loop should not be running after Stop")
	}
}

func TestNewGCLoopDefaultInterval(t *testing.T) {
	if loop := NewGCLoop(nil, 0); loop.interval != DefaultGCInterval {
		t.Errorf("interval = %v, want %v", loop.interval, DefaultGCInterval)
	}
}
