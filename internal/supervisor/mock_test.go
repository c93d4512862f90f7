// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockService implements suture.Service and fails a configurable number of
// times before running until canceled.
type mockService struct {
	name       string
	maxFails   int32
	startCount atomic.Int32
	failCount  atomic.Int32
}

func newMockService(name string) *mockService {
	return &mockService{name: name}
}

func (m *mockService) Serve(ctx context.Context) error {
	m.startCount.Add(1)

	if m.maxFails > 0 && m.failCount.Add(1) <= m.maxFails {
		return errors.New("simulated failure")
	}

	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string {
	return m.name
}
