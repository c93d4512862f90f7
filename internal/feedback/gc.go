// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package feedback

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/storefinder/internal/logging"
)

// DefaultGCInterval is used when NewGCLoop is given a non-positive interval.
const DefaultGCInterval = 10 * time.Minute

// GCLoop periodically runs value log GC on a Store.
type GCLoop struct {
	store    *Store
	interval time.Duration

	// Control
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// State
	mu      sync.Mutex
	running bool
	lastRun time.Time
}

// NewGCLoop creates a GC loop for store.
func NewGCLoop(store *Store, interval time.Duration) *GCLoop {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	return &GCLoop{store: store, interval: interval}
}

// Start begins the background GC loop. Starting a running loop is a no-op.
func (g *GCLoop) Start(ctx context.Context) error {
	g.mu.Lock()
	if g.running {
		g.mu.Unlock()
		return nil
	}

	g.ctx, g.cancel = context.WithCancel(ctx)
	g.running = true
	g.mu.Unlock()

	g.wg.Add(1)
	go g.run()

	logging.Info().Dur("interval", g.interval).Msg("Feedback GC loop started")
	return nil
}

// Stop stops the loop and waits for an in-flight GC to finish.
func (g *GCLoop) Stop() {
	g.mu.Lock()
	if !g.running {
		g.mu.Unlock()
		return
	}
	g.cancel()
	g.running = false
	g.mu.Unlock()

	g.wg.Wait()
	logging.Info().Msg("Feedback GC loop stopped")
}

// IsRunning returns whether the loop is active.
func (g *GCLoop) IsRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// LastRun returns when GC last completed, or the zero time.
func (g *GCLoop) LastRun() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastRun
}

func (g *GCLoop) run() {
	defer g.wg.Done()

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-g.ctx.Done():
			return
		case <-ticker.C:
			g.collect()
		}
	}
}

func (g *GCLoop) collect() {
	start := time.Now()
	if err := g.store.RunGC(); err != nil {
		logging.Error().Err(err).Msg("Feedback store GC failed")
		return
	}

	g.mu.Lock()
	g.lastRun = time.Now()
	g.mu.Unlock()

	logging.Debug().Dur("duration", time.Since(start)).Msg("Feedback store GC completed")
}
