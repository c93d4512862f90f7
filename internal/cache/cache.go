// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/storefinder/internal/metrics"
)

// DefaultCleanupInterval is how often Serve sweeps expired entries.
const DefaultCleanupInterval = time.Minute

// Entry represents a cached item with expiration.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Stats tracks cache performance.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Cache is a thread-safe in-memory cache with TTL expiry.
//
// Expired entries are dropped lazily on Get and in bulk by Serve, which is
// meant to run under the supervisor tree:
//
//	responses := cache.New("analytics", 5*time.Minute)
//	tree.Add(supervisor.LayerData, responses)
type Cache struct {
	name            string
	ttl             time.Duration
	cleanupInterval time.Duration

	mu      sync.RWMutex
	entries map[string]Entry

	statsMu sync.Mutex
	stats   Stats
}

// New creates a cache whose entries live for ttl. name labels the cache's
// metrics and its supervisor service name.
func New(name string, ttl time.Duration) *Cache {
	return &Cache{
		name:            name,
		ttl:             ttl,
		cleanupInterval: DefaultCleanupInterval,
		entries:         make(map[string]Entry),
		stats:           Stats{LastCleanup: time.Now()},
	}
}

// Get returns the value for key if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.record(func(s *Stats) { s.Misses++ })
		metrics.RecordCacheLookup(c.name, false)
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// Re-check: a concurrent Set may have refreshed the entry.
		if current, ok := c.entries[key]; ok && time.Now().After(current.ExpiresAt) {
			delete(c.entries, key)
			metrics.CacheEvictions.WithLabelValues(c.name).Inc()
		}
		c.mu.Unlock()
		c.record(func(s *Stats) { s.Misses++; s.Evictions++ })
		metrics.RecordCacheLookup(c.name, false)
		return nil, false
	}

	c.record(func(s *Stats) { s.Hits++ })
	metrics.RecordCacheLookup(c.name, true)
	return entry.Data, true
}

// Set stores value under key with the cache's default TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = Entry{Data: value, ExpiresAt: time.Now().Add(ttl)}
	n := int64(len(c.entries))
	c.mu.Unlock()

	c.record(func(s *Stats) { s.TotalKeys = n })
}

// Delete removes key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	n := int64(len(c.entries))
	c.mu.Unlock()

	if existed {
		c.record(func(s *Stats) { s.Evictions++; s.TotalKeys = n })
	}
}

// Clear removes all entries. The HTTP layer calls it whenever the store
// collection is saved.
func (c *Cache) Clear() {
	c.mu.Lock()
	evicted := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	if evicted > 0 {
		metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(evicted))
	}
	c.record(func(s *Stats) { s.Evictions += evicted; s.TotalKeys = 0 })
}

// GetStats returns a snapshot of the cache statistics.
func (c *Cache) GetStats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

// HitRate returns the hit rate as a percentage.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Serve sweeps expired entries until ctx is canceled. It implements
// suture.Service.
func (c *Cache) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// String implements fmt.Stringer; suture uses it as the service name.
func (c *Cache) String() string {
	return "cache-janitor:" + c.name
}

func (c *Cache) cleanup() {
	now := time.Now()

	c.mu.Lock()
	var evicted int64
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	n := int64(len(c.entries))
	c.mu.Unlock()

	if evicted > 0 {
		metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(evicted))
	}
	c.record(func(s *Stats) {
		s.Evictions += evicted
		s.TotalKeys = n
		s.LastCleanup = now
	})
}

func (c *Cache) record(update func(*Stats)) {
	c.statsMu.Lock()
	update(&c.stats)
	c.statsMu.Unlock()
}
