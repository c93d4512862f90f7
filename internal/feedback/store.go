// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/storefinder/internal/logging"
	"github.com/tomtom215/storefinder/internal/metrics"
	"github.com/tomtom215/storefinder/internal/models"
	"github.com/tomtom215/storefinder/internal/validation"
)

const keyPrefix = "feedback:"

// DefaultGCRatio is the value log discard ratio used when Config.GCRatio is unset.
const DefaultGCRatio = 0.5

// ErrClosed is returned by every Store method after Close.
var ErrClosed = errors.New("feedback store is closed")

// Config configures a Store.
type Config struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in memory. Used by tests and by deployments
	// that do not need feedback to survive restarts.
	InMemory bool

	// GCRatio is the discard ratio for value log GC.
	GCRatio float64
}

// Store persists feedback submissions in BadgerDB.
type Store struct {
	db      *badger.DB
	gcRatio float64
	now     func() time.Time

	mu     sync.RWMutex
	closed bool
}

// Open opens (or creates) the feedback database.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("feedback store path is required")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	ratio := cfg.GCRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = DefaultGCRatio
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Msg("Feedback store opened")

	return &Store{
		db:      db,
		gcRatio: ratio,
		now:     time.Now,
	}, nil
}

// Submit validates in, stamps it with an id and a UTC timestamp, and
// persists it.
func (s *Store) Submit(ctx context.Context, in models.FeedbackInput) (fb models.Feedback, err error) {
	defer func() { metrics.RecordFeedback(err) }()

	if err := s.checkNotClosed(); err != nil {
		return models.Feedback{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.Feedback{}, err
	}
	if verr := validation.ValidateStruct(&in); verr != nil {
		return models.Feedback{}, verr
	}

	fb = models.Feedback{
		ID:        uuid.New().String(),
		StoreID:   in.StoreID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: s.now().UTC(),
	}

	data, err := json.Marshal(fb)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("marshal feedback: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(entryKey(fb), data))
	})
	if err != nil {
		return models.Feedback{}, fmt.Errorf("write feedback: %w", err)
	}

	logging.Ctx(ctx).Debug().
		Str("feedback_id", fb.ID).
		Int("rating", fb.Rating).
		Msg("Feedback stored")
	return fb, nil
}

// List returns stored feedback, newest first. limit <= 0 returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]models.Feedback, error) {
	if err := s.checkNotClosed(); err != nil {
		return nil, err
	}

	entries := make([]models.Feedback, 0)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		// Reverse iteration starts at the greatest key with the prefix.
		for it.Seek(append([]byte(keyPrefix), 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := it.Item()
			var fb models.Feedback
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &fb)
			})
			if err != nil {
				logging.Warn().Err(err).Str("key", string(item.Key())).Msg("Feedback store skipped unreadable entry")
				continue
			}

			entries = append(entries, fb)
			if limit > 0 && len(entries) >= limit {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}

	return entries, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := s.checkNotClosed(); err != nil {
		return 0, err
	}

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return count, nil
}

// RunGC runs value log garbage collection until badger has nothing left to
// rewrite. It is a no-op for in-memory stores.
func (s *Store) RunGC() error {
	if err := s.checkNotClosed(); err != nil {
		return err
	}

	metrics.FeedbackGCRuns.Inc()
	for {
		err := s.db.RunValueLogGC(s.gcRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// Close closes the database. Further calls return ErrClosed; closing twice
// is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	logging.Info().Msg("Feedback store closed")
	return nil
}

func (s *Store) checkNotClosed() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

// entryKey orders entries by creation time; the id breaks ties.
func entryKey(fb models.Feedback) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", keyPrefix, fb.CreatedAt.UnixNano(), fb.ID))
}
