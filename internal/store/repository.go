// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tomtom215/storefinder/internal/logging"
	"github.com/tomtom215/storefinder/internal/metrics"
	"github.com/tomtom215/storefinder/internal/models"
)

// DefaultPath is the well-known location of the store document.
const DefaultPath = "data/stores.json"

// Config configures a Repository.
type Config struct {
	// Path of the JSON store document. Defaults to DefaultPath.
	Path string

	// CacheEnabled keeps the loaded collection in memory. The cache is
	// replaced on every Save, dropped by Invalidate, and reloaded when the
	// document's size or modification time changes on disk.
	CacheEnabled bool

	// Sample is the collection written when Path does not exist.
	// Defaults to SampleStores().
	Sample []models.StoreRecord
}

// SaveListener is called with a copy of the collection after every
// successful Save, and after a Load picks up a document rewritten by another
// writer.
type SaveListener func(records []models.StoreRecord)

// Repository owns the persisted store collection.
//
// Loads return private copies, so callers may sort or modify the result
// without affecting other readers. Saves are serialized within the process;
// the file write itself is not atomic, so concurrent writers in different
// processes must coordinate externally.
type Repository struct {
	path         string
	cacheEnabled bool
	sample       []models.StoreRecord

	mu     sync.RWMutex
	cached []models.StoreRecord
	stamp  fileStamp
	loaded bool
	// gen is bumped whenever the cache is replaced or dropped; a read that
	// started under an older generation does not overwrite it.
	gen uint64

	writeMu sync.Mutex

	listenersMu sync.RWMutex
	listeners   []SaveListener
}

// New creates a Repository. No I/O happens until the first Load.
func New(cfg Config) *Repository {
	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}
	sample := cfg.Sample
	if sample == nil {
		sample = SampleStores()
	}
	return &Repository{
		path:         path,
		cacheEnabled: cfg.CacheEnabled,
		sample:       cloneRecords(sample),
	}
}

// Path returns the location of the store document.
func (r *Repository) Path() string {
	return r.path
}

// Load returns the store collection.
//
// When the document does not exist the sample collection is saved and
// returned. A document that cannot be read or parsed yields a *DataLoadError;
// a failed first-run save yields a *DataWriteError. Longitudes stored under
// "lon" are returned as Lng and records without an id get a synthesized one.
func (r *Repository) Load(ctx context.Context) ([]models.StoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	var (
		stale bool
		gen   uint64
	)
	if r.cacheEnabled {
		r.mu.RLock()
		loaded, stamp := r.loaded, r.stamp
		gen = r.gen
		var records []models.StoreRecord
		if loaded {
			records = cloneRecords(r.cached)
		}
		r.mu.RUnlock()

		if loaded {
			current, err := statFile(r.path)
			if err == nil && current == stamp {
				metrics.RecordStoreLoad(metrics.LoadSourceCache, len(records), time.Since(start))
				return records, nil
			}
			stale = true
			logging.Debug().Str("path", r.path).Msg("Store document changed on disk, reloading")
		}
	}

	stamp, _ := statFile(r.path)
	records, source, err := r.read(ctx)
	if err != nil {
		metrics.RecordStoreLoadError()
		logging.Error().Err(err).Str("path", r.path).Msg("Failed to load store collection")
		return nil, err
	}

	if source == metrics.LoadSourceFile && r.remember(records, stamp, gen) && stale {
		r.notify(records)
	}
	metrics.RecordStoreLoad(source, len(records), time.Since(start))
	logging.Debug().
		Str("path", r.path).
		Str("source", source).
		Int("records", len(records)).
		Msg("Store collection loaded")
	return records, nil
}

// read loads the document from disk, seeding it when absent.
func (r *Repository) read(ctx context.Context) ([]models.StoreRecord, string, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		sample := cloneRecords(r.sample)
		logging.Info().
			Str("path", r.path).
			Int("records", len(sample)).
			Msg("Store document not found, seeding sample collection")
		if err := r.Save(ctx, sample); err != nil {
			return nil, "", err
		}
		return sample, metrics.LoadSourceSeed, nil
	}
	if err != nil {
		return nil, "", &DataLoadError{Path: r.path, Err: err}
	}

	records, err := decodeDocument(data)
	if err != nil {
		return nil, "", &DataLoadError{Path: r.path, Err: err}
	}
	return records, metrics.LoadSourceFile, nil
}

// Save replaces the persisted collection with records, creating the parent
// directory if needed. Failures are returned as *DataWriteError.
//
// After a successful save the next Load observes exactly these records.
func (r *Repository) Save(ctx context.Context, records []models.StoreRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if err := r.write(records); err != nil {
		metrics.RecordStoreSave(len(records), err)
		logging.Error().Err(err).Str("path", r.path).Msg("Failed to save store collection")
		return err
	}
	metrics.RecordStoreSave(len(records), nil)

	saved := cloneRecords(records)
	stamp, err := statFile(r.path)
	r.mu.Lock()
	r.gen++
	if r.cacheEnabled && err == nil {
		r.cached, r.stamp, r.loaded = cloneRecords(saved), stamp, true
	} else {
		r.cached, r.loaded = nil, false
	}
	r.mu.Unlock()
	r.notify(saved)

	logging.Info().Str("path", r.path).Int("records", len(records)).Msg("Store collection saved")
	return nil
}

func (r *Repository) write(records []models.StoreRecord) error {
	data, err := encodeDocument(records)
	if err != nil {
		return &DataWriteError{Path: r.path, Err: err}
	}
	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &DataWriteError{Path: r.path, Err: err}
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return &DataWriteError{Path: r.path, Err: err}
	}
	return nil
}

// Invalidate drops the in-memory collection; the next Load reads the file.
func (r *Repository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
	r.loaded = false
	r.gen++
}

// OnSave registers a listener invoked after every successful Save.
func (r *Repository) OnSave(fn SaveListener) {
	if fn == nil {
		return
	}
	r.listenersMu.Lock()
	defer r.listenersMu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// remember caches records read from the document identified by stamp. It
// reports false when a Save or Invalidate happened since generation gen.
func (r *Repository) remember(records []models.StoreRecord, stamp fileStamp, gen uint64) bool {
	if !r.cacheEnabled || stamp == (fileStamp{}) {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen != gen {
		return false
	}
	r.cached = cloneRecords(records)
	r.stamp = stamp
	r.loaded = true
	r.gen++
	return true
}

// fileStamp identifies one version of the document on disk.
type fileStamp struct {
	modTime int64
	size    int64
}

func statFile(path string) (fileStamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}, err
	}
	return fileStamp{modTime: info.ModTime().UnixNano(), size: info.Size()}, nil
}

func (r *Repository) notify(records []models.StoreRecord) {
	r.listenersMu.RLock()
	listeners := make([]SaveListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(cloneRecords(records))
	}
}

func cloneRecords(records []models.StoreRecord) []models.StoreRecord {
	out := make([]models.StoreRecord, len(records))
	copy(out, records)
	return out
}
