// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"context"
	"time"

	"github.com/tomtom215/storefinder/internal/cache"
	"github.com/tomtom215/storefinder/internal/config"
	"github.com/tomtom215/storefinder/internal/logging"
	"github.com/tomtom215/storefinder/internal/models"
	"github.com/tomtom215/storefinder/internal/query"
)

// FeedbackStore is the subset of *feedback.Store the handlers use.
type FeedbackStore interface {
	Submit(ctx context.Context, in models.FeedbackInput) (models.Feedback, error)
	List(ctx context.Context, limit int) ([]models.Feedback, error)
	Count(ctx context.Context) (int, error)
}

// HandlerDeps groups the collaborators of a Handler.
type HandlerDeps struct {
	// Stores supplies the store collection; usually *store.Repository.
	Stores query.Source

	// Feedback is optional. Without it the feedback endpoints answer 503.
	Feedback FeedbackStore

	// Cache holds analytics responses. Optional.
	Cache cache.Cacher

	Config  *config.Config
	Version string
}

// Handler serves the HTTP API.
type Handler struct {
	source    query.Source
	engine    *query.Engine
	feedback  FeedbackStore
	cache     cache.Cacher
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a Handler. A nil Config falls back to the defaults.
func NewHandler(deps HandlerDeps) *Handler {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Defaults()
	}
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		source:    deps.Stores,
		engine:    query.NewEngine(deps.Stores),
		feedback:  deps.Feedback,
		cache:     deps.Cache,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}

// ClearCache drops every cached analytics response.
func (h *Handler) ClearCache() {
	if h.cache == nil {
		return
	}
	h.cache.Clear()
	logging.Info().Msg("Analytics cache cleared")
}

// OnStoresSaved is a store.SaveListener: a save makes every cached
// aggregate stale.
func (h *Handler) OnStoresSaved(records []models.StoreRecord) {
	logging.Debug().Int("stores", len(records)).Msg("Store collection saved")
	h.ClearCache()
}

// cached returns the cached value for key, if any.
func (h *Handler) cached(key string) (interface{}, bool) {
	if h.cache == nil {
		return nil, false
	}
	return h.cache.Get(key)
}

func (h *Handler) remember(key string, value interface{}) {
	if h.cache != nil {
		h.cache.Set(key, value)
	}
}
