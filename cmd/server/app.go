// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/storefinder/internal/api"
	"github.com/tomtom215/storefinder/internal/cache"
	"github.com/tomtom215/storefinder/internal/config"
	"github.com/tomtom215/storefinder/internal/feedback"
	"github.com/tomtom215/storefinder/internal/logging"
	"github.com/tomtom215/storefinder/internal/store"
	"github.com/tomtom215/storefinder/internal/supervisor"
	"github.com/tomtom215/storefinder/internal/supervisor/services"
)

// application holds the wired server components.
type application struct {
	cfg       *config.Config
	repo      *store.Repository
	feedback  *feedback.Store
	gcLoop    *feedback.GCLoop
	responses *cache.Cache
	handler   *api.Handler
	server    *http.Server
}

// newApplication wires repository, feedback store, response cache, handler
// and router from cfg. The caller must Close the result.
func newApplication(cfg *config.Config) (*application, error) {
	repo := store.New(store.Config{
		Path:         cfg.Storage.Path,
		CacheEnabled: cfg.Storage.CacheEnabled,
	})

	fb, err := feedback.Open(feedback.Config{
		Path:     cfg.Feedback.Path,
		InMemory: cfg.Feedback.InMemory,
		GCRatio:  cfg.Feedback.GCRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("open feedback store: %w", err)
	}

	var responses *cache.Cache
	var responseCache cache.Cacher
	if cfg.API.CacheTTL > 0 {
		responses = cache.New("analytics", cfg.API.CacheTTL)
		responseCache = responses
	}

	handler := api.NewHandler(api.HandlerDeps{
		Stores:   repo,
		Feedback: fb,
		Cache:    responseCache,
		Config:   cfg,
		Version:  version,
	})
	repo.OnSave(handler.OnStoresSaved)

	router := api.NewRouter(handler, api.NewGuards(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	return &application{
		cfg:       cfg,
		repo:      repo,
		feedback:  fb,
		gcLoop:    feedback.NewGCLoop(fb, cfg.Feedback.GCInterval),
		responses: responses,
		handler:   handler,
		server:    server,
	}, nil
}

// supervise registers the long-running services with tree.
func (a *application) supervise(tree *supervisor.Tree) {
	if a.responses != nil {
		tree.Add(supervisor.LayerData, a.responses)
	}
	if !a.cfg.Feedback.InMemory {
		tree.Add(supervisor.LayerMaintenance, services.NewFeedbackGCService(a.gcLoop))
	}
	tree.Add(supervisor.LayerAPI, services.NewHTTPServerService(a.server, a.server.Addr, 10*time.Second))
	logging.Info().Str("addr", a.server.Addr).Msg("HTTP server service added")
}

// Close releases the feedback database.
func (a *application) Close() error {
	if err := a.feedback.Close(); err != nil {
		return fmt.Errorf("close feedback store: %w", err)
	}
	return nil
}
