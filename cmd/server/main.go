// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/tomtom215/storefinder/docs" // registers the swagger spec
	"github.com/tomtom215/storefinder/internal/config"
	"github.com/tomtom215/storefinder/internal/logging"
	"github.com/tomtom215/storefinder/internal/metrics"
	"github.com/tomtom215/storefinder/internal/supervisor"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	os.Exit(run(cfg))
}

// run serves until SIGINT or SIGTERM and returns the process exit code.
func run(cfg *config.Config) int {
	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("config", cfg.String()).
		Msg("Starting Storefinder")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("Wildcard CORS origin in production; set CORS_ORIGINS to the allowed sites")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is disabled (DISABLE_RATE_LIMIT=true)")
	}
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	app, err := newApplication(cfg)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize application")
		return 1
	}
	defer func() {
		if err := app.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close application")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A failed first load is not fatal: readiness reports it and the next
	// request retries.
	if records, err := app.repo.Load(ctx); err != nil {
		logging.Warn().Err(err).Str("path", cfg.Storage.Path).Msg("Initial store load failed")
	} else {
		logging.Info().Int("stores", len(records)).Str("path", cfg.Storage.Path).Msg("Store data loaded")
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	app.supervise(tree)

	// The channel yields one value once the root supervisor returns, either
	// after a signal or because the tree gave up.
	err = <-tree.ServeBackground(ctx)
	code := 0
	switch {
	case ctx.Err() != nil:
		logging.Info().Msg("Shutdown signal received")
	case err != nil:
		logging.Error().Err(err).Msg("Supervisor tree stopped unexpectedly")
		code = 1
	}
	if err != nil && !errors.Is(err, context.Canceled) && ctx.Err() != nil {
		logging.Error().Err(err).Msg("Supervisor shutdown error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within the shutdown timeout")
		}
	}

	logging.Info().Int("exit_code", code).Msg("Storefinder stopped")
	return code
}
