// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

// Package logging provides centralized zerolog-based structured logging for Storefinder.
//
// Every package logs through the global logger configured here, so the HTTP
// server, the repository and the CLI all emit the same field names.
//
// # Overview
//
// The package provides:
//   - JSON output for production and console output for development
//   - Request ID propagation through context.Context
//   - An slog adapter so Suture v4 (via sutureslog) logs through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("path", repo.Path()).Int("records", n).Msg("Store collection loaded")
//	logging.Error().Err(err).Msg("Failed to save store collection")
//
//	// Request-scoped logging
//	logging.Ctx(ctx).Info().Msg("Processing request")
//
// # Configuration
//
// The level, format and caller flag come from the logging section of the
// application config (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
