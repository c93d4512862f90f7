// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

/*
Package main is the entry point for the Storefinder server.

Storefinder serves a small retail store catalog over HTTP: filtered store
listings, distance-sorted results around a point, per-type counts, a
summary with average rating and top-rated stores, a rating histogram, a map
view of the current selection, GeoJSON and Excel exports, and customer
feedback.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("storefinder")
	├── DataSupervisor ("data-layer")
	│   └── Response cache janitor (when API_CACHE_TTL > 0)
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Feedback value log GC (disk-backed feedback only)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with .env, config file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Store repository: JSON document, seeded with sample stores on first run
 4. Feedback store: BadgerDB, on disk or in memory
 5. Response cache and API handlers
 6. Supervisor tree and HTTP server

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

A .env file in the working directory is loaded into the environment first.

Core environment variables:

	# Server
	HTTP_PORT=3857               # HTTP server port
	HTTP_HOST=0.0.0.0
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Data
	STORES_PATH=data/stores.json
	STORES_CACHE_ENABLED=true
	FEEDBACK_PATH=data/feedback
	FEEDBACK_IN_MEMORY=false

	# API
	API_DEFAULT_TOP_N=5
	API_MAX_TOP_N=100
	API_CACHE_TTL=5m             # 0 disables response caching

	# Security
	CORS_ORIGINS=*
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m
	DISABLE_RATE_LIMIT=false

Set CONFIG_PATH to read a YAML config file from a non-default location.

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (10s timeout)
 3. Stops the feedback GC loop after any running pass
 4. Closes the feedback database
 5. Reports any services that failed to stop

# Usage Examples

Development:

	export LOG_FORMAT=console FEEDBACK_IN_MEMORY=true
	go run ./cmd/server

Production:

	export ENVIRONMENT=production CORS_ORIGINS=https://stores.example.com
	./storefinder

# API Documentation

Swagger documentation is available at /swagger/index.html when the server
is running. Prometheus metrics are served at /metrics.

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/query: Filtering and aggregation
  - cmd/storectl: Command-line access to the same data
*/
package main
