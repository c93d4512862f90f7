// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

/*
Package config provides layered configuration for the storefinder binaries.

# Configuration Sources

Settings are resolved with Koanf v2 in three layers, later layers winning:
  - Built-in defaults (structs provider)
  - An optional YAML file: CONFIG_PATH, else config.yaml or
    /etc/storefinder/config.yaml
  - Environment variables, mapped explicitly (unknown variables are ignored)

The binaries call godotenv.Load() first, so a local .env file feeds the
environment layer.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3857)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging or production (default: development)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

Security:
  - RATE_LIMIT_REQUESTS: Requests per window per client (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Storage:
  - STORES_PATH: Store collection document (default: data/stores.json)
  - STORES_CACHE_ENABLED: Keep the last loaded collection in memory (default: true)

Feedback:
  - FEEDBACK_PATH: BadgerDB directory (default: data/feedback)
  - FEEDBACK_IN_MEMORY: Keep feedback in memory only (default: false)
  - FEEDBACK_GC_INTERVAL: Value log GC interval (default: 10m)
  - FEEDBACK_GC_RATIO: Value log GC discard ratio (default: 0.5)

API:
  - API_DEFAULT_TOP_N: Top-rated entries in a summary (default: 5)
  - API_MAX_TOP_N: Upper bound for top and n parameters (default: 100)
  - API_CACHE_TTL: Analytics response cache lifetime (default: 5m)

# Example config.yaml

	server:
	  port: 8080
	storage:
	  path: /srv/storefinder/stores.json
	security:
	  cors_origins:
	    - https://maps.example.com

# Validation

Load returns an error when a value is out of range, for example a port
outside 1-65535, a GC ratio outside (0, 1) or a default top N larger than
the maximum. Config is immutable after Load and safe for concurrent reads.
*/
package config
