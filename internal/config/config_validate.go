// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Rate limit bounds, enforced unless rate limiting is disabled.
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var (
	environments = []string{"development", "staging", "production"}
	logLevels    = []string{"trace", "debug", "info", "warn", "error"}
	logFormats   = []string{"json", "console"}
)

// Validate reports every out-of-range setting at once, each named by its
// environment variable.
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		fail("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		fail("HTTP_TIMEOUT must be positive")
	}
	if !slices.Contains(environments, c.Server.Environment) {
		fail("ENVIRONMENT must be one of: %s", strings.Join(environments, ", "))
	}

	if !c.Security.RateLimitDisabled {
		if n := c.Security.RateLimitReqs; n < minRateLimitRequests || n > maxRateLimitRequests {
			fail("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
		}
		if w := c.Security.RateLimitWindow; w < minRateLimitWindow || w > maxRateLimitWindow {
			fail("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
		}
	}
	if slices.ContainsFunc(c.Security.CORSOrigins, func(o string) bool { return strings.TrimSpace(o) == "" }) {
		fail("CORS_ORIGINS must not contain empty entries")
	}

	if strings.TrimSpace(c.Storage.Path) == "" {
		fail("STORES_PATH is required")
	}

	if !c.Feedback.InMemory && strings.TrimSpace(c.Feedback.Path) == "" {
		fail("FEEDBACK_PATH is required unless FEEDBACK_IN_MEMORY=true")
	}
	if c.Feedback.GCInterval < time.Second {
		fail("FEEDBACK_GC_INTERVAL must be at least 1s")
	}
	// badger rejects discard ratios outside (0, 1).
	if c.Feedback.GCRatio <= 0 || c.Feedback.GCRatio >= 1 {
		fail("FEEDBACK_GC_RATIO must be between 0 and 1 (exclusive)")
	}

	if c.API.MaxTopN < 1 {
		fail("API_MAX_TOP_N must be at least 1")
	} else if c.API.DefaultTopN < 1 || c.API.DefaultTopN > c.API.MaxTopN {
		fail("API_DEFAULT_TOP_N must be between 1 and API_MAX_TOP_N (%d)", c.API.MaxTopN)
	}
	if c.API.CacheTTL < 0 {
		fail("API_CACHE_TTL must not be negative")
	}

	if !slices.Contains(logLevels, c.Logging.Level) {
		fail("LOG_LEVEL must be one of: %s", strings.Join(logLevels, ", "))
	}
	if c.Logging.Format != "" && !slices.Contains(logFormats, c.Logging.Format) {
		fail("LOG_FORMAT must be one of: %s", strings.Join(logFormats, ", "))
	}

	return errors.Join(errs...)
}

// ShouldWarnAboutCORS reports a wildcard origin in production. Wildcards are
// accepted since the API carries no credentials.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && slices.Contains(c.Security.CORSOrigins, "*")
}
