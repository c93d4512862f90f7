// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: Override any setting via environment variables
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Security SecurityConfig `koanf:"security"`
	Storage  StorageConfig  `koanf:"storage"`
	Feedback FeedbackConfig `koanf:"feedback"`
	API      APIConfig      `koanf:"api"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging or production
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json (production) or console (development).
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// StorageConfig locates the store collection document.
type StorageConfig struct {
	Path         string `koanf:"path"`
	CacheEnabled bool   `koanf:"cache_enabled"`
}

// FeedbackConfig holds the BadgerDB feedback store settings.
type FeedbackConfig struct {
	Path       string        `koanf:"path"`
	InMemory   bool          `koanf:"in_memory"`
	GCInterval time.Duration `koanf:"gc_interval"`
	// GCRatio is the discard ratio handed to badger's value log GC.
	GCRatio float64 `koanf:"gc_ratio"`
}

// APIConfig holds query limits and response caching settings.
type APIConfig struct {
	DefaultTopN int           `koanf:"default_top_n"`
	MaxTopN     int           `koanf:"max_top_n"`
	CacheTTL    time.Duration `koanf:"cache_ttl"`
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports whether ENVIRONMENT is development (the default).
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "" || c.Server.Environment == "development"
}

// String summarizes the configuration for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("server=%s env=%s stores=%s feedback=%s",
		c.Server.Addr(), c.Server.Environment, c.Storage.Path, c.feedbackLocation())
}

func (c *Config) feedbackLocation() string {
	if c.Feedback.InMemory {
		return "memory"
	}
	return c.Feedback.Path
}

// Load reads configuration in the following order:
//  1. Built-in defaults
//  2. Config file (CONFIG_PATH, or config.yaml when present)
//  3. Environment variables
func Load() (*Config, error) {
	return LoadFile("")
}
