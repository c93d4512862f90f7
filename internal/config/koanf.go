// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar names an explicit config file.
const ConfigPathEnvVar = "CONFIG_PATH"

// searchPaths are tried in order when neither a path nor CONFIG_PATH is given.
var searchPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/storefinder/config.yaml",
	"/etc/storefinder/config.yml",
}

// Defaults returns the built-in configuration, before any file or
// environment overrides.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        3857,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Security: SecurityConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Storage: StorageConfig{Path: "data/stores.json", CacheEnabled: true},
		Feedback: FeedbackConfig{
			Path:       "data/feedback",
			GCInterval: 10 * time.Minute,
			GCRatio:    0.5,
		},
		API: APIConfig{DefaultTopN: 5, MaxTopN: 100, CacheTTL: 5 * time.Minute},
	}
}

// LoadFile layers defaults, the YAML file at path and the environment, then
// validates the result. An empty path searches CONFIG_PATH and searchPaths
// and tolerates finding nothing; an explicit path must exist.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func findConfigFile() string {
	candidates := searchPaths
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		// A CONFIG_PATH that does not exist disables the search.
		candidates = []string{p}
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envBinding ties an environment variable to a koanf path. List values are
// comma-separated.
type envBinding struct {
	path string
	list bool
}

// envBindings is keyed by the lowercased variable name. Anything else in the
// environment is ignored.
var envBindings = map[string]envBinding{
	"http_port":    {path: "server.port"},
	"http_host":    {path: "server.host"},
	"http_timeout": {path: "server.timeout"},
	"environment":  {path: "server.environment"},

	"log_level":  {path: "logging.level"},
	"log_format": {path: "logging.format"},
	"log_caller": {path: "logging.caller"},

	"rate_limit_requests": {path: "security.rate_limit_reqs"},
	"rate_limit_window":   {path: "security.rate_limit_window"},
	"disable_rate_limit":  {path: "security.rate_limit_disabled"},
	"cors_origins":        {path: "security.cors_origins", list: true},

	"stores_path":          {path: "storage.path"},
	"stores_cache_enabled": {path: "storage.cache_enabled"},

	"feedback_path":        {path: "feedback.path"},
	"feedback_in_memory":   {path: "feedback.in_memory"},
	"feedback_gc_interval": {path: "feedback.gc_interval"},
	"feedback_gc_ratio":    {path: "feedback.gc_ratio"},

	"api_default_top_n": {path: "api.default_top_n"},
	"api_max_top_n":     {path: "api.max_top_n"},
	"api_cache_ttl":     {path: "api.cache_ttl"},
}

// envValue maps one environment variable onto its config path. Unknown and
// empty variables map to "" and are skipped.
func envValue(key, value string) (string, interface{}) {
	b, ok := envBindings[strings.ToLower(key)]
	if !ok || value == "" {
		return "", nil
	}
	if b.list {
		return b.path, splitList(value)
	}
	return b.path, value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
