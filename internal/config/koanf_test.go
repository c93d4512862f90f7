// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// chdirTemp moves the test into an empty directory so no stray config.yaml
// is picked up, and restores the working directory afterwards.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
	return dir
}

// clearConfigEnv unsets every mapped variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for key := range envBindings {
		t.Setenv(strings.ToUpper(key), "")
		os.Unsetenv(strings.ToUpper(key))
	}
	t.Setenv(ConfigPathEnvVar, "")
	os.Unsetenv(ConfigPathEnvVar)
}

// TestDefaultConfig pins the built-in defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := Defaults()

	if cfg.Server.Port != 3857 {
		t.Errorf("Server.Port = %d, want 3857", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Storage.Path != "data/stores.json" {
		t.Errorf("Storage.Path = %q, want data/stores.json", cfg.Storage.Path)
	}
	if !cfg.Storage.CacheEnabled {
		t.Error("Storage.CacheEnabled should be true by default")
	}
	if cfg.Feedback.GCRatio != 0.5 {
		t.Errorf("Feedback.GCRatio = %v, want 0.5", cfg.Feedback.GCRatio)
	}
	if cfg.API.DefaultTopN != 5 || cfg.API.MaxTopN != 100 {
		t.Errorf("API top N = %d/%d, want 5/100", cfg.API.DefaultTopN, cfg.API.MaxTopN)
	}
	if cfg.API.CacheTTL != 5*time.Minute {
		t.Errorf("API.CacheTTL = %v, want 5m", cfg.API.CacheTTL)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEnvValue(t *testing.T) {
	tests := []struct {
		env   string
		value string
		path  string
		want  interface{}
	}{
		{"HTTP_PORT", "9000", "server.port", "9000"},
		{"http_port", "9000", "server.port", "9000"},
		{"LOG_LEVEL", "debug", "logging.level", "debug"},
		{"CORS_ORIGINS", " a , ,b ", "security.cors_origins", []string{"a", "b"}},
		{"STORES_PATH", "s.json", "storage.path", "s.json"},
		{"FEEDBACK_IN_MEMORY", "true", "feedback.in_memory", "true"},
		{"API_MAX_TOP_N", "50", "api.max_top_n", "50"},
		{"API_MAX_TOP_N", "", "", nil},
		{"PATH", "/usr/bin", "", nil},
		{"HOME", "/root", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			path, got := envValue(tt.env, tt.value)
			if path != tt.path {
				t.Errorf("envValue(%q) path = %q, want %q", tt.env, path, tt.path)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("envValue(%q) value = %#v, want %#v", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	clearConfigEnv(t)

	t.Run("no config file exists", func(t *testing.T) {
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: {}\n"), 0o644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(filepath.Join(dir, "config.yaml"))

		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(dir, "custom.yaml")
		if err := os.WriteFile(customPath, []byte("server: {}\n"), 0o644); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, customPath)

		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

func TestLoadFileEnvVars(t *testing.T) {
	chdirTemp(t)
	clearConfigEnv(t)

	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORES_PATH", "/tmp/stores.json")
	t.Setenv("STORES_CACHE_ENABLED", "false")
	t.Setenv("FEEDBACK_IN_MEMORY", "true")
	t.Setenv("FEEDBACK_GC_INTERVAL", "30s")
	t.Setenv("API_CACHE_TTL", "1m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Storage.Path != "/tmp/stores.json" || cfg.Storage.CacheEnabled {
		t.Errorf("Storage = %+v, want /tmp/stores.json without cache", cfg.Storage)
	}
	if !cfg.Feedback.InMemory || cfg.Feedback.GCInterval != 30*time.Second {
		t.Errorf("Feedback = %+v", cfg.Feedback)
	}
	if cfg.API.CacheTTL != time.Minute {
		t.Errorf("API.CacheTTL = %v, want 1m", cfg.API.CacheTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}

	// Unset values keep their defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.API.MaxTopN != 100 {
		t.Errorf("API.MaxTopN = %d, want 100 (default)", cfg.API.MaxTopN)
	}
}

func TestLoadFileConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	clearConfigEnv(t)

	content := `
server:
  port: 8080
  environment: staging
logging:
  level: warn
  format: console
storage:
  path: /srv/stores.json
api:
  default_top_n: 3
  max_top_n: 10
security:
  cors_origins:
    - https://maps.example.com
`
	path := filepath.Join(dir, "storefinder.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Server.Port != 8080 || cfg.Server.Environment != "staging" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Storage.Path != "/srv/stores.json" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
	if cfg.API.DefaultTopN != 3 || cfg.API.MaxTopN != 10 {
		t.Errorf("API = %+v", cfg.API)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://maps.example.com"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Feedback.Path != "data/feedback" {
		t.Errorf("Feedback.Path = %q, want default", cfg.Feedback.Path)
	}
}

func TestLoadFileEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	clearConfigEnv(t)

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8080\nlogging:\n  level: warn\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env wins)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (from file)", cfg.Logging.Level)
	}
}

func TestLoadFileMissing(t *testing.T) {
	chdirTemp(t)
	clearConfigEnv(t)

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile() with a missing explicit path should fail")
	}
}

func TestLoadFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "port out of range", env: map[string]string{"HTTP_PORT": "70000"}, wantErr: "HTTP_PORT"},
		{name: "unknown environment", env: map[string]string{"ENVIRONMENT": "qa"}, wantErr: "ENVIRONMENT"},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "verbose"}, wantErr: "LOG_LEVEL"},
		{name: "bad log format", env: map[string]string{"LOG_FORMAT": "xml"}, wantErr: "LOG_FORMAT"},
		{name: "rate limit zero", env: map[string]string{"RATE_LIMIT_REQUESTS": "0"}, wantErr: "RATE_LIMIT_REQUESTS"},
		{name: "rate limit window too long", env: map[string]string{"RATE_LIMIT_WINDOW": "2h"}, wantErr: "RATE_LIMIT_WINDOW"},
		{name: "empty stores path", env: map[string]string{"STORES_PATH": " "}, wantErr: "STORES_PATH"},
		{name: "gc ratio one", env: map[string]string{"FEEDBACK_GC_RATIO": "1"}, wantErr: "FEEDBACK_GC_RATIO"},
		{name: "gc interval too short", env: map[string]string{"FEEDBACK_GC_INTERVAL": "10ms"}, wantErr: "FEEDBACK_GC_INTERVAL"},
		{name: "default above max", env: map[string]string{"API_DEFAULT_TOP_N": "20", "API_MAX_TOP_N": "10"}, wantErr: "API_DEFAULT_TOP_N"},
		{name: "max zero", env: map[string]string{"API_MAX_TOP_N": "0"}, wantErr: "API_MAX_TOP_N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadFile("")
			if err == nil {
				t.Fatal("LoadFile() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestRateLimitDisabledSkipsBounds(t *testing.T) {
	cfg := Defaults()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with rate limiting disabled = %v", err)
	}
}

func TestFeedbackInMemoryAllowsEmptyPath(t *testing.T) {
	cfg := Defaults()
	cfg.Feedback.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty feedback path should fail without in-memory mode")
	}
	cfg.Feedback.InMemory = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("in-memory feedback with empty path: %v", err)
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	cfg := Defaults()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("development wildcard should not warn")
	}
	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("production wildcard should warn")
	}
	cfg.Security.CORSOrigins = []string{"https://maps.example.com"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origins should not warn")
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 3857}
	if got := s.Addr(); got != "127.0.0.1:3857" {
		t.Errorf("Addr() = %q", got)
	}
	s.Host = "::1"
	if got := s.Addr(); got != "[::1]:3857" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Defaults()
	cfg.Server.Port = 0
	cfg.Logging.Level = "loud"
	cfg.Security.CORSOrigins = []string{"https://a.example", " "}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, want := range []string{"HTTP_PORT", "LOG_LEVEL", "CORS_ORIGINS"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
