// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/storefinder/internal/cache"
	"github.com/tomtom215/storefinder/internal/config"
	"github.com/tomtom215/storefinder/internal/feedback"
	"github.com/tomtom215/storefinder/internal/models"
	"github.com/tomtom215/storefinder/internal/store"
)

// testEnv is a fully wired router backed by a temp-dir repository and an
// in-memory feedback store.
type testEnv struct {
	router   http.Handler
	handler  *Handler
	repo     *store.Repository
	feedback *feedback.Store
	cache    *cache.Cache
	path     string
}

type envOption func(*HandlerDeps, *config.SecurityConfig)

func withoutFeedback() envOption {
	return func(d *HandlerDeps, _ *config.SecurityConfig) { d.Feedback = nil }
}

func withRateLimit(requests int) envOption {
	return func(_ *HandlerDeps, sec *config.SecurityConfig) {
		sec.RateLimitDisabled = false
		sec.RateLimitReqs = requests
		sec.RateLimitWindow = time.Minute
	}
}

func setupTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stores.json")
	repo := store.New(store.Config{Path: path, CacheEnabled: true})

	fb, err := feedback.Open(feedback.Config{InMemory: true})
	if err != nil {
		t.Fatalf("feedback.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = fb.Close() })

	responses := cache.New("analytics-test", time.Minute)

	deps := HandlerDeps{
		Stores:   repo,
		Feedback: fb,
		Cache:    responses,
		Config:   config.Defaults(),
		Version:  "test",
	}
	sec := config.SecurityConfig{CORSOrigins: []string{"*"}, RateLimitDisabled: true}
	for _, opt := range opts {
		opt(&deps, &sec)
	}

	handler := NewHandler(deps)
	repo.OnSave(handler.OnStoresSaved)

	return &testEnv{
		router:   NewRouter(handler, NewGuards(sec)).SetupChi(),
		handler:  handler,
		repo:     repo,
		feedback: fb,
		cache:    responses,
		path:     path,
	}
}

// corrupt replaces the store document with unparseable content.
func (e *testEnv) corrupt(t *testing.T) {
	t.Helper()
	if err := os.WriteFile(e.path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupt document: %v", err)
	}
}

func (e *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) post(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// envelope mirrors models.APIResponse with the payload left undecoded.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, w.Body.String())
	}
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) envelope {
	t.Helper()
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v\ndata: %s", err, env.Data)
	}
	return env
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d\nbody: %s", w.Code, status, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Status != "error" {
		t.Errorf("envelope status = %q, want error", env.Status)
	}
	if env.Error == nil || env.Error.Code != code {
		t.Errorf("error = %+v, want code %s", env.Error, code)
	}
}
