// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/storefinder/internal/logging"
)

// DefaultShutdownTimeout bounds the drain of in-flight requests.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server under the supervisor. Cancellation
// of the Serve context triggers a graceful Shutdown; a listener failure is
// returned so the api layer restarts the service.
//
//	server := &http.Server{Addr: cfg.Server.Addr(), Handler: handler}
//	tree.Add(supervisor.LayerAPI, services.NewHTTPServerService(server, server.Addr, 10*time.Second))
type HTTPServerService struct {
	server          HTTPServer
	addr            string // for logs only
	shutdownTimeout time.Duration
}

func NewHTTPServerService(server HTTPServer, addr string, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &HTTPServerService{server: server, addr: addr, shutdownTimeout: shutdownTimeout}
}

func (h *HTTPServerService) Serve(ctx context.Context) error {
	exited := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", h.addr).Msg("HTTP server listening")
		exited <- h.server.ListenAndServe()
	}()

	select {
	case err := <-exited:
		if errors.Is(err, http.ErrServerClosed) {
			err = errors.New("closed outside of shutdown")
		}
		return fmt.Errorf("http server on %s: %w", h.addr, err)
	case <-ctx.Done():
	}

	// ctx is already done, so the drain gets its own deadline.
	drainCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	logging.Info().Dur("timeout", h.shutdownTimeout).Msg("Shutting down HTTP server")
	if err := h.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	<-exited
	return ctx.Err()
}

func (h *HTTPServerService) String() string {
	return "http-server"
}
