// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// Layer selects the child supervisor a service runs under. Failures restart
// services within their own layer only.
type Layer int

const (
	// LayerData runs cache janitors.
	LayerData Layer = iota
	// LayerMaintenance runs periodic jobs such as feedback value log GC.
	LayerMaintenance
	// LayerAPI runs the HTTP server.
	LayerAPI

	layerCount
)

var layerNames = [layerCount]string{"data-layer", "maintenance-layer", "api-layer"}

func (l Layer) String() string {
	if l < 0 || l >= layerCount {
		return fmt.Sprintf("layer(%d)", int(l))
	}
	return layerNames[l]
}

// TreeConfig tunes restart behavior. Zero fields take the values from
// DefaultTreeConfig.
type TreeConfig struct {
	FailureThreshold float64       // failures before backoff
	FailureDecay     float64       // seconds for the failure count to decay
	FailureBackoff   time.Duration // pause once the threshold is crossed
	ShutdownTimeout  time.Duration // per-service stop deadline
}

// DefaultTreeConfig matches suture's defaults.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func (c TreeConfig) withDefaults() TreeConfig {
	d := DefaultTreeConfig()
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = d.FailureThreshold
	}
	if c.FailureDecay <= 0 {
		c.FailureDecay = d.FailureDecay
	}
	if c.FailureBackoff <= 0 {
		c.FailureBackoff = d.FailureBackoff
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}

func (c TreeConfig) spec() suture.Spec {
	return suture.Spec{
		FailureThreshold: c.FailureThreshold,
		FailureDecay:     c.FailureDecay,
		FailureBackoff:   c.FailureBackoff,
		Timeout:          c.ShutdownTimeout,
	}
}

// Tree is the process supervisor: a "storefinder" root with one child
// supervisor per Layer.
type Tree struct {
	root   *suture.Supervisor
	layers [layerCount]*suture.Supervisor
	config TreeConfig
}

// NewTree builds the tree. Supervisor events are logged through logger, or
// slog.Default when logger is nil.
func NewTree(logger *slog.Logger, config TreeConfig) *Tree {
	if logger == nil {
		logger = slog.Default()
	}
	config = config.withDefaults()

	rootSpec := config.spec()
	rootSpec.EventHook = (&sutureslog.Handler{Logger: logger}).MustHook()

	t := &Tree{root: suture.New("storefinder", rootSpec), config: config}
	for l := Layer(0); l < layerCount; l++ {
		// Children inherit the root's event hook.
		t.layers[l] = suture.New(l.String(), config.spec())
		t.root.Add(t.layers[l])
	}
	return t
}

// Add starts svc under layer once the tree is served, or immediately if it
// already is.
func (t *Tree) Add(layer Layer, svc suture.Service) suture.ServiceToken {
	return t.layers[layer].Add(svc)
}

// Remove stops and drops a service returned by Add.
func (t *Tree) Remove(layer Layer, token suture.ServiceToken) error {
	return t.layers[layer].Remove(token)
}

// Serve runs the tree until ctx is canceled.
func (t *Tree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground runs the tree in a goroutine. The returned channel yields
// exactly one value when the tree stops and is never closed.
func (t *Tree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services that missed the shutdown timeout.
func (t *Tree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
