// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

/*
Package supervisor runs the long-lived parts of the server under suture v4.

Services are grouped into three child supervisors, one per Layer, so that a
crash restarts only its own layer:

	storefinder
	├── data-layer
	│   └── *cache.Cache janitor (cache-janitor:analytics)
	├── maintenance-layer
	│   └── FeedbackGCService
	└── api-layer
	    └── HTTPServerService

The store repository is not supervised. It does file I/O on demand and holds
no goroutines.

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	tree.Add(supervisor.LayerData, responses)
	tree.Add(supervisor.LayerMaintenance, services.NewFeedbackGCService(gcLoop))
	tree.Add(supervisor.LayerAPI, services.NewHTTPServerService(server, addr, 10*time.Second))

	errCh := tree.ServeBackground(ctx)

Failures decay over FailureDecay seconds; past FailureThreshold the layer
waits FailureBackoff before restarting. Supervisor events reach zerolog via
sutureslog and the logging package's slog adapter. A service that returns
suture.ErrDoNotRestart is dropped; any other return is restarted until the
tree stops.
*/
package supervisor
