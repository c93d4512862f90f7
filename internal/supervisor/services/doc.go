// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

/*
Package services adapts application components to suture.Service.

HTTPServerService turns ListenAndServe/Shutdown into a context-aware Serve
with a bounded graceful shutdown.

FeedbackGCService turns the Start/Stop lifecycle of feedback.GCLoop into
Serve:

	func (s *FeedbackGCService) Serve(ctx context.Context) error {
	    if err := s.loop.Start(ctx); err != nil {
	        return err
	    }
	    <-ctx.Done()
	    s.loop.Stop()
	    return ctx.Err()
	}

The response cache needs no wrapper: *cache.Cache implements Serve and
String itself.
*/
package services
