// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package query

import (
	"context"

	"github.com/tomtom215/storefinder/internal/models"
)

// Source supplies the record collection. *store.Repository satisfies it.
type Source interface {
	Load(ctx context.Context) ([]models.StoreRecord, error)
}

// Engine binds a Source to the query functions. Every call loads the
// collection once and works on that private copy; load errors are returned
// unchanged so callers can match the repository's typed errors.
type Engine struct {
	source Source
}

// NewEngine creates an Engine reading from source.
func NewEngine(source Source) *Engine {
	return &Engine{source: source}
}

// Stores returns the records matching c.
func (e *Engine) Stores(ctx context.Context, c Criteria) ([]models.StoreRecord, error) {
	records, err := e.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Apply(records), nil
}

// Summary summarizes the records matching c.
func (e *Engine) Summary(ctx context.Context, c Criteria, topN int) (models.AnalyticsSummary, error) {
	records, err := e.Stores(ctx, c)
	if err != nil {
		return models.AnalyticsSummary{}, err
	}
	return Summarize(records, topN), nil
}

// TopRated returns the n best rated records matching c.
func (e *Engine) TopRated(ctx context.Context, c Criteria, n int) ([]models.StoreRecord, error) {
	records, err := e.Stores(ctx, c)
	if err != nil {
		return nil, err
	}
	return TopRated(records, n), nil
}

// Types returns the distinct store types of the whole collection.
func (e *Engine) Types(ctx context.Context) ([]string, error) {
	records, err := e.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return StoreTypes(records), nil
}

// Distribution returns the rating histogram of the records matching c.
func (e *Engine) Distribution(ctx context.Context, c Criteria, bins int) ([]models.RatingBucket, error) {
	records, err := e.Stores(ctx, c)
	if err != nil {
		return nil, err
	}
	return RatingDistribution(records, bins), nil
}

// MapView returns the map framing of the records matching c.
func (e *Engine) MapView(ctx context.Context, c Criteria) (models.MapView, error) {
	records, err := e.Stores(ctx, c)
	if err != nil {
		return models.MapView{}, err
	}
	return MapViewOf(records), nil
}

// Nearby returns the records matching c annotated with their distance from
// (lat, lng), in collection order.
func (e *Engine) Nearby(ctx context.Context, c Criteria, lat, lng float64) ([]models.StoreDistance, error) {
	records, err := e.Stores(ctx, c)
	if err != nil {
		return nil, err
	}
	return WithDistances(records, lat, lng), nil
}
