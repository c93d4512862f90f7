// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package store

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/storefinder/internal/models"
)

// storedRecord is the on-disk shape of a record. Producers disagree on the
// longitude key, so both are decoded and folded into models.StoreRecord.Lng.
type storedRecord struct {
	ID      models.StoreID `json:"id"`
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	Address string         `json:"address"`
	Lat     float64        `json:"lat"`
	Lng     *float64       `json:"lng"`
	Lon     *float64       `json:"lon"`
	Rating  float64        `json:"rating"`
	Reviews json.Number    `json:"reviews"`
}

// storedDocument is the decoding target for the object form of the document.
type storedDocument struct {
	Stores *[]storedRecord `json:"stores"`
}

// savedDocument is what Save writes. Longitude is always written as "lng".
type savedDocument struct {
	Stores []models.StoreRecord `json:"stores"`
}

// decodeDocument parses a store document into a normalized collection.
//
// Accepted shapes are {"stores": [...]} and, for files written by early
// producers, a bare top-level array. Every record must carry a name and a
// type. Numeric ranges are not checked.
func decodeDocument(data []byte) ([]models.StoreRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}

	var stored []storedRecord
	switch data[0] {
	case '{':
		var doc storedDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing store document: %w", err)
		}
		if doc.Stores == nil {
			return nil, fmt.Errorf("%w: missing \"stores\" array", ErrMalformedDocument)
		}
		stored = *doc.Stores
	case '[':
		if err := json.Unmarshal(data, &stored); err != nil {
			return nil, fmt.Errorf("parsing store document: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: expected an object or an array", ErrMalformedDocument)
	}

	records := make([]models.StoreRecord, 0, len(stored))
	for i, s := range stored {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: record %d has no name", ErrMalformedDocument, i)
		}
		if s.Type == "" {
			return nil, fmt.Errorf("%w: record %d (%s) has no type", ErrMalformedDocument, i, s.Name)
		}
		reviews, err := parseReviews(s.Reviews)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d (%s): %v", ErrMalformedDocument, i, s.Name, err)
		}

		records = append(records, models.StoreRecord{
			ID:      s.ID,
			Name:    s.Name,
			Type:    s.Type,
			Address: s.Address,
			Lat:     s.Lat,
			Lng:     canonicalLongitude(s.Lng, s.Lon),
			Rating:  s.Rating,
			Reviews: reviews,
		})
	}

	assignMissingIDs(records)
	return records, nil
}

// canonicalLongitude prefers "lng" and falls back to "lon".
func canonicalLongitude(lng, lon *float64) float64 {
	switch {
	case lng != nil:
		return *lng
	case lon != nil:
		return *lon
	default:
		return 0
	}
}

// parseReviews accepts integral and fractional counts (dataframe exports
// sometimes write 120.0); fractions are truncated.
func parseReviews(n json.Number) (int64, error) {
	if n == "" {
		return 0, nil
	}
	if v, err := n.Int64(); err == nil {
		return v, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("invalid reviews value %q", n.String())
	}
	return int64(f), nil
}

// assignMissingIDs gives every record without an id the next integer above
// the largest integer id in the collection, in collection order.
func assignMissingIDs(records []models.StoreRecord) {
	var next int64
	for _, r := range records {
		if n, ok := r.ID.Int(); ok && n > next {
			next = n
		}
	}
	for i := range records {
		if records[i].ID.IsZero() {
			next++
			records[i].ID = models.StoreIDFromInt(next)
		}
	}
}

// encodeDocument renders the collection in the canonical object form.
func encodeDocument(records []models.StoreRecord) ([]byte, error) {
	if records == nil {
		records = []models.StoreRecord{}
	}
	data, err := json.MarshalIndent(savedDocument{Stores: records}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding store document: %w", err)
	}
	return append(data, '\n'), nil
}
