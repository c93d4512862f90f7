// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package query

import (
	"strings"

	"github.com/tomtom215/storefinder/internal/models"
)

// TypeAll is the type filter sentinel meaning "no type restriction".
const TypeAll = "all"

// Criteria is a filter request. The zero value matches every record.
type Criteria struct {
	// Type is TypeAll, empty, or a store type matched case-insensitively.
	Type string

	// Search is matched case-insensitively as a substring of name or address.
	Search string
}

// Filter returns the records whose type matches typeFilter and whose name or
// address contains searchText. Both comparisons ignore case; the two
// conditions are AND-combined. The result keeps input order and is a non-nil
// empty slice when nothing matches. The input is not modified.
func Filter(records []models.StoreRecord, typeFilter, searchText string) []models.StoreRecord {
	wantType := normalizeType(typeFilter)
	needle := strings.ToLower(searchText)

	out := make([]models.StoreRecord, 0, len(records))
	for _, r := range records {
		if wantType != "" && strings.ToLower(r.Type) != wantType {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Name), needle) &&
			!strings.Contains(strings.ToLower(r.Address), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Apply is Filter driven by Criteria.
func (c Criteria) Apply(records []models.StoreRecord) []models.StoreRecord {
	return Filter(records, c.Type, c.Search)
}

// normalizeType lowercases the type filter and maps the "all" sentinel to "".
func normalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == TypeAll {
		return ""
	}
	return t
}
