// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package query

import (
	"math"
	"sort"

	"github.com/tomtom215/storefinder/internal/models"
)

// DefaultTopN is the number of top-rated stores included in a summary when
// the caller does not ask for a specific count.
const DefaultTopN = 5

// DefaultRatingBins is the histogram resolution used when bins <= 0.
const DefaultRatingBins = 10

// MaxRating is the upper end of the rating scale.
const MaxRating = 5.0

// Summarize computes aggregate statistics over records. An empty collection
// yields zero counts, an average rating of 0 and no top-rated stores.
func Summarize(records []models.StoreRecord, topN int) models.AnalyticsSummary {
	counts := make(map[string]int)
	var ratingSum float64
	var reviews int64

	for _, r := range records {
		counts[r.Type]++
		ratingSum += r.Rating
		reviews += r.Reviews
	}

	var avg float64
	if len(records) > 0 {
		avg = ratingSum / float64(len(records))
	}

	return models.AnalyticsSummary{
		TotalCount:    len(records),
		CountsByType:  counts,
		TypeCounts:    sortedTypeCounts(counts),
		StoreTypes:    len(counts),
		AverageRating: avg,
		TotalReviews:  reviews,
		TopRated:      TopRated(records, topN),
	}
}

func sortedTypeCounts(counts map[string]int) []models.TypeCount {
	out := make([]models.TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, models.TypeCount{Type: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// TopRated returns at most n records ordered by rating (highest first), then
// by review count (highest first), then by position in records. n <= 0
// yields an empty slice. The input is not modified.
func TopRated(records []models.StoreRecord, n int) []models.StoreRecord {
	if n <= 0 || len(records) == 0 {
		return []models.StoreRecord{}
	}

	ranked := make([]models.StoreRecord, len(records))
	copy(ranked, records)

	// Stable sort keeps collection order for full ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].Reviews > ranked[j].Reviews
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n:n]
}

// StoreTypes returns the distinct store types in ascending order.
func StoreTypes(records []models.StoreRecord) []string {
	seen := make(map[string]struct{})
	types := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Type]; ok {
			continue
		}
		seen[r.Type] = struct{}{}
		types = append(types, r.Type)
	}
	sort.Strings(types)
	return types
}

// RatingDistribution buckets ratings into equal-width bins over [0, MaxRating].
// Ratings outside the scale are counted in the first or last bucket so the
// bucket counts always add up to len(records).
func RatingDistribution(records []models.StoreRecord, bins int) []models.RatingBucket {
	if bins <= 0 {
		bins = DefaultRatingBins
	}
	width := MaxRating / float64(bins)

	buckets := make([]models.RatingBucket, bins)
	for i := range buckets {
		buckets[i] = models.RatingBucket{
			Min: roundTo(float64(i)*width, 4),
			Max: roundTo(float64(i+1)*width, 4),
		}
	}

	for _, r := range records {
		pos := r.Rating / width
		var idx int
		switch {
		case math.IsNaN(pos) || pos < 0:
			idx = 0
		case pos >= float64(bins):
			idx = bins - 1
		default:
			// Rounded so a rating on a bucket edge is not pushed below it.
			idx = min(int(math.Floor(roundTo(pos, 9))), bins-1)
		}
		buckets[idx].Count++
	}
	return buckets
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
