// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tomtom215/storefinder/internal/models"
	"github.com/tomtom215/storefinder/internal/query"
)

// MaxBins bounds the rating histogram resolution.
const MaxBins = 50

func newTypesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List distinct store types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := opts.engine()
			if err != nil {
				return err
			}
			types, err := engine.Types(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.human {
				for _, t := range types {
					fmt.Fprintln(out, t)
				}
				return nil
			}
			return outputJSON(out, models.StoreTypes{Types: types, Total: len(types)})
		},
	}
}

// countFlag resolves a positive count flag against the configured default
// and upper bound.
func countFlag(cmd *cobra.Command, name string, value, def, limit int) (int, error) {
	if !cmd.Flags().Changed(name) {
		return def, nil
	}
	if value < 1 {
		return 0, fmt.Errorf("--%s must be at least 1, got %d", name, value)
	}
	if limit > 0 && value > limit {
		return 0, fmt.Errorf("--%s must be at most %d, got %d", name, limit, value)
	}
	return value, nil
}

func newSummaryCmd(opts *options) *cobra.Command {
	var filter filterFlags
	var top int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize the filtered stores",
		Long: `Print counts by type, the average rating, total reviews and the top
rated stores for the filtered selection.

Examples:
  storectl summary
  storectl summary --type books --top 3 --human`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cfg, err := opts.engine()
			if err != nil {
				return err
			}
			n, err := countFlag(cmd, "top", top, cfg.API.DefaultTopN, cfg.API.MaxTopN)
			if err != nil {
				return err
			}
			summary, err := engine.Summary(cmd.Context(), filter.criteria(), n)
			if err != nil {
				return err
			}
			if opts.human {
				return printSummaryHuman(cmd.OutOrStdout(), summary)
			}
			return outputJSON(cmd.OutOrStdout(), summary)
		},
	}
	filter.register(cmd)
	cmd.Flags().IntVar(&top, "top", query.DefaultTopN, "Number of top rated stores")
	return cmd
}

func newTopCmd(opts *options) *cobra.Command {
	var filter filterFlags
	var n int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the highest rated stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cfg, err := opts.engine()
			if err != nil {
				return err
			}
			count, err := countFlag(cmd, "count", n, cfg.API.DefaultTopN, cfg.API.MaxTopN)
			if err != nil {
				return err
			}
			stores, err := engine.TopRated(cmd.Context(), filter.criteria(), count)
			if err != nil {
				return err
			}
			if opts.human {
				return printStoresHuman(cmd.OutOrStdout(), stores)
			}
			return outputJSON(cmd.OutOrStdout(), models.StoreList{Stores: stores, Total: len(stores)})
		},
	}
	filter.register(cmd)
	cmd.Flags().IntVarP(&n, "count", "n", query.DefaultTopN, "Number of stores")
	return cmd
}

func newDistributionCmd(opts *options) *cobra.Command {
	var filter filterFlags
	var bins int

	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Print the rating histogram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := opts.engine()
			if err != nil {
				return err
			}
			count, err := countFlag(cmd, "bins", bins, query.DefaultRatingBins, MaxBins)
			if err != nil {
				return err
			}
			buckets, err := engine.Distribution(cmd.Context(), filter.criteria(), count)
			if err != nil {
				return err
			}
			total := 0
			for _, b := range buckets {
				total += b.Count
			}
			if opts.human {
				return printDistributionHuman(cmd.OutOrStdout(), buckets)
			}
			return outputJSON(cmd.OutOrStdout(), models.RatingDistribution{Buckets: buckets, Total: total})
		},
	}
	filter.register(cmd)
	cmd.Flags().IntVar(&bins, "bins", query.DefaultRatingBins, "Number of bins")
	return cmd
}

func newMapViewCmd(opts *options) *cobra.Command {
	var filter filterFlags

	cmd := &cobra.Command{
		Use:   "map-view",
		Short: "Print the center and bounds of the filtered stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := opts.engine()
			if err != nil {
				return err
			}
			view, err := engine.MapView(cmd.Context(), filter.criteria())
			if err != nil {
				return err
			}
			if opts.human {
				_, err := fmt.Fprintf(cmd.OutOrStdout(),
					"center: %.6f, %.6f\nbounds: %.6f, %.6f .. %.6f, %.6f\nstores: %d\n",
					view.Center.Lat, view.Center.Lng,
					view.Bounds.MinLat, view.Bounds.MinLng, view.Bounds.MaxLat, view.Bounds.MaxLng,
					view.Count)
				return err
			}
			return outputJSON(cmd.OutOrStdout(), view)
		},
	}
	filter.register(cmd)
	return cmd
}

func printSummaryHuman(w io.Writer, s models.AnalyticsSummary) error {
	fmt.Fprintf(w, "Stores:         %d\n", s.TotalCount)
	fmt.Fprintf(w, "Store types:    %d\n", s.StoreTypes)
	fmt.Fprintf(w, "Average rating: %.2f\n", s.AverageRating)
	fmt.Fprintf(w, "Total reviews:  %d\n", s.TotalReviews)

	if len(s.TypeCounts) > 0 {
		fmt.Fprintln(w, "\nBy type:")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, tc := range s.TypeCounts {
			fmt.Fprintf(tw, "  %s\t%d\n", tc.Type, tc.Count)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if len(s.TopRated) > 0 {
		fmt.Fprintln(w, "\nTop rated:")
		for i, r := range s.TopRated {
			fmt.Fprintf(w, "  %d. %s (%.1f, %d reviews)\n", i+1, r.Name, r.Rating, r.Reviews)
		}
	}
	return nil
}

func printDistributionHuman(w io.Writer, buckets []models.RatingBucket) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, b := range buckets {
		fmt.Fprintf(tw, "%.1f-%.1f\t%3d\t%s\n", b.Min, b.Max, b.Count, strings.Repeat("#", b.Count))
	}
	return tw.Flush()
}
