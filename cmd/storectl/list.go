// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tomtom215/storefinder/internal/models"
	"github.com/tomtom215/storefinder/internal/query"
)

// filterFlags are shared by every command that narrows the collection.
type filterFlags struct {
	storeType string
	search    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.storeType, "type", "t", "", "Store type, or 'all'")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Case-insensitive substring of name or address")
}

func (f *filterFlags) criteria() query.Criteria {
	return query.Criteria{Type: f.storeType, Search: f.search}
}

func newListCmd(opts *options) *cobra.Command {
	var filter filterFlags
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stores",
		Long: `List stores matching the type and search filters.

With --lat and --lng every store also carries distance_km from that point.

Examples:
  storectl list
  storectl list --type grocery --search central
  storectl list --lat 40.7128 --lng -74.0060 --human`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := opts.engine()
			if err != nil {
				return err
			}
			hasLat, hasLng := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lng")
			if hasLat != hasLng {
				return errors.New("--lat and --lng must be given together")
			}

			out := cmd.OutOrStdout()
			if hasLat {
				if err := checkCoordinate(lat, lng); err != nil {
					return err
				}
				stores, err := engine.Nearby(cmd.Context(), filter.criteria(), lat, lng)
				if err != nil {
					return err
				}
				if opts.human {
					return printDistancesHuman(out, stores)
				}
				return outputJSON(out, models.StoreDistanceList{
					Stores: stores,
					Total:  len(stores),
					Origin: models.LatLng{Lat: lat, Lng: lng},
				})
			}

			stores, err := engine.Stores(cmd.Context(), filter.criteria())
			if err != nil {
				return err
			}
			if opts.human {
				return printStoresHuman(out, stores)
			}
			return outputJSON(out, models.StoreList{Stores: stores, Total: len(stores)})
		},
	}
	filter.register(cmd)
	cmd.Flags().Float64Var(&lat, "lat", 0, "Reference latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Reference longitude")
	return cmd
}

func checkCoordinate(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("--lat must be between -90 and 90, got %v", lat)
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return fmt.Errorf("--lng must be between -180 and 180, got %v", lng)
	}
	return nil
}

func printStoresHuman(w io.Writer, stores []models.StoreRecord) error {
	if len(stores) == 0 {
		_, err := fmt.Fprintln(w, "No stores match")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tRATING\tREVIEWS\tADDRESS")
	for _, s := range stores {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%d\t%s\n", s.ID, s.Name, s.Type, s.Rating, s.Reviews, s.Address)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d stores\n", len(stores))
	return err
}

func printDistancesHuman(w io.Writer, stores []models.StoreDistance) error {
	if len(stores) == 0 {
		_, err := fmt.Fprintln(w, "No stores match")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tRATING\tDISTANCE")
	for _, s := range stores {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%.3f km\n", s.ID, s.Name, s.Type, s.Rating, s.DistanceKM)
	}
	return tw.Flush()
}
