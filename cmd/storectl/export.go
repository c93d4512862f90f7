// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/storefinder/internal/export"
	"github.com/tomtom215/storefinder/internal/models"
)

// Export formats.
const (
	FormatGeoJSON = "geojson"
	FormatXLSX    = "xlsx"
)

// exportFormat picks the format from --format, then from the extension of
// --out, defaulting to GeoJSON.
func exportFormat(format, out string) (string, error) {
	switch strings.ToLower(format) {
	case FormatGeoJSON, "json":
		return FormatGeoJSON, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	case "":
	default:
		return "", fmt.Errorf("unknown export format %q (want %s or %s)", format, FormatGeoJSON, FormatXLSX)
	}
	if strings.EqualFold(filepath.Ext(out), ".xlsx") {
		return FormatXLSX, nil
	}
	return FormatGeoJSON, nil
}

func newExportCmd(opts *options) *cobra.Command {
	var filter filterFlags
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered stores as GeoJSON or XLSX",
		Long: `Export the filtered stores.

The format is taken from --format, or from the extension of --out
(.xlsx selects Excel). Without --out the export is written to stdout.

Examples:
  storectl export --out stores.geojson
  storectl export --type grocery --out grocery.xlsx
  storectl export --format xlsx > stores.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := exportFormat(format, out)
			if err != nil {
				return err
			}
			engine, _, err := opts.engine()
			if err != nil {
				return err
			}
			stores, err := engine.Stores(cmd.Context(), filter.criteria())
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				return writeExport(cmd.OutOrStdout(), f, stores)
			}
			if err := writeExportFile(out, f, stores); err != nil {
				return err
			}
			if opts.human {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Exported %d stores to %s\n", len(stores), out)
				return err
			}
			return outputJSON(cmd.OutOrStdout(), StatusResponse{Status: "exported", Path: out, Records: len(stores)})
		},
	}
	filter.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "Export format: geojson or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func writeExport(w io.Writer, format string, stores []models.StoreRecord) error {
	if format == FormatXLSX {
		return export.WriteXLSX(w, stores)
	}
	return outputJSON(w, export.GeoJSON(stores))
}

func writeExportFile(path, format string, stores []models.StoreRecord) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", cerr)
		}
	}()
	return writeExport(f, format, stores)
}
