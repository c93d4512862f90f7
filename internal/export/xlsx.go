// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tomtom215/storefinder/internal/metrics"
	"github.com/tomtom215/storefinder/internal/models"
)

const (
	// SheetName is the worksheet holding the exported stores.
	SheetName = "Stores"

	// XLSXContentType is the media type of WriteXLSX output.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	defaultSheet = "Sheet1"
)

// Headers is the header row of the Stores sheet.
var Headers = []string{"ID", "Name", "Type", "Address", "Latitude", "Longitude", "Rating", "Reviews"}

// WriteXLSX writes records as a single-sheet workbook to w, in the order
// given.
func WriteXLSX(w io.Writer, records []models.StoreRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		row := []interface{}{
			idCell(r.ID), r.Name, r.Type, r.Address,
			r.Lat, r.Lng, r.Rating, r.Reviews,
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}

	f.SetActiveSheet(index)
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	metrics.RecordExport("xlsx")
	return nil
}

// idCell keeps numeric ids numeric so spreadsheets sort them as numbers.
func idCell(id models.StoreID) interface{} {
	if n, ok := id.Int(); ok {
		return n
	}
	return id.String()
}
