// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/xuri/excelize/v2"

	"github.com/tomtom215/storefinder/internal/metrics"
	"github.com/tomtom215/storefinder/internal/models"
)

func exportRecords() []models.StoreRecord {
	return []models.StoreRecord{
		{ID: "1", Name: "Fresh Market", Type: "grocery", Address: "123 Main St, New York, NY", Lat: 40.7128, Lng: -74.0060, Rating: 4.5, Reviews: 120},
		{ID: "shop-x", Name: "Book Nook", Type: "books", Address: "456 Book Lane, New York, NY", Lat: 40.7138, Lng: -74.0070, Rating: 4.8, Reviews: 85},
	}
}

func readWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	before := testutil.ToFloat64(metrics.ExportsTotal.WithLabelValues("xlsx"))

	if err := WriteXLSX(&buf, exportRecords()); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	f := readWorkbook(t, buf.Bytes())

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != SheetName {
		t.Errorf("sheets = %v, want [%s]", sheets, SheetName)
	}

	rows, err := f.GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(Headers, ",") {
		t.Errorf("header = %v, want %v", rows[0], Headers)
	}

	want := [][]string{
		{"1", "Fresh Market", "grocery", "123 Main St, New York, NY", "40.7128", "-74.006", "4.5", "120"},
		{"shop-x", "Book Nook", "books", "456 Book Lane, New York, NY", "40.7138", "-74.007", "4.8", "85"},
	}
	for i, row := range want {
		if strings.Join(rows[i+1], "|") != strings.Join(row, "|") {
			t.Errorf("row %d = %v, want %v", i+1, rows[i+1], row)
		}
	}

	if got := testutil.ToFloat64(metrics.ExportsTotal.WithLabelValues("xlsx")); got != before+1 {
		t.Errorf("xlsx exports = %v, want %v", got, before+1)
	}
}

func TestWriteXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, nil); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	rows, err := readWorkbook(t, buf.Bytes()).GetRows(SheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}

func TestGeoJSON(t *testing.T) {
	fc := GeoJSON(exportRecords())

	if fc.Type != "FeatureCollection" {
		t.Errorf("Type = %q", fc.Type)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("got %d features, want 2", len(fc.Features))
	}

	first := fc.Features[0]
	if first.Type != "Feature" || first.Geometry.Type != "Point" {
		t.Errorf("feature = %+v", first)
	}
	if first.Geometry.Coordinates != [2]float64{-74.0060, 40.7128} {
		t.Errorf("Coordinates = %v, want [lng, lat]", first.Geometry.Coordinates)
	}
	if first.Properties.Name != "Fresh Market" || first.Properties.Reviews != 120 {
		t.Errorf("Properties = %+v", first.Properties)
	}
}

func TestGeoJSONEncoding(t *testing.T) {
	data, err := json.Marshal(GeoJSON(exportRecords()[:1]))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[-74.006,40.7128]},` +
		`"properties":{"id":1,"name":"Fresh Market","type":"grocery","address":"123 Main St, New York, NY","rating":4.5,"reviews":120}}]}`
	if string(data) != want {
		t.Errorf("GeoJSON =\n%s\nwant\n%s", data, want)
	}
}

func TestGeoJSONEmpty(t *testing.T) {
	data, err := json.Marshal(GeoJSON(nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"type":"FeatureCollection","features":[]}` {
		t.Errorf("empty GeoJSON = %s", data)
	}
}
