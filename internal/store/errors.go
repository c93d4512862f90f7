// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below via errors.Is.
var (
	// ErrDataLoad matches every *DataLoadError.
	ErrDataLoad = errors.New("store data could not be loaded")

	// ErrDataWrite matches every *DataWriteError.
	ErrDataWrite = errors.New("store data could not be written")

	// ErrMalformedDocument is wrapped by a DataLoadError when the document
	// parses but does not have the expected shape.
	ErrMalformedDocument = errors.New("malformed store document")
)

// DataLoadError reports that the store document exists but could not be read
// or parsed into a record collection. It is never raised for a missing file;
// a missing file triggers first-run seeding instead.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load store data from %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDataLoad.
func (e *DataLoadError) Is(target error) bool { return target == ErrDataLoad }

// DataWriteError reports that the store document could not be written
// (permissions, disk full, unencodable values). It is not retried.
type DataWriteError struct {
	Path string
	Err  error
}

func (e *DataWriteError) Error() string {
	return fmt.Sprintf("write store data to %s: %v", e.Path, e.Err)
}

func (e *DataWriteError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDataWrite.
func (e *DataWriteError) Is(target error) bool { return target == ErrDataWrite }
