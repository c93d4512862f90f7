// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/storefinder/internal/store"
)

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// StatusResponse is the response for commands that only report a status.
type StatusResponse struct {
	Status  string `json:"status"`
	Path    string `json:"path,omitempty"`
	Records int    `json:"records,omitempty"`
}

// exitError carries the exit code for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// exitCodeFor maps err to a process exit code.
func exitCodeFor(err error) int {
	var ee *exitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ee):
		return ee.code
	case errors.Is(err, store.ErrDataLoad), errors.Is(err, store.ErrDataWrite):
		return ExitDataError
	default:
		return ExitError
	}
}

// reportError writes err in the selected format and returns its exit code.
// JSON errors go to stdout so callers parsing output see them; human errors
// go to stderr.
func reportError(root *cobra.Command, err error) int {
	code := exitCodeFor(err)
	human, _ := root.PersistentFlags().GetBool("human")
	if human {
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
	} else {
		_ = outputJSON(root.OutOrStdout(), ErrorResponse{Error: err.Error(), Code: code})
	}
	return code
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
