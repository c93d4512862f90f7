// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/storefinder/internal/store"
)

func newSeedCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the sample store collection",
		Long: `Write the five sample stores to the store document.

An existing document is left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := opts.repository()
			if err != nil {
				return err
			}

			_, statErr := os.Stat(repo.Path())
			switch {
			case statErr == nil && !force:
				return fmt.Errorf("%s already exists (use --force to overwrite)", repo.Path())
			case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
				return withExitCode(ExitDataError, fmt.Errorf("stat %s: %w", repo.Path(), statErr))
			}

			sample := store.SampleStores()
			if err := repo.Save(cmd.Context(), sample); err != nil {
				return err
			}
			if opts.human {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d sample stores to %s\n", len(sample), repo.Path())
				return err
			}
			return outputJSON(cmd.OutOrStdout(), StatusResponse{Status: "seeded", Path: repo.Path(), Records: len(sample)})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing store document")
	return cmd
}
