// Storefinder - Retail Store Locator and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefinder

// Package main provides the storectl command-line tool.
//
// storectl runs the same filters and aggregations as the HTTP API directly
// against the store document, without a running server. Output is JSON by
// default; --human switches to aligned text.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tomtom215/storefinder/internal/config"
	"github.com/tomtom215/storefinder/internal/logging"
	"github.com/tomtom215/storefinder/internal/query"
	"github.com/tomtom215/storefinder/internal/store"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	os.Exit(execute(newRootCmd(), os.Args[1:]))
}

// options holds the persistent flags shared by every command.
type options struct {
	dataPath   string
	configPath string
	human      bool
	verbose    bool
}

// execute runs root with args and returns the process exit code. Errors are
// written to root's error stream in the selected output format.
func execute(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return reportError(root, err)
	}
	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "storectl",
		Short: "Query and export the store catalog",
		Long: `storectl reads the store document used by the Storefinder server and
runs the same filters and aggregations as the HTTP API.

All commands print JSON by default. Use --human for aligned text.
Configuration comes from the same sources as the server: a .env file,
the config file (--config or CONFIG_PATH) and environment variables.
--data overrides STORES_PATH.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logging.Init(logging.Config{
				Level:         level,
				Format:        "console",
				OmitTimestamp: true,
				Output:        cmd.ErrOrStderr(),
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dataPath, "data", "", "Path of the store document (default from config)")
	flags.StringVar(&opts.configPath, "config", "", "Path of a YAML config file")
	flags.BoolVar(&opts.human, "human", false, "Use human-readable output instead of JSON")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		newListCmd(opts),
		newTypesCmd(opts),
		newSummaryCmd(opts),
		newTopCmd(opts),
		newDistributionCmd(opts),
		newMapViewCmd(opts),
		newExportCmd(opts),
		newSeedCmd(opts),
	)
	return root
}

// loadConfig resolves the configuration and applies --data.
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, withExitCode(ExitConfigError, err)
	}
	if o.dataPath != "" {
		cfg.Storage.Path = o.dataPath
	}
	return cfg, nil
}

// repository opens the store document named by the configuration.
func (o *options) repository() (*store.Repository, *config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	repo := store.New(store.Config{Path: cfg.Storage.Path})
	return repo, cfg, nil
}

// engine returns a query engine over the configured store document.
func (o *options) engine() (*query.Engine, *config.Config, error) {
	repo, cfg, err := o.repository()
	if err != nil {
		return nil, nil, err
	}
	return query.NewEngine(repo), cfg, nil
}
