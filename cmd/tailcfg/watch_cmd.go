// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ManuGH/tailcfg/internal/config"
	"github.com/ManuGH/tailcfg/internal/theme"
)

// ErrNoConfigFile is returned by watch when only the built-in configuration is in use.
var ErrNoConfigFile = errors.New("watch requires --config")

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload the configuration on change and report what changed",
		Long:  "Watch the config file, re-validate it on every change and print the changed\ntoken paths. Invalid edits are reported and the last valid configuration is kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath == "" {
				return ErrNoConfigFile
			}
			cfg, loader, err := opts.load()
			if err != nil {
				return err
			}

			holder := config.NewHolder(cfg, loader)
			updates := make(chan theme.StyleConfig, 1)
			holder.RegisterListener(updates)

			g, ctx := errgroup.WithContext(cmd.Context())
			if err := holder.StartWatcher(ctx); err != nil {
				return err
			}
			defer holder.Stop()

			fmt.Fprintf(opts.stdout, "watching %s (ctrl-c to stop)\n", loader.Source())

			g.Go(func() error {
				current := cfg
				for {
					select {
					case <-ctx.Done():
						return nil
					case next := <-updates:
						summary := config.Diff(current, next)
						current = next
						fmt.Fprintf(opts.stdout, "reloaded: %d change(s)\n", len(summary.ChangedFields))
						for _, field := range summary.ChangedFields {
							fmt.Fprintf(opts.stdout, "  ~ %s\n", field)
						}
					}
				}
			})
			return g.Wait()
		},
	}
}
