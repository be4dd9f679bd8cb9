// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ManuGH/tailcfg/internal/content"
	"github.com/ManuGH/tailcfg/internal/validate"
)

func newFilesCmd(opts *rootOptions) *cobra.Command {
	var (
		root  string
		match string
		count bool
	)

	cmd := &cobra.Command{
		Use:   "files",
		Short: "List the files covered by the content globs",
		Example: `  tailcfg files --root .
  tailcfg files --match web/public/index.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}

			if match != "" {
				ok, err := content.Match(cfg.Content, match)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(opts.stderr, "%s is not covered by content globs\n", match)
					return errReported
				}
				fmt.Fprintf(opts.stdout, "%s is covered\n", match)
				return nil
			}

			v := validate.New()
			v.Directory("--root", root)
			if err := v.Err(); err != nil {
				return err
			}

			res, err := content.Resolve(cmd.Context(), root, cfg.Content)
			if err != nil {
				return err
			}
			for _, glob := range res.Empty() {
				fmt.Fprintf(opts.stderr, "warning: %s matched no files\n", glob)
			}
			for _, f := range res.Skipped {
				fmt.Fprintf(opts.stderr, "warning: %s resolves outside %s, skipped\n", f, root)
			}
			if count {
				for _, g := range res.Globs {
					fmt.Fprintf(opts.stdout, "%6d  %s\n", g.Count, g.Glob)
				}
				fmt.Fprintf(opts.stdout, "%6d  total (unique)\n", len(res.Files))
				return nil
			}
			for _, f := range res.Files {
				fmt.Fprintln(opts.stdout, f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "project root the globs are relative to")
	cmd.Flags().StringVar(&match, "match", "", "report whether this relative path is covered instead of listing files")
	cmd.Flags().BoolVar(&count, "count", false, "print per-glob match counts")
	return cmd
}
