// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ManuGH/tailcfg/internal/preview"
	"github.com/ManuGH/tailcfg/internal/validate"
)

func newPreviewCmd(opts *rootOptions) *cobra.Command {
	var (
		popts     preview.Options
		skipFonts bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render color ramps and font stacks in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}

			v := validate.New()
			for _, p := range popts.Palettes {
				v.OneOf("--palette", p, cfg.Palettes())
			}
			if err := v.Err(); err != nil {
				return err
			}

			if err := preview.Palette(opts.stdout, cfg, popts); err != nil {
				return err
			}
			if skipFonts {
				return nil
			}
			if _, err := opts.stdout.Write([]byte("\n")); err != nil {
				return err
			}
			return preview.Fonts(opts.stdout, cfg, popts)
		},
	}

	cmd.Flags().BoolVar(&popts.ForceColor, "color", false, "force true-color output")
	cmd.Flags().StringSliceVarP(&popts.Palettes, "palette", "p", nil, "only render these palettes")
	cmd.Flags().BoolVar(&skipFonts, "no-fonts", false, "skip font stacks")
	return cmd
}
