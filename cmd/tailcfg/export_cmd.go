// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ManuGH/tailcfg/internal/config"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the effective configuration",
		Long:  "Serialize the effective configuration (defaults, file and environment merged) to stdout,\nor atomically to a file with --out.",
		Example: `  tailcfg export --format json
  tailcfg export -c style.yaml --out style.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}

			if out != "" {
				if format == "" {
					return config.Save(cmd.Context(), out, cfg)
				}
				f, err := config.ParseFormat(format)
				if err != nil {
					return err
				}
				return config.SaveAs(cmd.Context(), out, cfg, f)
			}

			if format == "" {
				format = string(config.FormatYAML)
			}
			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg, f)
			if err != nil {
				return err
			}
			_, err = opts.stdout.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout (format from extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: "+strings.Join(config.Formats(), ", "))
	return cmd
}
