// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ManuGH/tailcfg/internal/validate"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Long:  "Load the configuration with strict parsing and report every validation problem.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := opts.loader()
			if _, err := loader.Load(); err != nil {
				reportLoadError(opts, loader.Source(), err)
				return errReported
			}
			fmt.Fprintf(opts.stdout, "✓ %s is valid\n", loader.Source())
			return nil
		},
	}
}

// reportLoadError writes a load failure to stderr, one line per validation problem.
func reportLoadError(opts *rootOptions, source string, err error) {
	var verr validate.ValidationError
	if !errors.As(err, &verr) {
		fmt.Fprintf(opts.stderr, "Configuration error in %s:\n  %v\n", source, err)
		return
	}
	fmt.Fprintf(opts.stderr, "Validation error in %s:\n", source)
	for _, e := range verr.Errors() {
		fmt.Fprintf(opts.stderr, "  - %s: %s\n", e.Field, e.Message)
	}
}
