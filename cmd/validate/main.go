// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// validate is a CLI tool to validate tailcfg style configuration files.
//
// Usage:
//
//	validate -f style.yaml
//	validate --file style.json
//
// Exit codes:
//   - 0: Configuration is valid
//   - 1: Configuration is invalid (parse or validation error)
//   - 2: Usage error (missing required flag)
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ManuGH/tailcfg/internal/config"
	"github.com/ManuGH/tailcfg/internal/validate"
	"github.com/ManuGH/tailcfg/internal/version"
)

func main() {
	var file string
	var showVersion bool
	var standalone bool

	flag.StringVar(&file, "file", "", "path to YAML, JSON or TOML configuration file")
	flag.StringVar(&file, "f", "", "path to configuration file (shorthand)")
	flag.BoolVar(&standalone, "standalone", false, "validate the file without layering it over the built-in configuration")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		os.Exit(0)
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  validate -f style.yaml")
		fmt.Fprintln(os.Stderr, "  validate --file style.json")
		os.Exit(2)
	}

	var opts []config.LoaderOption
	if standalone {
		opts = append(opts, config.WithoutDefaults())
	}

	// Load configuration (strict parsing + validation)
	loader := config.NewLoader(file, opts...)
	if _, err := loader.Load(); err != nil {
		var verr validate.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Validation error in %s:\n", file)
			for _, e := range verr.Errors() {
				fmt.Fprintf(os.Stderr, "  - %s: %s\n", e.Field, e.Message)
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Configuration error in %s:\n", file)
		fmt.Fprintf(os.Stderr, "  %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ %s is valid\n", file)
}
