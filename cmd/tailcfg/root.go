// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ManuGH/tailcfg/internal/config"
	xglog "github.com/ManuGH/tailcfg/internal/log"
	"github.com/ManuGH/tailcfg/internal/theme"
	"github.com/ManuGH/tailcfg/internal/validate"
	"github.com/ManuGH/tailcfg/internal/version"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	configPath string
	logLevel   string
	logJSON    bool
	noDefaults bool

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "tailcfg",
		Short:         "Inspect and validate the utility-class style configuration",
		Long:          "tailcfg loads the style configuration (content globs, theme extensions, plugins),\nvalidates it and answers lookups against it.",
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := validate.ParseLogLevel(opts.logLevel)
			if err != nil {
				return err
			}
			xglog.Configure(xglog.Config{
				Level:   level.String(),
				Output:  opts.stderr,
				Console: !opts.logJSON,
			})
			cmd.SetContext(xglog.ContextWithSource(cmd.Context(), opts.loader().Source()))
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", config.ParseString(config.EnvConfigPath, ""),
		"path to a YAML, JSON or TOML config file (env "+config.EnvConfigPath+"; default: built-in)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON lines")
	flags.BoolVar(&opts.noDefaults, "no-defaults", false, "do not layer the config file over the built-in configuration")

	root.AddCommand(
		newValidateCmd(opts),
		newColorCmd(opts),
		newAnimationCmd(opts),
		newFilesCmd(opts),
		newExportCmd(opts),
		newPreviewCmd(opts),
		newWatchCmd(opts),
	)
	return root
}

func (o *rootOptions) loader() *config.Loader {
	var lopts []config.LoaderOption
	if o.noDefaults {
		lopts = append(lopts, config.WithoutDefaults())
	}
	return config.NewLoader(o.configPath, lopts...)
}

// load returns the effective configuration or a load error.
func (o *rootOptions) load() (theme.StyleConfig, *config.Loader, error) {
	loader := o.loader()
	cfg, err := loader.Load()
	if err != nil {
		return theme.StyleConfig{}, loader, fmt.Errorf("%s: %w", loader.Source(), err)
	}
	return cfg, loader, nil
}
