// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ManuGH/tailcfg/internal/theme"
)

func newColorCmd(opts *rootOptions) *cobra.Command {
	var rgb bool

	cmd := &cobra.Command{
		Use:   "color <palette> <shade>",
		Short: "Print the color of a palette shade",
		Example: `  tailcfg color traqr 500
  tailcfg color ink 950 --rgb`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			shade, err := theme.ParseShade(args[1])
			if err != nil {
				return err
			}
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}

			hex, ok := cfg.Color(args[0], shade)
			if !ok {
				return fmt.Errorf("unknown color %s.%s (palettes: %s)", args[0], shade, strings.Join(cfg.Palettes(), ", "))
			}
			if !rgb {
				fmt.Fprintln(opts.stdout, hex)
				return nil
			}
			r, g, b, err := hex.RGB()
			if err != nil {
				return err
			}
			fmt.Fprintf(opts.stdout, "rgb(%d %d %d)\n", r, g, b)
			return nil
		},
	}
	cmd.Flags().BoolVar(&rgb, "rgb", false, "print as CSS rgb() instead of hex")
	return cmd
}

func newAnimationCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "animation [name]",
		Short: "Resolve an animation to its shorthand and keyframes",
		Long:  "Without a name, list the configured animations. With a name, print its shorthand,\nthe keyframes it plays and their checkpoints in offset order.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				for _, name := range cfg.AnimationNames() {
					fmt.Fprintf(opts.stdout, "%s\t%s\n", name, cfg.Theme.Extend.Animation[name])
				}
				return nil
			}

			anim, err := cfg.ResolveAnimation(args[0])
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(opts.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "animation:\t%s\n", anim.Name)
			fmt.Fprintf(tw, "shorthand:\t%s\n", anim.Shorthand)
			fmt.Fprintf(tw, "keyframes:\t%s\n", anim.KeyframesName)
			fmt.Fprintf(tw, "duration:\t%s\n", anim.Parsed.Duration)
			if anim.Parsed.TimingFunction != "" {
				fmt.Fprintf(tw, "timing:\t%s\n", anim.Parsed.TimingFunction)
			}
			for _, cp := range anim.Checkpoints {
				decls := make([]string, 0, len(cp.Declarations))
				for _, prop := range cp.Declarations.Properties() {
					decls = append(decls, prop+": "+cp.Declarations[prop])
				}
				fmt.Fprintf(tw, "  %s\t{%s}\n", cp.Selector, strings.Join(decls, "; "))
			}
			return tw.Flush()
		},
	}
}
