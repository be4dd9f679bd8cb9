// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package preview renders color ramps and font stacks for a terminal.
package preview

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ManuGH/tailcfg/internal/theme"
)

const swatchWidth = 9

// Foreground colors used on top of swatches.
const (
	Dark  theme.HexColor = "#000000"
	Light theme.HexColor = "#ffffff"
)

// Options controls rendering.
type Options struct {
	// ForceColor renders true-color escapes even when w is not a terminal.
	ForceColor bool
	// Palettes limits output to the named palettes; empty means all.
	Palettes []string
}

func renderer(w io.Writer, opts Options) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if opts.ForceColor {
		r.SetColorProfile(termenv.TrueColor)
	}
	return r
}

// Palette writes one block per color ramp: the palette name, a row of
// swatches labelled with their shade and a row with the hex values.
func Palette(w io.Writer, cfg theme.StyleConfig, opts Options) error {
	r := renderer(w, opts)
	title := r.NewStyle().Bold(true)
	cell := r.NewStyle().Width(swatchWidth).Align(lipgloss.Center)

	palettes := cfg.Palettes()
	if len(opts.Palettes) > 0 {
		palettes = opts.Palettes
	}

	var b strings.Builder
	for i, name := range palettes {
		ramp, ok := cfg.Theme.Extend.Colors[name]
		if !ok {
			return fmt.Errorf("unknown palette %q", name)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(title.Render(name))
		b.WriteByte('\n')

		var swatches, codes strings.Builder
		for _, shade := range ramp.Shades() {
			hex := ramp[shade]
			swatches.WriteString(cell.
				Background(lipgloss.Color(hex)).
				Foreground(lipgloss.Color(Contrast(hex))).
				Render(shade.String()))
			codes.WriteString(cell.Render(string(hex)))
		}
		b.WriteString(swatches.String())
		b.WriteByte('\n')
		b.WriteString(codes.String())
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Fonts writes each font role with its CSS font-family value, preferred font first.
func Fonts(w io.Writer, cfg theme.StyleConfig, opts Options) error {
	r := renderer(w, opts)
	roles := cfg.FontRoles()

	width := 0
	for _, role := range roles {
		width = max(width, len(role))
	}
	label := r.NewStyle().Width(width + 2)
	preferred := r.NewStyle().Bold(true)

	var b strings.Builder
	for _, role := range roles {
		stack := cfg.Theme.Extend.FontFamily[role]
		b.WriteString(label.Render(role))
		b.WriteString(preferred.Render(stack.Preferred()))
		if rest := stack.Fallbacks(); len(rest) > 0 {
			b.WriteString(", ")
			b.WriteString(theme.FontStack(rest).CSS())
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Contrast returns the foreground (black or white) with the higher WCAG
// contrast ratio against bg. Invalid colors yield Dark.
func Contrast(bg theme.HexColor) theme.HexColor {
	l, err := Luminance(bg)
	if err != nil {
		return Dark
	}
	if (l+0.05)/0.05 >= 1.05/(l+0.05) {
		return Dark
	}
	return Light
}

// Luminance returns the WCAG relative luminance of c in [0,1].
func Luminance(c theme.HexColor) (float64, error) {
	r, g, b, err := c.RGB()
	if err != nil {
		return 0, err
	}
	return 0.2126*linear(r) + 0.7152*linear(g) + 0.0722*linear(b), nil
}

func linear(v uint8) float64 {
	s := float64(v) / 255
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}
