// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package theme

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrInvalidShade classifies shade steps that are not positive integers.
	ErrInvalidShade = errors.New("invalid shade")
	// ErrInvalidHexColor classifies color values that are not #rrggbb.
	ErrInvalidHexColor = errors.New("invalid hex color")
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// StyleConfig is the configuration object read by the utility-class generator.
// Field tags mirror the generator's native layout (content, theme.extend, plugins).
type StyleConfig struct {
	Content []string `yaml:"content" json:"content" toml:"content"`
	Theme   Theme    `yaml:"theme" json:"theme" toml:"theme"`
	Plugins []string `yaml:"plugins" json:"plugins" toml:"plugins"`
}

// Theme wraps the extension block; tokens here are added to the generator's defaults.
type Theme struct {
	Extend Extension `yaml:"extend" json:"extend" toml:"extend"`
}

// Extension holds the design tokens layered on top of the default theme.
type Extension struct {
	FontFamily map[string]FontStack `yaml:"fontFamily,omitempty" json:"fontFamily,omitempty" toml:"fontFamily,omitempty"`
	Colors     map[string]ColorRamp `yaml:"colors,omitempty" json:"colors,omitempty" toml:"colors,omitempty"`
	Animation  map[string]string    `yaml:"animation,omitempty" json:"animation,omitempty" toml:"animation,omitempty"`
	Keyframes  map[string]Keyframes `yaml:"keyframes,omitempty" json:"keyframes,omitempty" toml:"keyframes,omitempty"`
}

// FontStack is an ordered fallback list. The first entry is the preferred font.
type FontStack []string

// Preferred returns the first font of the stack, or "" for an empty stack.
func (f FontStack) Preferred() string {
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// Fallbacks returns the fonts after the preferred one, in priority order.
func (f FontStack) Fallbacks() []string {
	if len(f) < 2 {
		return nil
	}
	return slices.Clone(f[1:])
}

var genericFontFamilies = map[string]struct{}{
	"serif": {}, "sans-serif": {}, "monospace": {}, "cursive": {}, "fantasy": {},
	"system-ui": {}, "ui-serif": {}, "ui-sans-serif": {}, "ui-monospace": {},
	"ui-rounded": {}, "emoji": {}, "math": {}, "fangsong": {},
}

// CSS renders the stack as a font-family value. Names containing spaces are quoted.
func (f FontStack) CSS() string {
	parts := make([]string, 0, len(f))
	for _, name := range f {
		name = strings.TrimSpace(name)
		if _, generic := genericFontFamilies[strings.ToLower(name)]; !generic && strings.ContainsAny(name, " \t") {
			name = strconv.Quote(name)
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}

// Shade is a lightness step of a color ramp, conventionally 50 (lightest) to 950 (darkest).
type Shade int

// ParseShade parses a decimal shade step.
func ParseShade(s string) (Shade, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidShade, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d must be positive", ErrInvalidShade, n)
	}
	return Shade(n), nil
}

// String returns the decimal form of the shade.
func (s Shade) String() string {
	return strconv.Itoa(int(s))
}

// MarshalText encodes the shade as a map key.
func (s Shade) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a map key. Range checks are left to validation.
func (s *Shade) UnmarshalText(text []byte) error {
	n, err := strconv.Atoi(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidShade, string(text))
	}
	*s = Shade(n)
	return nil
}

// HexColor is a six digit hexadecimal color such as "#22c55e".
type HexColor string

// ParseHexColor checks s and returns it as a HexColor.
func ParseHexColor(s string) (HexColor, error) {
	c := HexColor(strings.TrimSpace(s))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}
	return c, nil
}

// Valid reports whether the color is well-formed.
func (c HexColor) Valid() bool {
	return hexColorPattern.MatchString(string(c))
}

// RGB returns the color channels. The color must be valid.
func (c HexColor) RGB() (r, g, b uint8, err error) {
	if !c.Valid() {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHexColor, string(c))
	}
	v, err := strconv.ParseUint(string(c[1:]), 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidHexColor, string(c))
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// ColorRamp maps shade steps to colors of a single hue.
type ColorRamp map[Shade]HexColor

// Shades returns the ramp's steps in ascending order.
func (r ColorRamp) Shades() []Shade {
	shades := make([]Shade, 0, len(r))
	for s := range r {
		shades = append(shades, s)
	}
	slices.Sort(shades)
	return shades
}

// Declarations maps CSS properties to values within one keyframe checkpoint.
type Declarations map[string]string

// Properties returns the declared property names in lexical order.
func (d Declarations) Properties() []string {
	props := make([]string, 0, len(d))
	for p := range d {
		props = append(props, p)
	}
	slices.Sort(props)
	return props
}

// Keyframes maps checkpoint selectors ("0%", "100%", "from", "to") to declarations.
type Keyframes map[string]Declarations
