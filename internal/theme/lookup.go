// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package theme

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ManuGH/tailcfg/internal/cssvalue"
)

var (
	// ErrUnknownAnimation is returned when no animation has the requested name.
	ErrUnknownAnimation = errors.New("unknown animation")
	// ErrUnknownKeyframes is returned when an animation references missing keyframes.
	ErrUnknownKeyframes = errors.New("unknown keyframes")
)

// Checkpoint is one keyframe selector with its resolved offset.
type Checkpoint struct {
	Selector     string
	Offset       float64 // percent, 0..100
	Declarations Declarations
}

// ResolvedAnimation joins an animation's shorthand with the keyframes it plays.
type ResolvedAnimation struct {
	Name          string
	Shorthand     string
	KeyframesName string
	Parsed        cssvalue.Animation
	Checkpoints   []Checkpoint
}

// Color returns the color of palette at shade.
func (c StyleConfig) Color(palette string, shade Shade) (HexColor, bool) {
	ramp, ok := c.Theme.Extend.Colors[palette]
	if !ok {
		return "", false
	}
	hex, ok := ramp[shade]
	return hex, ok
}

// Font returns the font stack registered for role.
func (c StyleConfig) Font(role string) (FontStack, bool) {
	stack, ok := c.Theme.Extend.FontFamily[role]
	return stack, ok
}

// Palettes returns the configured palette names in lexical order.
func (c StyleConfig) Palettes() []string {
	return slices.Sorted(maps.Keys(c.Theme.Extend.Colors))
}

// FontRoles returns the configured font roles in lexical order.
func (c StyleConfig) FontRoles() []string {
	return slices.Sorted(maps.Keys(c.Theme.Extend.FontFamily))
}

// AnimationNames returns the configured animation names in lexical order.
func (c StyleConfig) AnimationNames() []string {
	return slices.Sorted(maps.Keys(c.Theme.Extend.Animation))
}

// ResolveAnimation returns the shorthand of the named animation together with
// the ordered checkpoints of the keyframes it references.
func (c StyleConfig) ResolveAnimation(name string) (ResolvedAnimation, error) {
	shorthand, ok := c.Theme.Extend.Animation[name]
	if !ok {
		return ResolvedAnimation{}, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}

	parsed, err := cssvalue.ParseAnimation(shorthand)
	if err != nil {
		return ResolvedAnimation{}, fmt.Errorf("animation %q: %w", name, err)
	}

	frames, ok := c.Theme.Extend.Keyframes[parsed.Name]
	if !ok {
		return ResolvedAnimation{}, fmt.Errorf("animation %q: %w: %q", name, ErrUnknownKeyframes, parsed.Name)
	}

	checkpoints, err := frames.Checkpoints()
	if err != nil {
		return ResolvedAnimation{}, fmt.Errorf("keyframes %q: %w", parsed.Name, err)
	}

	return ResolvedAnimation{
		Name:          name,
		Shorthand:     shorthand,
		KeyframesName: parsed.Name,
		Parsed:        parsed,
		Checkpoints:   checkpoints,
	}, nil
}

// KeyframesReferences maps each keyframes name to the animations that play it.
// Shorthands that do not parse are skipped; validation reports them.
func (c StyleConfig) KeyframesReferences() map[string][]string {
	refs := make(map[string][]string)
	for _, name := range c.AnimationNames() {
		a, err := cssvalue.ParseAnimation(c.Theme.Extend.Animation[name])
		if err != nil {
			continue
		}
		refs[a.Name] = append(refs[a.Name], name)
	}
	return refs
}

// Checkpoints returns the keyframe checkpoints ordered by offset.
func (k Keyframes) Checkpoints() ([]Checkpoint, error) {
	out := make([]Checkpoint, 0, len(k))
	for sel, decls := range k {
		offset, err := cssvalue.CheckpointOffset(sel)
		if err != nil {
			return nil, err
		}
		out = append(out, Checkpoint{Selector: sel, Offset: offset, Declarations: decls})
	}
	slices.SortFunc(out, func(a, b Checkpoint) int {
		if a.Offset != b.Offset {
			if a.Offset < b.Offset {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Selector, b.Selector)
	})
	return out, nil
}

// Clone returns a deep copy of the configuration.
func (c StyleConfig) Clone() StyleConfig {
	out := StyleConfig{
		Content: slices.Clone(c.Content),
		Plugins: slices.Clone(c.Plugins),
	}
	ext := c.Theme.Extend
	if ext.FontFamily != nil {
		out.Theme.Extend.FontFamily = make(map[string]FontStack, len(ext.FontFamily))
		for role, stack := range ext.FontFamily {
			out.Theme.Extend.FontFamily[role] = slices.Clone(stack)
		}
	}
	if ext.Colors != nil {
		out.Theme.Extend.Colors = make(map[string]ColorRamp, len(ext.Colors))
		for name, ramp := range ext.Colors {
			out.Theme.Extend.Colors[name] = maps.Clone(ramp)
		}
	}
	out.Theme.Extend.Animation = maps.Clone(ext.Animation)
	if ext.Keyframes != nil {
		out.Theme.Extend.Keyframes = make(map[string]Keyframes, len(ext.Keyframes))
		for name, frames := range ext.Keyframes {
			out.Theme.Extend.Keyframes[name] = frames.clone()
		}
	}
	return out
}

func (k Keyframes) clone() Keyframes {
	if k == nil {
		return nil
	}
	out := make(Keyframes, len(k))
	for sel, decls := range k {
		out[sel] = maps.Clone(decls)
	}
	return out
}
