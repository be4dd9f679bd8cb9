// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ManuGH/tailcfg/internal/cssvalue"
	"github.com/ManuGH/tailcfg/internal/theme"
	"github.com/ManuGH/tailcfg/internal/validate"
)

// Validate validates a StyleConfig using the centralized validation package.
// All problems are reported at once as a validate.ValidationError.
func Validate(cfg theme.StyleConfig) error {
	v := validate.New()

	// Content globs
	if len(cfg.Content) == 0 {
		v.AddError("content", "at least one glob is required", cfg.Content)
	}
	for i, glob := range cfg.Content {
		v.Glob(fmt.Sprintf("content[%d]", i), glob)
	}
	v.Unique("content", cfg.Content)

	ext := cfg.Theme.Extend
	validateFonts(v, ext.FontFamily)
	validateColors(v, ext.Colors)
	validateAnimations(v, ext.Animation, ext.Keyframes)
	validateKeyframes(v, ext.Keyframes, cfg.KeyframesReferences())

	// Plugins
	for i, plugin := range cfg.Plugins {
		v.NotEmpty(fmt.Sprintf("plugins[%d]", i), plugin)
	}
	v.Unique("plugins", cfg.Plugins)

	if !v.IsValid() {
		return v.Err()
	}

	return nil
}

func validateFonts(v *validate.Validator, fonts map[string]theme.FontStack) {
	for _, role := range slices.Sorted(maps.Keys(fonts)) {
		field := "theme.extend.fontFamily." + role
		v.NotEmpty(field, role)
		stack := fonts[role]
		if len(stack) == 0 {
			v.AddError(field, "font stack cannot be empty", stack)
			continue
		}
		for i, name := range stack {
			v.NotEmpty(fmt.Sprintf("%s[%d]", field, i), name)
		}
	}
}

func validateColors(v *validate.Validator, colors map[string]theme.ColorRamp) {
	for _, palette := range slices.Sorted(maps.Keys(colors)) {
		field := "theme.extend.colors." + palette
		v.NotEmpty(field, palette)
		ramp := colors[palette]
		if len(ramp) == 0 {
			v.AddError(field, "color ramp cannot be empty", ramp)
			continue
		}
		for _, shade := range ramp.Shades() {
			shadeField := field + "." + shade.String()
			v.Positive(shadeField, int(shade))
			v.HexColor(shadeField, string(ramp[shade]))
		}
	}
}

func validateAnimations(v *validate.Validator, animations map[string]string, keyframes map[string]theme.Keyframes) {
	for _, name := range slices.Sorted(maps.Keys(animations)) {
		field := "theme.extend.animation." + name
		v.NotEmpty(field, name)

		// One animation per name; comma lists cannot be resolved to a single keyframes set.
		a, err := cssvalue.ParseAnimation(animations[name])
		if err != nil {
			v.AddError(field, err.Error(), animations[name])
			continue
		}
		if _, ok := keyframes[a.Name]; !ok {
			v.AddError(field, fmt.Sprintf("references undefined keyframes %q", a.Name), animations[name])
		}
	}
}

func validateKeyframes(v *validate.Validator, keyframes map[string]theme.Keyframes, refs map[string][]string) {
	for _, name := range slices.Sorted(maps.Keys(keyframes)) {
		field := "theme.extend.keyframes." + name
		if _, ok := refs[name]; !ok {
			v.AddError(field, "no animation references these keyframes", name)
		}

		frames := keyframes[name]
		if len(frames) == 0 {
			v.AddError(field, "keyframes cannot be empty", frames)
			continue
		}
		for _, sel := range slices.Sorted(maps.Keys(frames)) {
			selField := fmt.Sprintf("%s.%q", field, sel)
			v.Custom(selField, sel, func(val interface{}) error {
				_, err := cssvalue.CheckpointOffset(val.(string))
				return err
			})
			decls := frames[sel]
			if len(decls) == 0 {
				v.AddError(selField, "checkpoint has no declarations", sel)
				continue
			}
			for _, prop := range decls.Properties() {
				if err := cssvalue.CheckDeclaration(prop, decls[prop]); err != nil {
					v.AddError(selField+"."+strings.TrimSpace(prop), err.Error(), decls[prop])
				}
			}
		}
	}
}
