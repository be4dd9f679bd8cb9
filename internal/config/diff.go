// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"maps"
	"slices"

	"github.com/ManuGH/tailcfg/internal/theme"
)

// ChangeSummary describes the result of comparing two configurations.
type ChangeSummary struct {
	ChangedFields []string // Sorted dotted paths, e.g. theme.extend.colors.traqr.500
}

// Empty reports whether the configurations were identical.
func (s ChangeSummary) Empty() bool {
	return len(s.ChangedFields) == 0
}

// Diff compares two configurations and returns a summary of changes.
// Paths go down to individual tokens: a color shade, a font role, an
// animation, a keyframe checkpoint.
func Diff(old, next theme.StyleConfig) ChangeSummary {
	var changed []string

	if !slices.Equal(old.Content, next.Content) {
		changed = append(changed, "content")
	}
	if !slices.Equal(old.Plugins, next.Plugins) {
		changed = append(changed, "plugins")
	}

	o, n := old.Theme.Extend, next.Theme.Extend
	changed = appendChangedKeys(changed, "theme.extend.fontFamily.", o.FontFamily, n.FontFamily, func(a, b theme.FontStack) bool {
		return slices.Equal(a, b)
	})
	changed = appendChangedKeys(changed, "theme.extend.animation.", o.Animation, n.Animation, func(a, b string) bool {
		return a == b
	})

	for _, palette := range unionKeys(o.Colors, n.Colors) {
		prefix := "theme.extend.colors." + palette
		or, inOld := o.Colors[palette]
		nr, inNew := n.Colors[palette]
		if inOld != inNew {
			changed = append(changed, prefix)
			continue
		}
		for _, shade := range unionKeys(or, nr) {
			a, okA := or[shade]
			b, okB := nr[shade]
			if okA != okB || a != b {
				changed = append(changed, prefix+"."+shade.String())
			}
		}
	}

	for _, name := range unionKeys(o.Keyframes, n.Keyframes) {
		prefix := "theme.extend.keyframes." + name
		oldFrames, inOld := o.Keyframes[name]
		newFrames, inNew := n.Keyframes[name]
		if inOld != inNew {
			changed = append(changed, prefix)
			continue
		}
		changed = appendChangedKeys(changed, prefix+".", oldFrames, newFrames, func(a, b theme.Declarations) bool {
			return maps.Equal(a, b)
		})
	}

	slices.Sort(changed)
	return ChangeSummary{ChangedFields: changed}
}

func appendChangedKeys[M ~map[K]V, K ~string, V any](changed []string, prefix string, old, next M, equal func(a, b V) bool) []string {
	for _, k := range unionKeys(old, next) {
		a, okA := old[k]
		b, okB := next[k]
		if okA != okB || !equal(a, b) {
			changed = append(changed, prefix+string(k))
		}
	}
	return changed
}

func unionKeys[M ~map[K]V, K interface{ ~string | ~int }, V any](a, b M) []K {
	keys := slices.Collect(maps.Keys(a))
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
