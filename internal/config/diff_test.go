// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"testing"

	"github.com/ManuGH/tailcfg/internal/theme"
	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*theme.StyleConfig)
		want   []string
	}{
		{
			name:   "identical",
			mutate: func(*theme.StyleConfig) {},
			want:   nil,
		},
		{
			name:   "content reordered",
			mutate: func(c *theme.StyleConfig) { c.Content[0], c.Content[1] = c.Content[1], c.Content[0] },
			want:   []string{"content"},
		},
		{
			name:   "plugin added",
			mutate: func(c *theme.StyleConfig) { c.Plugins = append(c.Plugins, "forms") },
			want:   []string{"plugins"},
		},
		{
			name: "single shade",
			mutate: func(c *theme.StyleConfig) {
				c.Theme.Extend.Colors["traqr"][500] = "#10b981"
			},
			want: []string{"theme.extend.colors.traqr.500"},
		},
		{
			name: "palette added and shade removed",
			mutate: func(c *theme.StyleConfig) {
				c.Theme.Extend.Colors["sand"] = theme.ColorRamp{500: "#d4a373"}
				delete(c.Theme.Extend.Colors["ink"], 950)
			},
			want: []string{"theme.extend.colors.ink.950", "theme.extend.colors.sand"},
		},
		{
			name: "font and animation",
			mutate: func(c *theme.StyleConfig) {
				c.Theme.Extend.FontFamily["display"] = theme.FontStack{"Clash Display", "sans-serif"}
				c.Theme.Extend.Animation["fade-in"] = "fadeIn 0.3s ease-in"
			},
			want: []string{"theme.extend.animation.fade-in", "theme.extend.fontFamily.display"},
		},
		{
			name: "keyframe checkpoint",
			mutate: func(c *theme.StyleConfig) {
				c.Theme.Extend.Keyframes["slideUp"]["0%"]["transform"] = "translateY(24px)"
			},
			want: []string{"theme.extend.keyframes.slideUp.0%"},
		},
		{
			name: "keyframes removed",
			mutate: func(c *theme.StyleConfig) {
				delete(c.Theme.Extend.Keyframes, "fadeIn")
			},
			want: []string{"theme.extend.keyframes.fadeIn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := theme.Default()
			next := theme.Default()
			tt.mutate(&next)

			got := Diff(old, next)
			assert.Equal(t, tt.want, got.ChangedFields)
			assert.Equal(t, len(tt.want) == 0, got.Empty())
		})
	}
}
