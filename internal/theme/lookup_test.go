// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package theme

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	cfg := Default()

	hex, ok := cfg.Color("traqr", 500)
	require.True(t, ok)
	assert.Equal(t, HexColor("#22c55e"), hex)

	hex, ok = cfg.Color("ink", 950)
	require.True(t, ok)
	assert.Equal(t, HexColor("#020617"), hex)

	_, ok = cfg.Color("traqr", 550)
	assert.False(t, ok)
	_, ok = cfg.Color("rose", 500)
	assert.False(t, ok)
}

func TestDefault_RampsCoverAllShades(t *testing.T) {
	want := []Shade{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}
	cfg := Default()
	assert.Equal(t, []string{"ink", "traqr"}, cfg.Palettes())
	for _, palette := range cfg.Palettes() {
		assert.Equal(t, want, cfg.Theme.Extend.Colors[palette].Shades(), palette)
	}
}

func TestDefault_ReturnsFreshValue(t *testing.T) {
	a := Default()
	a.Theme.Extend.Colors["traqr"][500] = "#000000"
	a.Content[0] = "./elsewhere/*.html"

	b := Default()
	hex, _ := b.Color("traqr", 500)
	assert.Equal(t, HexColor("#22c55e"), hex)
	assert.Equal(t, "./web/public/**/*.html", b.Content[0])
}

func TestFont(t *testing.T) {
	cfg := Default()

	sans, ok := cfg.Font("sans")
	require.True(t, ok)
	assert.Equal(t, "Outfit", sans.Preferred())
	assert.Equal(t, []string{"system-ui", "sans-serif"}, sans.Fallbacks())

	display, ok := cfg.Font("display")
	require.True(t, ok)
	assert.Equal(t, "Syne", display.Preferred())

	_, ok = cfg.Font("mono")
	assert.False(t, ok)
	assert.Equal(t, []string{"display", "sans"}, cfg.FontRoles())
}

func TestResolveAnimation_FadeIn(t *testing.T) {
	got, err := Default().ResolveAnimation("fade-in")
	require.NoError(t, err)

	assert.Equal(t, "fade-in", got.Name)
	assert.Equal(t, "fadeIn 0.5s ease-out", got.Shorthand)
	assert.Equal(t, "fadeIn", got.KeyframesName)
	assert.Equal(t, 500*time.Millisecond, got.Parsed.Duration)
	assert.Equal(t, "ease-out", got.Parsed.TimingFunction)

	want := []Checkpoint{
		{Selector: "0%", Offset: 0, Declarations: Declarations{"opacity": "0"}},
		{Selector: "100%", Offset: 100, Declarations: Declarations{"opacity": "1"}},
	}
	if diff := cmp.Diff(want, got.Checkpoints); diff != "" {
		t.Errorf("checkpoints mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveAnimation_SlideUp(t *testing.T) {
	got, err := Default().ResolveAnimation("slide-up")
	require.NoError(t, err)

	assert.Equal(t, "slideUp", got.KeyframesName)
	require.Len(t, got.Checkpoints, 2)
	assert.Equal(t, "translateY(12px)", got.Checkpoints[0].Declarations["transform"])
	assert.Equal(t, "translateY(0)", got.Checkpoints[1].Declarations["transform"])
}

func TestResolveAnimation_Errors(t *testing.T) {
	cfg := Default()

	_, err := cfg.ResolveAnimation("bounce")
	assert.True(t, errors.Is(err, ErrUnknownAnimation))

	cfg.Theme.Extend.Animation["wiggle"] = "wiggle 1s ease-in-out infinite"
	_, err = cfg.ResolveAnimation("wiggle")
	assert.True(t, errors.Is(err, ErrUnknownKeyframes))
}

func TestKeyframesCheckpoints_Order(t *testing.T) {
	frames := Keyframes{
		"to":   {"opacity": "1"},
		"50%":  {"opacity": "0.8"},
		"from": {"opacity": "0"},
		"0%":   {"transform": "scale(0.9)"},
	}

	got, err := frames.Checkpoints()
	require.NoError(t, err)

	selectors := make([]string, len(got))
	for i, c := range got {
		selectors[i] = c.Selector
	}
	assert.Equal(t, []string{"0%", "from", "50%", "to"}, selectors)

	_, err = Keyframes{"halfway": {"opacity": "1"}}.Checkpoints()
	assert.Error(t, err)

	_, err = Keyframes{"nan%": {"opacity": "1"}, "0%": {"opacity": "0"}}.Checkpoints()
	assert.Error(t, err)
}

func TestKeyframesReferences(t *testing.T) {
	cfg := Default()
	cfg.Theme.Extend.Animation["fade-in-slow"] = "fadeIn 1s ease-out"

	refs := cfg.KeyframesReferences()
	assert.Equal(t, []string{"fade-in", "fade-in-slow"}, refs["fadeIn"])
	assert.Equal(t, []string{"slide-up"}, refs["slideUp"])

	// Comma lists do not resolve to one keyframes set and reference nothing.
	cfg.Theme.Extend.Animation["both"] = "fadeIn 1s, slideUp 1s"
	refs = cfg.KeyframesReferences()
	assert.Equal(t, []string{"fade-in", "fade-in-slow"}, refs["fadeIn"])
	assert.Equal(t, []string{"slide-up"}, refs["slideUp"])
}

func TestClone_IsIndependent(t *testing.T) {
	orig := Default()
	clone := orig.Clone()

	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	clone.Content[0] = "./other/*.html"
	clone.Theme.Extend.FontFamily["sans"][0] = "Inter"
	clone.Theme.Extend.Colors["traqr"][500] = "#000000"
	clone.Theme.Extend.Animation["fade-in"] = "fadeIn 1s linear"
	clone.Theme.Extend.Keyframes["fadeIn"]["0%"]["opacity"] = "0.2"

	assert.Equal(t, "./web/public/**/*.html", orig.Content[0])
	assert.Equal(t, "Outfit", orig.Theme.Extend.FontFamily["sans"][0])
	hex, _ := orig.Color("traqr", 500)
	assert.Equal(t, HexColor("#22c55e"), hex)
	assert.Equal(t, "fadeIn 0.5s ease-out", orig.Theme.Extend.Animation["fade-in"])
	assert.Equal(t, "0", orig.Theme.Extend.Keyframes["fadeIn"]["0%"]["opacity"])
}
