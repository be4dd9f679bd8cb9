// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package cssvalue tokenizes the CSS fragments stored in a style configuration:
// animation shorthands, keyframe checkpoints and keyframe declarations.
package cssvalue

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var (
	// ErrEmptyValue is returned for blank shorthands and declarations.
	ErrEmptyValue = errors.New("empty css value")
	// ErrMissingName is returned for a shorthand that names no keyframes.
	ErrMissingName = errors.New("animation names no keyframes")
	// ErrMultipleAnimations is returned by ParseAnimation for comma-separated lists.
	ErrMultipleAnimations = errors.New("multiple animations in shorthand")
)

// Animation is the decomposed form of one animation shorthand entry.
type Animation struct {
	Name           string // keyframes name
	Duration       time.Duration
	Delay          time.Duration
	TimingFunction string
	IterationCount string
	Direction      string
	FillMode       string
	PlayState      string
}

var (
	timingKeywords = map[string]struct{}{
		"ease": {}, "ease-in": {}, "ease-out": {}, "ease-in-out": {},
		"linear": {}, "step-start": {}, "step-end": {},
	}
	directionKeywords = map[string]struct{}{
		"normal": {}, "reverse": {}, "alternate": {}, "alternate-reverse": {},
	}
	fillModeKeywords = map[string]struct{}{
		"none": {}, "forwards": {}, "backwards": {}, "both": {},
	}
	playStateKeywords = map[string]struct{}{
		"running": {}, "paused": {},
	}
)

// ParseAnimation parses a single animation shorthand such as "fadeIn 0.5s ease-out".
func ParseAnimation(shorthand string) (Animation, error) {
	list, err := ParseAnimations(shorthand)
	if err != nil {
		return Animation{}, err
	}
	if len(list) != 1 {
		return Animation{}, fmt.Errorf("%w: %q", ErrMultipleAnimations, shorthand)
	}
	return list[0], nil
}

// ParseAnimations parses a comma-separated animation shorthand list.
func ParseAnimations(shorthand string) ([]Animation, error) {
	if strings.TrimSpace(shorthand) == "" {
		return nil, ErrEmptyValue
	}

	groups, err := splitTopLevel(shorthand)
	if err != nil {
		return nil, err
	}

	out := make([]Animation, 0, len(groups))
	for _, words := range groups {
		a, err := parseAnimationWords(words)
		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", shorthand, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// word is one space-separated component of a shorthand; functions are kept whole.
type word struct {
	tt   css.TokenType
	text string
}

// splitTopLevel lexes the shorthand and groups its words by top-level commas.
func splitTopLevel(s string) ([][]word, error) {
	l := css.NewLexer(parse.NewInputString(s))

	var (
		groups  [][]word
		current []word
		fn      strings.Builder
		depth   int
	)
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("tokenize %q: %w", s, err)
			}
			break
		}

		if depth > 0 {
			fn.Write(data)
			switch tt {
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				depth--
				if depth == 0 {
					current = append(current, word{tt: css.FunctionToken, text: fn.String()})
					fn.Reset()
				}
			}
			continue
		}

		switch tt {
		case css.WhitespaceToken, css.CommentToken:
		case css.FunctionToken:
			depth = 1
			fn.Write(data)
		case css.CommaToken:
			if len(current) == 0 {
				return nil, fmt.Errorf("%w: empty entry in %q", ErrEmptyValue, s)
			}
			groups = append(groups, current)
			current = nil
		case css.IdentToken, css.StringToken, css.DimensionToken, css.NumberToken:
			current = append(current, word{tt: tt, text: string(data)})
		default:
			return nil, fmt.Errorf("unexpected %s %q in %q", tt, string(data), s)
		}
	}
	if depth > 0 {
		return nil, fmt.Errorf("unterminated function in %q", s)
	}
	if len(current) == 0 {
		return nil, fmt.Errorf("%w: empty entry in %q", ErrEmptyValue, s)
	}
	return append(groups, current), nil
}

func parseAnimationWords(words []word) (Animation, error) {
	var (
		a      Animation
		times  int
		haveTF bool
	)
	for _, w := range words {
		switch w.tt {
		case css.DimensionToken:
			d, err := parseTime(w.text)
			if err != nil {
				return a, err
			}
			switch times {
			case 0:
				a.Duration = d
			case 1:
				a.Delay = d
			default:
				return a, fmt.Errorf("unexpected third time value %q", w.text)
			}
			times++
		case css.NumberToken:
			if a.IterationCount != "" {
				return a, fmt.Errorf("duplicate iteration count %q", w.text)
			}
			a.IterationCount = w.text
		case css.FunctionToken:
			if haveTF {
				return a, fmt.Errorf("duplicate timing function %q", w.text)
			}
			a.TimingFunction = w.text
			haveTF = true
		case css.StringToken:
			if a.Name != "" {
				return a, fmt.Errorf("duplicate keyframes name %q", w.text)
			}
			a.Name = strings.Trim(w.text, `"'`)
		case css.IdentToken:
			if err := a.assignKeyword(w.text, &haveTF); err != nil {
				return a, err
			}
		}
	}
	if a.Name == "" {
		return a, ErrMissingName
	}
	return a, nil
}

// assignKeyword places an identifier in the first free slot it can fill; an
// identifier matching no keyword slot is the keyframes name.
func (a *Animation) assignKeyword(ident string, haveTF *bool) error {
	lower := strings.ToLower(ident)
	if _, ok := timingKeywords[lower]; ok && !*haveTF {
		a.TimingFunction = lower
		*haveTF = true
		return nil
	}
	if lower == "infinite" && a.IterationCount == "" {
		a.IterationCount = lower
		return nil
	}
	if _, ok := directionKeywords[lower]; ok && a.Direction == "" {
		a.Direction = lower
		return nil
	}
	if _, ok := fillModeKeywords[lower]; ok && a.FillMode == "" {
		a.FillMode = lower
		return nil
	}
	if _, ok := playStateKeywords[lower]; ok && a.PlayState == "" {
		a.PlayState = lower
		return nil
	}
	if a.Name != "" {
		return fmt.Errorf("duplicate keyframes name %q (already %q)", ident, a.Name)
	}
	a.Name = ident
	return nil
}

// parseTime converts a CSS <time> dimension ("0.5s", "150ms") to a duration.
func parseTime(dim string) (time.Duration, error) {
	num, unit := splitDimension(dim)
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", dim, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid time %q: negative", dim)
	}
	switch strings.ToLower(unit) {
	case "s":
		return time.Duration(v * float64(time.Second)), nil
	case "ms":
		return time.Duration(v * float64(time.Millisecond)), nil
	default:
		return 0, fmt.Errorf("invalid time %q: unit must be s or ms", dim)
	}
}

func splitDimension(dim string) (num, unit string) {
	i := 0
	for i < len(dim) {
		c := dim[i]
		if (c >= '0' && c <= '9') || c == '.' || c == '+' || c == '-' {
			i++
			continue
		}
		if (c == 'e' || c == 'E') && i+1 < len(dim) && (dim[i+1] >= '0' && dim[i+1] <= '9') {
			i++
			continue
		}
		break
	}
	return dim[:i], dim[i:]
}
