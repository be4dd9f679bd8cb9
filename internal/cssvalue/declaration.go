// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package cssvalue

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ErrInvalidCheckpoint is returned for keyframe selectors other than from, to or N%.
var ErrInvalidCheckpoint = errors.New("invalid keyframe checkpoint")

// CheckDeclaration reports whether "property: value" parses as exactly one CSS declaration.
func CheckDeclaration(property, value string) error {
	property = strings.TrimSpace(property)
	value = strings.TrimSpace(value)
	if property == "" {
		return fmt.Errorf("%w: property", ErrEmptyValue)
	}
	if value == "" {
		return fmt.Errorf("%w: value of %s", ErrEmptyValue, property)
	}

	p := css.NewParser(parse.NewInputString(property+":"+value), true)

	declarations := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("declaration %s: %w", property, err)
			}
			if declarations != 1 {
				return fmt.Errorf("declaration %s: expected one declaration, got %d", property, declarations)
			}
			return nil
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			declarations++
			if !strings.EqualFold(string(data), property) {
				return fmt.Errorf("declaration %s: parsed property %q", property, string(data))
			}
			if !hasValue(p.Values()) {
				return fmt.Errorf("%w: value of %s", ErrEmptyValue, property)
			}
		default:
			return fmt.Errorf("declaration %s: unexpected %s in %q", property, gt, value)
		}
	}
}

func hasValue(tokens []css.Token) bool {
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken && t.TokenType != css.CommentToken {
			return true
		}
	}
	return false
}

// CheckpointOffset converts a keyframe selector to its offset in percent.
func CheckpointOffset(selector string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(selector))
	switch s {
	case "from":
		return 0, nil
	case "to":
		return 100, nil
	}
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCheckpoint, selector)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCheckpoint, selector)
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidCheckpoint, selector)
	}
	return v, nil
}
