// SPDX-License-Identifier: MIT

// Package validate provides configuration validation utilities for tailcfg.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ManuGH/tailcfg/internal/theme"
)

// Error represents a validation error
type Error struct {
	Field   string      // Field name that failed validation
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsValid returns true if no errors have been accumulated
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns all accumulated validation errors
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	// Multiple errors - format as list
	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Directory validates that path names an existing directory.
func (v *Validator) Directory(field, path string) {
	if path == "" {
		v.AddError(field, "directory path cannot be empty", path)
		return
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		v.AddError(field, fmt.Sprintf("invalid path: %v", err), path)
		return
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			v.AddError(field, "directory does not exist", path)
			return
		}
		v.AddError(field, fmt.Sprintf("cannot access directory: %v", err), path)
		return
	}

	if !info.IsDir() {
		v.AddError(field, "path is not a directory", path)
	}
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "value cannot be empty", value)
	}
}

// OneOf validates that a value is one of the allowed values
func (v *Validator) OneOf(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field,
		fmt.Sprintf("value must be one of %v, got %q", allowed, value),
		value)
}

// Positive validates that a number is positive (> 0)
func (v *Validator) Positive(field string, value int) {
	if value <= 0 {
		v.AddError(field, fmt.Sprintf("value must be positive, got %d", value), value)
	}
}

// Custom allows custom validation logic
// The validator function should return an error if validation fails
func (v *Validator) Custom(field string, value interface{}, validator func(interface{}) error) {
	if err := validator(value); err != nil {
		v.AddError(field, err.Error(), value)
	}
}

// Unique validates that no entry of values appears twice.
func (v *Validator) Unique(field string, values []string) {
	seen := make(map[string]struct{}, len(values))
	for _, val := range values {
		if _, ok := seen[val]; ok {
			v.AddError(field, "duplicate entry", val)
			continue
		}
		seen[val] = struct{}{}
	}
}

// HexColor validates a six digit hexadecimal color (#rrggbb)
func (v *Validator) HexColor(field, value string) {
	if !theme.HexColor(value).Valid() {
		v.AddError(field, fmt.Sprintf("must be a #rrggbb color, got %q", value), value)
	}
}

// Glob validates a content glob relative to the project root.
// The pattern must be non-empty, syntactically valid and must not escape the root.
func (v *Validator) Glob(field, pattern string) {
	if strings.TrimSpace(pattern) == "" {
		v.AddError(field, "glob cannot be empty", pattern)
		return
	}

	// Check 1: Must be relative to the project root
	if filepath.IsAbs(pattern) || strings.HasPrefix(pattern, "/") {
		v.AddError(field, fmt.Sprintf("must be relative glob, got absolute: %s", pattern), pattern)
		return
	}

	// Check 2: Must not contain traversal segments
	trimmed := NormalizeGlob(pattern)
	for _, seg := range strings.Split(trimmed, "/") {
		if seg == ".." {
			v.AddError(field, fmt.Sprintf("contains path traversal: %s", pattern), pattern)
			return
		}
	}

	// Check 3: Must be a valid doublestar pattern
	if !doublestar.ValidatePattern(trimmed) {
		v.AddError(field, fmt.Sprintf("invalid glob pattern: %s", pattern), pattern)
	}
}

// NormalizeGlob returns the pattern relative to the project root with
// surrounding space and every leading "./" removed.
func NormalizeGlob(pattern string) string {
	g := filepath.ToSlash(strings.TrimSpace(pattern))
	for strings.HasPrefix(g, "./") {
		g = g[2:]
	}
	return g
}
