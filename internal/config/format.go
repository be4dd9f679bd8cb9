// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ManuGH/tailcfg/internal/theme"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a serialization of the style configuration.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats.
func Formats() []string {
	return []string{string(FormatYAML), string(FormatJSON), string(FormatTOML)}
}

// ParseFormat parses a format name ("yml" is accepted for YAML).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, s, strings.Join(Formats(), ", "))
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Marshal encodes cfg in the given format.
func Marshal(cfg theme.StyleConfig, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Unmarshal decodes a complete configuration strictly: unknown keys are
// rejected and the input must hold exactly one document.
func Unmarshal(data []byte, format Format) (theme.StyleConfig, error) {
	var cfg theme.StyleConfig
	if err := decodeStrict(data, format, &cfg); err != nil {
		return theme.StyleConfig{}, err
	}
	return cfg, nil
}

// decodeStrict decodes data into out, rejecting unknown fields.
// An empty document leaves out untouched.
func decodeStrict(data []byte, format Format, out any) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true) // Reject unknown fields
		if err := dec.Decode(out); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
				return fmt.Errorf("strict yaml parse error: %w: %v", ErrUnknownConfigField, err)
			}
			return fmt.Errorf("strict yaml parse error: %w", err)
		}
		// Strict: Ensure no multiple documents or trailing content
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return ErrTrailingContent
		}
		return nil

	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(out); err != nil {
			if strings.HasPrefix(err.Error(), "json: unknown field") {
				return fmt.Errorf("strict json parse error: %w: %v", ErrUnknownConfigField, err)
			}
			return fmt.Errorf("strict json parse error: %w", err)
		}
		if dec.More() {
			return ErrTrailingContent
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return ErrTrailingContent
		}
		return nil

	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(out); err != nil {
			var strictErr *toml.StrictMissingError
			if errors.As(err, &strictErr) {
				return fmt.Errorf("strict toml parse error: %w: %v", ErrUnknownConfigField, strictErr.String())
			}
			return fmt.Errorf("strict toml parse error: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
