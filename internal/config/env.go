// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"os"
	"strings"

	"github.com/ManuGH/tailcfg/internal/log"
	"github.com/rs/zerolog"
)

// Environment variables consumed by the Loader.
const (
	EnvContent = "TAILCFG_CONTENT"
	EnvPlugins = "TAILCFG_PLUGINS"

	// EnvConfigPath is read by the CLI when --config is not given.
	EnvConfigPath = "TAILCFG_CONFIG"
)

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(log.WithComponent("config"), key, defaultValue)
}

// parseStringWithLogger reads an environment variable with custom logger.
func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		if value == "" {
			logger.Debug().
				Str("key", key).
				Str("default", defaultValue).
				Str("source", "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		}
		logger.Debug().
			Str("key", key).
			Str("value", value).
			Str("source", "environment").
			Msg("using environment variable")
		return value
	}
	logger.Debug().
		Str("key", key).
		Str("default", defaultValue).
		Str("source", "default").
		Msg("using default value")
	return defaultValue
}

// ParseList reads a comma-separated list from an environment variable.
// Entries are trimmed and empty entries dropped. ok is false when the
// variable is unset or blank, so callers keep their current value.
func ParseList(key string) (values []string, ok bool) {
	raw := strings.TrimSpace(ParseString(key, ""))
	if raw == "" {
		return nil, false
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}
	return values, true
}
