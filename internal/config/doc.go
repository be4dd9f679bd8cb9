// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config loads, validates, serializes and hot-reloads the style
// configuration.
//
// Precedence: ENV > File > Defaults (the built-in theme.Default value).
// Files are parsed strictly: unknown keys are rejected for YAML, JSON and TOML.
package config
