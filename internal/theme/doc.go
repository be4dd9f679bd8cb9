// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package theme holds the typed style configuration consumed by the
// utility-class generator: content globs, theme extensions and plugins.
//
// The canonical project configuration is available via Default. Values are
// treated as immutable; use Clone to derive a modified copy.
package theme
