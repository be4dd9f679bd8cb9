// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"
	FieldSource    = "source"

	// Path / file fields
	FieldPath   = "path"
	FieldFormat = "format"
	FieldRoot   = "root"
	FieldGlob   = "glob"
	FieldCount  = "count"

	// Theme fields
	FieldPalette   = "palette"
	FieldAnimation = "animation"
	FieldChanged   = "changed"
)
