// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"context"
	"fmt"

	xglog "github.com/ManuGH/tailcfg/internal/log"
	"github.com/ManuGH/tailcfg/internal/theme"
	"github.com/google/renameio/v2"
)

// Save validates cfg and writes it to path in the format implied by the
// extension. The write is atomic and durable: readers see either the old or
// the new file, never a partial one.
func Save(ctx context.Context, path string, cfg theme.StyleConfig) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return SaveAs(ctx, path, cfg, format)
}

// SaveAs is Save with an explicit format.
func SaveAs(ctx context.Context, path string, cfg theme.StyleConfig, format Format) error {
	logger := xglog.WithComponentFromContext(ctx, "config")

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	data, err := Marshal(cfg, format)
	if err != nil {
		return err
	}

	// renameio handles: temp file creation, fsync, atomic rename, cleanup on error
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() {
		// Cleanup on error - renameio removes temp file if not committed
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending config file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write config data: %w", err)
	}

	// CloseAtomicallyReplace: fsync + rename (durable + atomic)
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace config file: %w", err)
	}

	logger.Info().
		Str(xglog.FieldEvent, "config.saved").
		Str(xglog.FieldPath, path).
		Str(xglog.FieldFormat, string(format)).
		Msg("configuration written")
	return nil
}
