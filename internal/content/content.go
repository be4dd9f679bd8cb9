// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package content expands the configured content globs against a project tree.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/ManuGH/tailcfg/internal/fsutil"
	xglog "github.com/ManuGH/tailcfg/internal/log"
	"github.com/ManuGH/tailcfg/internal/validate"
)

// ErrNotDirectory is returned when the project root is not a directory.
var ErrNotDirectory = errors.New("content root is not a directory")

// maxConcurrentGlobs bounds the number of globs walked at once.
const maxConcurrentGlobs = 4

// GlobMatch is the outcome of a single glob.
type GlobMatch struct {
	Glob  string
	Count int
}

// Result lists the files covered by a set of content globs.
type Result struct {
	Root  string
	Files []string    // slash-separated, relative to Root, sorted, unique
	Globs []GlobMatch // one entry per glob, in configuration order

	// Skipped lists matches that resolve outside Root (symlinks) or cannot be resolved.
	Skipped []string
}

// Empty returns the globs that matched no file.
func (r Result) Empty() []string {
	var out []string
	for _, g := range r.Globs {
		if g.Count == 0 {
			out = append(out, g.Glob)
		}
	}
	return out
}

// Resolve expands every glob against root. Globs are walked concurrently;
// a glob that matches nothing is reported in the result, not as an error.
func Resolve(ctx context.Context, root string, globs []string) (Result, error) {
	logger := xglog.WithComponentFromContext(ctx, "content")

	info, err := os.Stat(root)
	if err != nil {
		return Result{}, fmt.Errorf("content root: %w", err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	patterns := make([]string, len(globs))
	for i, glob := range globs {
		patterns[i] = validate.NormalizeGlob(glob)
		if !doublestar.ValidatePattern(patterns[i]) {
			return Result{}, fmt.Errorf("glob %q: %w", glob, doublestar.ErrBadPattern)
		}
	}

	fsys := os.DirFS(root)
	perGlob := make([][]string, len(globs))
	perGlobSkipped := make([][]string, len(globs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentGlobs)
	for i, glob := range globs {
		pattern := patterns[i]
		g.Go(func() error {
			var matches, skipped []string
			err := doublestar.GlobWalk(fsys, pattern, func(p string, _ fs.DirEntry) error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if _, err := fsutil.ConfineRelPath(root, p); err != nil {
					skipped = append(skipped, p)
					logger.Warn().
						Err(err).
						Str(xglog.FieldEvent, "content.file_skipped").
						Str(xglog.FieldPath, p).
						Msg("content file resolves outside the project root")
					return nil
				}
				matches = append(matches, p)
				return nil
			}, doublestar.WithFilesOnly())
			if err != nil {
				return fmt.Errorf("glob %q: %w", glob, err)
			}
			perGlob[i] = matches
			perGlobSkipped[i] = skipped
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Root: root, Globs: make([]GlobMatch, len(globs))}
	for i, glob := range globs {
		res.Globs[i] = GlobMatch{Glob: glob, Count: len(perGlob[i])}
		res.Files = append(res.Files, perGlob[i]...)
		res.Skipped = append(res.Skipped, perGlobSkipped[i]...)
		if len(perGlob[i]) == 0 {
			logger.Warn().
				Str(xglog.FieldEvent, "content.glob_empty").
				Str(xglog.FieldGlob, glob).
				Str(xglog.FieldRoot, root).
				Msg("content glob matched no files")
		}
	}
	slices.Sort(res.Files)
	res.Files = slices.Compact(res.Files)
	slices.Sort(res.Skipped)
	res.Skipped = slices.Compact(res.Skipped)

	logger.Debug().
		Str(xglog.FieldEvent, "content.resolved").
		Str(xglog.FieldRoot, root).
		Int(xglog.FieldCount, len(res.Files)).
		Msg("content globs resolved")
	return res, nil
}

// Match reports whether the relative path rel is covered by any of globs.
func Match(globs []string, rel string) (bool, error) {
	rel = path.Clean(strings.ReplaceAll(rel, `\`, "/"))
	rel = strings.TrimPrefix(rel, "./")
	for _, glob := range globs {
		ok, err := doublestar.Match(validate.NormalizeGlob(glob), rel)
		if err != nil {
			return false, fmt.Errorf("glob %q: %w", glob, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
