// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"maps"
	"slices"

	"github.com/ManuGH/tailcfg/internal/theme"
)

// FileConfig is the on-disk shape of the configuration. Pointer slices
// distinguish "absent" from "present but empty".
type FileConfig struct {
	Content *[]string `yaml:"content" json:"content" toml:"content"`
	Theme   FileTheme `yaml:"theme" json:"theme" toml:"theme"`
	Plugins *[]string `yaml:"plugins" json:"plugins" toml:"plugins"`
}

// FileTheme mirrors theme.Theme.
type FileTheme struct {
	Extend theme.Extension `yaml:"extend" json:"extend" toml:"extend"`
}

// LoadFileConfig loads a config file without applying defaults or env overrides.
func LoadFileConfig(path string) (*FileConfig, error) {
	loader := NewLoader(path)
	return loader.loadFile(path)
}

// mergeFileConfig layers the file over cfg. Lists replace when present; token
// maps merge per entry, a file entry replacing the entry of the same name.
func mergeFileConfig(cfg *theme.StyleConfig, file *FileConfig) {
	if file == nil {
		return
	}
	if file.Content != nil {
		cfg.Content = slices.Clone(*file.Content)
	}
	if file.Plugins != nil {
		cfg.Plugins = slices.Clone(*file.Plugins)
	}

	src := file.Theme.Extend
	dst := &cfg.Theme.Extend
	dst.FontFamily = mergeEntries(dst.FontFamily, src.FontFamily)
	dst.Colors = mergeEntries(dst.Colors, src.Colors)
	dst.Animation = mergeEntries(dst.Animation, src.Animation)
	dst.Keyframes = mergeEntries(dst.Keyframes, src.Keyframes)
}

func mergeEntries[M ~map[string]V, V any](dst, src M) M {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(M, len(src))
	}
	maps.Copy(dst, src)
	return dst
}
