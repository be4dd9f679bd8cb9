// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ManuGH/tailcfg/internal/fsutil"
	"github.com/ManuGH/tailcfg/internal/theme"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	useDefaults     bool
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithoutDefaults makes the file the only source besides the environment:
// sections absent from the file stay empty instead of taking built-in values.
func WithoutDefaults() LoaderOption {
	return func(l *Loader) { l.useDefaults = false }
}

// NewLoader creates a new configuration loader. An empty configPath loads the
// built-in configuration.
func NewLoader(configPath string, opts ...LoaderOption) *Loader {
	l := &Loader{
		configPath:      configPath,
		useDefaults:     true,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the configured file path ("" for built-in only).
func (l *Loader) Path() string {
	return l.configPath
}

// Source describes where the configuration comes from, for logs and messages.
func (l *Loader) Source() string {
	if l.configPath == "" {
		return "builtin"
	}
	return l.configPath
}

func (l *Loader) envList(key string) ([]string, bool) {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseList(key)
}

// Load loads configuration with precedence: ENV > File > Defaults
// It enforces Strict Validated Order: Parse File (Strict) -> Apply Env -> Validate
func (l *Loader) Load() (theme.StyleConfig, error) {
	cfg := theme.StyleConfig{}

	// 1. Set defaults
	if l.useDefaults {
		cfg = theme.Default()
	}

	// 2. Load from file (if provided)
	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		mergeFileConfig(&cfg, fileCfg)
	}

	// 3. Override with environment variables (highest priority)
	l.mergeEnvConfig(&cfg)

	// 4. Validate final configuration
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFile loads configuration from a file with STRICT parsing.
// Unknown fields will cause a fatal error to prevent misconfiguration.
func (l *Loader) loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	if err := fsutil.IsRegularFile(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg FileConfig
	if err := decodeStrict(data, format, &fileCfg); err != nil {
		return nil, err
	}
	return &fileCfg, nil
}

// mergeEnvConfig applies environment overrides.
func (l *Loader) mergeEnvConfig(cfg *theme.StyleConfig) {
	if globs, ok := l.envList(EnvContent); ok {
		cfg.Content = globs
	}
	if plugins, ok := l.envList(EnvPlugins); ok {
		cfg.Plugins = plugins
	}
}
