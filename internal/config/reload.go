// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	xglog "github.com/ManuGH/tailcfg/internal/log"
	"github.com/ManuGH/tailcfg/internal/theme"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is the quiet period after the last file event before a reload.
const DefaultDebounce = 500 * time.Millisecond

// ErrWatcherRunning is returned by StartWatcher when a watcher is already active.
var ErrWatcherRunning = errors.New("config watcher already running")

// Holder holds configuration with atomic reloading capability.
// It provides thread-safe access to configuration and supports hot reloading
// from file or manual trigger.
type Holder struct {
	mu      sync.RWMutex
	current theme.StyleConfig
	loader  *Loader
	logger  zerolog.Logger

	// Debounce is read when the watcher starts.
	Debounce time.Duration

	watchMu sync.Mutex
	watcher *fsnotify.Watcher
	wg      sync.WaitGroup

	// Reload notifications
	reloadMu        sync.RWMutex
	reloadListeners []chan<- theme.StyleConfig
}

// NewHolder creates a new configuration holder with initial config.
func NewHolder(initial theme.StyleConfig, loader *Loader) *Holder {
	return &Holder{
		current:  initial,
		loader:   loader,
		logger:   xglog.WithComponent("config"),
		Debounce: DefaultDebounce,
	}
}

// Get returns the current configuration (thread-safe read).
// The returned value shares maps with the holder; Clone it before modifying.
func (h *Holder) Get() theme.StyleConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Reload reloads configuration from the loader's sources and validates it.
// If loading or validation fails, the old configuration is kept and an error
// is returned: either the full config is valid and applied, or nothing changes.
func (h *Holder) Reload(ctx context.Context) (ChangeSummary, error) {
	logger := xglog.WithContext(ctx, h.logger)
	logger.Info().Str(xglog.FieldEvent, "config.reload_start").Msg("reloading configuration")

	newCfg, err := h.loader.Load()
	if err != nil {
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "config.reload_failed").
			Msg("failed to load new configuration")
		return ChangeSummary{}, fmt.Errorf("load config: %w", err)
	}

	// Atomically swap configuration
	h.mu.Lock()
	oldCfg := h.current
	h.current = newCfg
	h.mu.Unlock()

	summary := Diff(oldCfg, newCfg)
	if summary.Empty() {
		logger.Info().
			Str(xglog.FieldEvent, "config.reload_unchanged").
			Msg("configuration reloaded without changes")
		return summary, nil
	}

	h.notifyListeners(newCfg)

	logger.Info().
		Str(xglog.FieldEvent, "config.reload_success").
		Strs(xglog.FieldChanged, summary.ChangedFields).
		Msg("configuration reloaded successfully")

	return summary, nil
}

// StartWatcher starts watching the config file for changes.
// If the loader has no file, this is a no-op (built-in configuration only).
// The watcher stops when ctx is cancelled or Stop is called.
func (h *Holder) StartWatcher(ctx context.Context) error {
	path := h.loader.Path()
	if path == "" {
		h.logger.Info().
			Str(xglog.FieldEvent, "config.watcher_disabled").
			Msg("config file watcher disabled (using built-in configuration)")
		return nil
	}

	h.watchMu.Lock()
	defer h.watchMu.Unlock()
	if h.watcher != nil {
		return ErrWatcherRunning
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close() // Ignore close error in error path
		return fmt.Errorf("watch config directory: %w", err)
	}
	h.watcher = watcher

	h.logger.Info().
		Str(xglog.FieldEvent, "config.watcher_started").
		Str(xglog.FieldPath, path).
		Msg("watching config file for changes")

	h.wg.Add(1)
	go h.watchLoop(ctx, watcher, filepath.Clean(path), h.Debounce)

	return nil
}

// watchLoop is the main file watcher loop. Debounced reloads run on this
// goroutine, so Stop observes them through h.wg.
func (h *Holder) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, debounce time.Duration) {
	defer h.wg.Done()
	defer h.releaseWatcher(watcher)

	// Debounce timer to avoid multiple reloads for rapid file changes
	var (
		debounceTimer *time.Timer
		debounceC     <-chan time.Time
	)
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str(xglog.FieldEvent, "config.watcher_stopped").Msg("config watcher stopped")
			return

		case <-debounceC:
			debounceC = nil
			if ctx.Err() != nil {
				return
			}
			if _, err := h.Reload(ctx); err != nil {
				h.logger.Error().
					Err(err).
					Str(xglog.FieldEvent, "config.auto_reload_failed").
					Msg("automatic config reload failed")
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}

			// Write, Create and Rename cover in-place edits and atomic replacement.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				h.logger.Debug().
					Str(xglog.FieldEvent, "config.file_changed").
					Str("op", event.Op.String()).
					Msg("config file changed")

				// Debounce: reset timer on each event
				if debounceTimer == nil {
					debounceTimer = time.NewTimer(debounce)
				} else {
					debounceTimer.Reset(debounce)
				}
				debounceC = debounceTimer.C
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().
				Err(err).
				Str(xglog.FieldEvent, "config.watcher_error").
				Msg("config watcher error")
		}
	}
}

// releaseWatcher closes watcher and clears it from the holder unless Stop or a
// newer StartWatcher already replaced it.
func (h *Holder) releaseWatcher(watcher *fsnotify.Watcher) {
	h.watchMu.Lock()
	defer h.watchMu.Unlock()
	_ = watcher.Close() // Ignore close error in shutdown path
	if h.watcher == watcher {
		h.watcher = nil
	}
}

// Stop stops the config watcher (if running) and waits for its goroutine to exit.
func (h *Holder) Stop() {
	h.watchMu.Lock()
	if h.watcher != nil {
		_ = h.watcher.Close() // Ignore close error in shutdown path
		h.watcher = nil
	}
	h.watchMu.Unlock()
	h.wg.Wait()
}

// RegisterListener registers a channel to receive config reload notifications.
// The channel will receive the new config whenever a reload changes it.
// The caller is responsible for closing the channel.
func (h *Holder) RegisterListener(ch chan<- theme.StyleConfig) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()
	h.reloadListeners = append(h.reloadListeners, ch)
}

// notifyListeners sends the new config to all registered listeners (non-blocking).
func (h *Holder) notifyListeners(newCfg theme.StyleConfig) {
	h.reloadMu.RLock()
	defer h.reloadMu.RUnlock()

	for _, ch := range h.reloadListeners {
		select {
		case ch <- newCfg:
		default:
			// Skip if channel is full (non-blocking send)
			h.logger.Warn().
				Str(xglog.FieldEvent, "config.listener_skip").
				Msg("skipped notifying listener (channel full)")
		}
	}
}
