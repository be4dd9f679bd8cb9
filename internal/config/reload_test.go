// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ManuGH/tailcfg/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// Test helper: write a config file overriding one traqr shade
func writeShadeConfig(t *testing.T, path string, hex string) {
	t.Helper()
	data := "theme:\n  extend:\n    colors:\n      traqr:\n        500: \"" + hex + "\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestNewHolder(t *testing.T) {
	initial := theme.Default()
	holder := NewHolder(initial, NewLoader(""))

	if holder == nil {
		t.Fatal("expected Holder, got nil")
	}
	hex, ok := holder.Get().Color("traqr", 500)
	if !ok || hex != "#22c55e" {
		t.Errorf("expected #22c55e, got %q (ok=%v)", hex, ok)
	}
	assert.Equal(t, DefaultDebounce, holder.Debounce)
}

func TestHolder_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	writeShadeConfig(t, path, "#22c55e")

	loader := NewLoader(path)
	initial, err := loader.Load()
	require.NoError(t, err)
	holder := NewHolder(initial, loader)

	listener := make(chan theme.StyleConfig, 1)
	holder.RegisterListener(listener)

	// Unchanged file: no listener notification
	summary, err := holder.Reload(context.Background())
	require.NoError(t, err)
	assert.True(t, summary.Empty())
	assert.Empty(t, listener)

	writeShadeConfig(t, path, "#10b981")
	summary, err = holder.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"theme.extend.colors.traqr.500"}, summary.ChangedFields)

	select {
	case cfg := <-listener:
		hex, _ := cfg.Color("traqr", 500)
		assert.Equal(t, theme.HexColor("#10b981"), hex)
	default:
		t.Fatal("expected listener notification")
	}

	hex, _ := holder.Get().Color("traqr", 500)
	assert.Equal(t, theme.HexColor("#10b981"), hex)
}

func TestHolder_ReloadKeepsOldConfigOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	writeShadeConfig(t, path, "#22c55e")

	loader := NewLoader(path)
	initial, err := loader.Load()
	require.NoError(t, err)
	holder := NewHolder(initial, loader)

	writeShadeConfig(t, path, "not-a-color")
	_, err = holder.Reload(context.Background())
	require.Error(t, err)

	hex, _ := holder.Get().Color("traqr", 500)
	assert.Equal(t, theme.HexColor("#22c55e"), hex, "old config must survive a failed reload")
}

func TestHolder_NotifyDoesNotBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	writeShadeConfig(t, path, "#22c55e")

	loader := NewLoader(path)
	holder := NewHolder(theme.Default(), loader)

	full := make(chan theme.StyleConfig) // unbuffered, never read
	holder.RegisterListener(full)

	writeShadeConfig(t, path, "#10b981")
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = holder.Reload(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Reload blocked on a full listener")
	}
}

func TestHolder_StartWatcherWithoutFile(t *testing.T) {
	holder := NewHolder(theme.Default(), NewLoader(""))
	require.NoError(t, holder.StartWatcher(context.Background()))
	holder.Stop()
}

func TestHolder_WatcherReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	writeShadeConfig(t, path, "#22c55e")

	loader := NewLoader(path)
	initial, err := loader.Load()
	require.NoError(t, err)

	holder := NewHolder(initial, loader)
	holder.Debounce = 20 * time.Millisecond

	listener := make(chan theme.StyleConfig, 1)
	holder.RegisterListener(listener)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, holder.StartWatcher(ctx))
	assert.ErrorIs(t, holder.StartWatcher(ctx), ErrWatcherRunning)

	// Unrelated files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	writeShadeConfig(t, path, "#10b981")

	select {
	case cfg := <-listener:
		hex, _ := cfg.Color("traqr", 500)
		assert.Equal(t, theme.HexColor("#10b981"), hex)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload the config")
	}

	cancel()
	holder.Stop()
}

func TestHolder_StopWithoutContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "style.yaml")
	writeShadeConfig(t, path, "#22c55e")

	holder := NewHolder(theme.Default(), NewLoader(path))
	require.NoError(t, holder.StartWatcher(context.Background()))
	holder.Stop()

	// A stopped holder can be watched again.
	require.NoError(t, holder.StartWatcher(context.Background()))
	holder.Stop()
}

func TestHolder_RestartAfterContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "style.yaml")
	writeShadeConfig(t, path, "#22c55e")

	holder := NewHolder(theme.Default(), NewLoader(path))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, holder.StartWatcher(ctx))
	cancel()
	holder.wg.Wait()

	require.NoError(t, holder.StartWatcher(context.Background()))
	holder.Stop()
}

func TestHolder_StopWaitsForPendingReload(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "style.yaml")
	writeShadeConfig(t, path, "#22c55e")

	loader := NewLoader(path)
	initial, err := loader.Load()
	require.NoError(t, err)

	holder := NewHolder(initial, loader)
	holder.Debounce = 10 * time.Millisecond

	listener := make(chan theme.StyleConfig, 1)
	holder.RegisterListener(listener)

	require.NoError(t, holder.StartWatcher(context.Background()))
	writeShadeConfig(t, path, "#10b981")
	time.Sleep(holder.Debounce)
	holder.Stop()

	// Once Stop returns, a reload has either finished completely or never started.
	hex, _ := holder.Get().Color("traqr", 500)
	if hex == "#10b981" {
		select {
		case <-listener:
		default:
			t.Fatal("reload swapped the config but had not notified listeners when Stop returned")
		}
	} else {
		assert.Equal(t, theme.HexColor("#22c55e"), hex)
		assert.Empty(t, listener)
	}
}
