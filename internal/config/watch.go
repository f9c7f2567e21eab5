// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// DefaultDebounce is how long the file must be quiet before a reload.
const DefaultDebounce = 250 * time.Millisecond

const reloadEvery = 4

// Watcher reloads a config file when it changes on disk.
//
// The parent directory is watched rather than the file so editors that save
// by rename are seen. Changes are debounced, and a file rewritten in a loop
// reloads at most once per reloadEvery debounce intervals.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	limiter  *rate.Limiter
	onChange func(*Config, error)

	mu      sync.Mutex
	pending time.Time // last change not yet reloaded; zero when idle
}

// NewWatcher creates a watcher for path. onChange receives the reloaded
// config, or the load error; it runs on the watcher goroutine.
func NewWatcher(path string, debounce time.Duration, onChange func(*Config, error)) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		watcher:  fw,
		debounce: debounce,
		limiter:  rate.NewLimiter(rate.Every(reloadEvery*debounce), 1),
		onChange: onChange,
	}, nil
}

// Run processes events until ctx is done. It closes the underlying watcher
// on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	tick := w.debounce / 2
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.observe(event, time.Now())

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("config watcher error", "path", w.path, "error", err)

		case now := <-ticker.C:
			if w.due(now) {
				w.reload()
			}
		}
	}
}

// observe records a change to the watched file. A removal is recorded too;
// its reload fails with fs.ErrNotExist and the host keeps its settings.
func (w *Watcher) observe(event fsnotify.Event, now time.Time) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}
	w.mu.Lock()
	w.pending = now
	w.mu.Unlock()
}

// due reports whether a pending change has been quiet for the debounce
// interval and the reload budget allows it. A due change is consumed.
func (w *Watcher) due(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending.IsZero() || now.Sub(w.pending) < w.debounce {
		return false
	}
	if !w.limiter.AllowN(now, 1) {
		return false
	}
	w.pending = time.Time{}
	return true
}

func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		slog.Warn("config reload failed", "path", w.path, "error", err)
	} else {
		slog.Info("config reloaded", "path", w.path)
	}
	if w.onChange != nil {
		w.onChange(cfg, err)
	}
}

// Close stops the watcher without waiting for Run.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
