// Copyright (c) 2024 The konf authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

//go:build !appengine && (darwin || dragonfly || freebsd || openbsd || linux || netbsd || solaris || windows)

package file

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the file and calls onChange with the reloaded values when it's created or written,
// or with nil when it's removed. Errors while reloading are logged and the change is skipped.
// It blocks until ctx is done.
func (f File) Watch(ctx context.Context, onChange func(map[string]any)) error { //nolint:cyclop,funlen
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher for %s: %w", f.path, err)
	}
	defer func() {
		if e := watcher.Close(); e != nil {
			f.logger.LogAttrs(ctx, slog.LevelWarn, "Error when closing file watcher.",
				slog.String("file", f.path), slog.Any("error", e))
		}
	}()

	// Watch the parent directory so that atomic replaces and symlink swaps
	// are observed as well.
	dir, _ := filepath.Split(f.path)
	if dir == "" {
		dir = "."
	}
	if e := watcher.Add(dir); e != nil {
		return fmt.Errorf("watch dir %s: %w", dir, e)
	}

	path := filepath.Clean(f.path)
	realPath, err := filepath.EvalSymlinks(f.path)
	if err != nil {
		// The file may not exist yet. Wait for it to be created.
		realPath = path
	}
	realPath = filepath.Clean(realPath)

	var (
		lastEvent     string
		lastEventTime time.Time
	)
	for {
		select {
		case event := <-watcher.Events:
			// Some platforms fire the same event multiple times.
			if event.String() == lastEvent && time.Since(lastEventTime) < 5*time.Millisecond {
				continue
			}
			lastEvent = event.String()
			lastEventTime = time.Now()

			if name := filepath.Clean(event.Name); name != realPath && name != path {
				continue
			}

			switch {
			case event.Has(fsnotify.Remove):
				f.logger.LogAttrs(ctx, slog.LevelWarn, "Config file has been removed.", slog.String("file", f.path))
				onChange(nil)
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
				values, err := f.Load()
				if err != nil {
					f.logger.LogAttrs(ctx, slog.LevelWarn, "Error when reloading config file.",
						slog.String("file", f.path), slog.Any("error", err))

					continue
				}
				onChange(values)
			}

		case err := <-watcher.Errors:
			f.logger.LogAttrs(ctx, slog.LevelWarn, "Error when watching file.",
				slog.String("file", f.path), slog.Any("error", err))

		case <-ctx.Done():
			return nil
		}
	}
}
