package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/isologo"
)

// Watch reloads path whenever it changes and calls fn with the result, or
// with the load error. It blocks until ctx is done.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file on save keep triggering reloads.
func Watch(ctx context.Context, path string, fn func(*Config, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	isologo.Logger().Info("config: watching", "path", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, abs) {
				continue
			}
			cfg, err := Load(abs)
			if err != nil {
				isologo.Logger().Warn("config: reload rejected", "path", abs, "err", err)
			} else {
				isologo.Logger().Info("config: reloaded", "path", abs)
			}
			fn(cfg, err)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			isologo.Logger().Warn("config: watcher error", "err", err)
		}
	}
}

func relevant(e fsnotify.Event, abs string) bool {
	if filepath.Clean(e.Name) != abs {
		return false
	}
	return e.Has(fsnotify.Write) || e.Has(fsnotify.Create)
}
