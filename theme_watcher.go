package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ThemeWatcher reloads a theme file whenever it changes on disk. Reloaded
// themes are handed over on Themes; the frame loop applies them, so
// widgets are never touched from the watcher goroutine. A file that fails
// to parse is logged and skipped.
type ThemeWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	themes  chan *Theme
	logger  *slog.Logger
	done    chan struct{}
	once    sync.Once
}

// WatchTheme starts watching path. The directory is watched rather than
// the file so saves that replace the file are seen.
func WatchTheme(path string, logger *slog.Logger) (*ThemeWatcher, error) {
	if logger == nil {
		logger = defaultLogger
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch theme %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch theme: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch theme %s: %w", path, err)
	}
	tw := &ThemeWatcher{
		path:    abs,
		watcher: w,
		themes:  make(chan *Theme, 1),
		logger:  logger,
		done:    make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

// Themes delivers reloaded themes. Only the newest pending theme is kept.
func (tw *ThemeWatcher) Themes() <-chan *Theme { return tw.themes }

// Path returns the watched file.
func (tw *ThemeWatcher) Path() string { return tw.path }

// Close stops watching. It is safe to call more than once.
func (tw *ThemeWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.done)
		err = tw.watcher.Close()
	})
	return err
}

func (tw *ThemeWatcher) run() {
	for {
		select {
		case <-tw.done:
			return
		case ev, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != tw.path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			t, err := LoadTheme(tw.path)
			if err != nil {
				tw.logger.Warn("theme reload failed", "err", err)
				continue
			}
			tw.logger.Info("theme reloaded", "path", tw.path, "name", t.Name)
			tw.publish(t)
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.logger.Error("theme watcher error", "err", err)
		}
	}
}

// publish replaces any theme the frame loop has not picked up yet.
func (tw *ThemeWatcher) publish(t *Theme) {
	for {
		select {
		case tw.themes <- t:
			return
		default:
		}
		select {
		case <-tw.themes:
		default:
		}
	}
}
