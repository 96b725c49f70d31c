package anchor

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ThemeWatcher watches a theme TOML file and reloads it on change, letting a
// running application restyle live. Reloaded themes are delivered through the
// callback; a file that fails to parse keeps the previous theme in effect.
type ThemeWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	path     string
	onReload func(*Theme)
	done     chan struct{}

	mu      sync.Mutex
	running bool
}

// NewThemeWatcher creates a watcher for the theme file at path.
func NewThemeWatcher(path string, onReload func(*Theme), logger *slog.Logger) (*ThemeWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &ThemeWatcher{
		watcher:  watcher,
		logger:   logger,
		path:     path,
		onReload: onReload,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching the theme file for changes.
func (tw *ThemeWatcher) Start() error {
	tw.mu.Lock()
	if tw.running {
		tw.mu.Unlock()
		return nil
	}
	tw.running = true
	tw.mu.Unlock()

	// Watch the directory containing the file (more reliable for
	// editors that replace the file on save)
	dir := filepath.Dir(tw.path)
	if err := tw.watcher.Add(dir); err != nil {
		return err
	}

	go tw.watch()
	return nil
}

// watch is the main watch loop.
func (tw *ThemeWatcher) watch() {
	filename := filepath.Base(tw.path)

	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				tw.reload()
			}

		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.logger.Warn("theme watcher error", "error", err)

		case <-tw.done:
			return
		}
	}
}

func (tw *ThemeWatcher) reload() {
	theme, err := LoadThemeFile(tw.path)
	if err != nil {
		tw.logger.Warn("theme file changed but failed to load", "file", tw.path, "error", err)
		return
	}
	tw.logger.Debug("theme reloaded", "file", tw.path)
	if tw.onReload != nil {
		tw.onReload(theme)
	}
}

// Stop stops the watcher.
func (tw *ThemeWatcher) Stop() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if !tw.running {
		return nil
	}
	tw.running = false
	close(tw.done)
	return tw.watcher.Close()
}
