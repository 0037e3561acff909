package intentfile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single intents file.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func()
	logger   *slog.Logger
}

// NewWatcher starts watching path. The parent directory is watched rather than the
// file itself so that editors which save by rename-and-replace are still seen.
func NewWatcher(path string, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve intents path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch intents directory: %w", err)
	}

	return &Watcher{
		path:     abs,
		watcher:  fw,
		onChange: onChange,
		logger:   slog.Default().With("path", abs),
	}, nil
}

// Run delivers change notifications until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	w.logger.Info("intents file watcher started")

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			w.logger.Info("intents file changed", "op", event.Op.String())
			w.onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("intents file watcher error", "error", err)
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
