package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// PresetsWatcher reloads a presets file whenever it is written.
type PresetsWatcher struct {
	path    string
	logger  *zap.Logger
	watcher *fsnotify.Watcher
}

// WatchPresets starts watching path. The watch is registered before it
// returns, so writes made after this call are seen by Run.
//
// The parent directory is watched rather than the file: a save that renames
// a temp file over path replaces the inode, and a watch on the old inode
// would never fire again.
func WatchPresets(path string, logger *zap.Logger) (*PresetsWatcher, error) {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("presets: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PresetsWatcher{path: path, logger: logger, watcher: w}, nil
}

// Run calls onChange with each successfully reloaded file until ctx is
// cancelled. A file that fails to load is logged and the previous presets
// stay in effect.
func (pw *PresetsWatcher) Run(ctx context.Context, onChange func(*Presets)) error {
	defer pw.watcher.Close()
	pw.logger.Info("watching presets", zap.String("path", pw.path))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-pw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != pw.path {
				continue
			}
			// A rename onto path arrives as Create; in-place saves as Write.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			p, err := LoadPresets(pw.path)
			if err != nil {
				pw.logger.Error("presets reload failed, keeping previous", zap.String("path", pw.path), zap.Error(err))
				continue
			}
			pw.logger.Info("presets reloaded", zap.String("path", pw.path), zap.Int("roles", len(p.Roles)))
			onChange(p)

		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return nil
			}
			pw.logger.Error("presets watcher error", zap.Error(err))
		}
	}
}
