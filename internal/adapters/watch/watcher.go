package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/trebuchet-org/solconf/internal/logging"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

// DefaultDebounce collapses the burst of events one save produces
const DefaultDebounce = 500 * time.Millisecond

// FileWatcherAdapter implements ProjectWatcher with fsnotify
type FileWatcherAdapter struct {
	debounce time.Duration
}

// NewFileWatcherAdapter creates a new file watcher
func NewFileWatcherAdapter() *FileWatcherAdapter {
	return &FileWatcherAdapter{debounce: DefaultDebounce}
}

// Watch calls onChange once writes to path have settled. The parent
// directory is watched so editors that replace the file are still seen.
// onChange runs on the calling goroutine. Watch returns ctx.Err() when ctx ends.
func (w *FileWatcherAdapter) Watch(ctx context.Context, path string, onChange func()) error {
	path = filepath.Clean(path)
	logger := logging.WithComponent("watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	logger.Debug().Str("path", path).Msg("watching project file")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("project file changed")

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("watcher error")
		}
	}
}

var _ usecase.ProjectWatcher = (*FileWatcherAdapter)(nil)
