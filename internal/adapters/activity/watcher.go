package activity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

// FileWatcher turns writes under the watched paths into key-press activity,
// so editing files in a watched workspace keeps the session alive.
type FileWatcher struct {
	hub   *Hub
	paths []string
	log   zerolog.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewFileWatcher(hub *Hub, paths []string, logger zerolog.Logger) *FileWatcher {
	return &FileWatcher{
		hub:   hub,
		paths: paths,
		log:   logger.With().Str("component", "activity.watcher").Logger(),
	}
}

// Start watches every path until ctx is done or Close is called.
func (w *FileWatcher) Start(ctx context.Context) error {
	if len(w.paths) == 0 {
		return errors.New("no paths to watch")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher != nil {
		return errors.New("file watcher already started")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	for _, path := range w.paths {
		if err := watcher.Add(path); err != nil {
			_ = watcher.Close()
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	w.watcher = watcher
	w.done = make(chan struct{})
	go w.loop(ctx, watcher, w.done)

	w.log.Debug().Strs("paths", w.paths).Msg("watching files for activity")
	return nil
}

// Close stops the watcher and waits for its loop to exit.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	watcher, done := w.watcher, w.done
	w.watcher, w.done = nil, nil
	w.mu.Unlock()

	if watcher == nil {
		return nil
	}
	err := watcher.Close()
	<-done
	return err
}

func (w *FileWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			_ = watcher.Close()
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.hub.Publish(domain.ActivityKeyPress)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("file watcher error")
		}
	}
}
