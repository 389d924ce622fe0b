package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrNoPath is returned when watching settings loaded without a file.
var ErrNoPath = errors.New("settings have no file to watch")

// Watcher reloads Settings when the backing file changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// Watch starts reloading s whenever its file is written, created or
// renamed into place. onReload, if set, runs after each successful reload.
// The watcher stops when ctx is done or Close is called.
func (s *Settings) Watch(ctx context.Context, onReload func()) (*Watcher, error) {
	if s.path == "" {
		return nil, ErrNoPath
	}

	target, err := filepath.Abs(s.path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory: editors often replace the file rather than write it.
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	w := &Watcher{
		watcher: fsw,
		closeCh: make(chan struct{}),
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.loop(ctx, s, target, onReload)
	}()

	return w, nil
}

func (w *Watcher) loop(ctx context.Context, s *Settings, target string, onReload func()) {
	for {
		select {
		case <-ctx.Done():
			return

		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := s.Reload(); err != nil {
				s.log().Warn("config reload failed; keeping previous settings",
					zap.String("path", target), zap.Error(err))
				continue
			}
			s.log().Info("config reloaded", zap.String("path", target))
			if onReload != nil {
				onReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			s.log().Warn("config watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher and waits for it to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		w.wg.Wait()
		err = w.watcher.Close()
	})
	return err
}
