package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/avelis/countdowntab/internal/model"
)

// PrefChange is emitted when a preference key changes on disk, so every open
// surface can re-apply theme and mode without polling.
type PrefChange struct {
	Key      string
	NewValue string
}

// dirBackend exposes a backend's directory for change watching. Backends that
// do not live on the filesystem simply are not watched.
type dirBackend interface {
	BaseDir() string
}

func (b *diskvBackend) BaseDir() string { return b.base }

// WatchPrefs streams preference changes until ctx is cancelled. Callers should
// drain the returned channel; bursts are dropped rather than allowed to block
// the watcher. The channel is closed once ctx is done.
func (s *Store) WatchPrefs(ctx context.Context) (<-chan PrefChange, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}

	watched := 0
	for _, b := range s.backends {
		db, ok := b.(dirBackend)
		if !ok {
			continue
		}
		dir := db.BaseDir()
		if err := os.MkdirAll(dir, 0o700); err != nil {
			continue
		}
		if err := watcher.Add(dir); err == nil {
			watched++
		}
	}
	if watched == 0 {
		if cerr := watcher.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", cerr)
		}
		return nil, errors.New("store: no watchable storage directories")
	}

	changes := make(chan PrefChange, 8)
	last := map[string]string{
		KeyTheme: s.Theme(),
		KeyMode:  s.Mode(),
	}

	go func() {
		defer close(changes)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := filepath.Base(evt.Name)
				if key != KeyTheme && key != KeyMode {
					continue
				}
				value := s.prefWithDefault(key)
				if value == last[key] {
					continue
				}
				last[key] = value
				select {
				case changes <- PrefChange{Key: key, NewValue: value}:
				default:
					// Drop when the consumer lags; the next change or its own
					// refresh tick brings it back in sync.
				}
			}
		}
	}()

	return changes, nil
}

func (s *Store) prefWithDefault(key string) string {
	switch key {
	case KeyTheme:
		return s.pref(key, model.DefaultTheme)
	default:
		return s.pref(key, model.DefaultMode)
	}
}
