// Package watcher reports markdown files changing under the notes directory.
package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/folio/internal/log"
	"github.com/zjrosen/folio/internal/pubsub"
)

// Event lists the notes touched during one debounce window. Paths are
// absolute and sorted.
type Event struct {
	Paths []string
}

// Config holds watcher configuration options.
type Config struct {
	Dir      string
	Debounce time.Duration
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:      dir,
		Debounce: 150 * time.Millisecond,
	}
}

// Watcher monitors a notes directory tree and publishes debounced events.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dir       string
	debounce  time.Duration
	broker    *pubsub.Broker[Event]
	done      chan struct{}
	stopOnce  sync.Once
}

// New creates a watcher for cfg.Dir. Nothing is watched until Start.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultConfig(cfg.Dir).Debounce
	}

	return &Watcher{
		fsWatcher: fsw,
		dir:       cfg.Dir,
		debounce:  debounce,
		broker:    pubsub.NewBroker[Event](),
		done:      make(chan struct{}),
	}, nil
}

// Events is where debounced changes are published.
func (w *Watcher) Events() pubsub.Subscriber[Event] {
	return w.broker
}

// Start adds the notes directory and every visible subdirectory, then
// begins processing events.
func (w *Watcher) Start() error {
	if err := w.addTree(w.dir); err != nil {
		return err
	}
	log.Debug(log.CatWatch, "Watching notes directory", "dir", w.dir)

	go w.loop()
	return nil
}

// Stop terminates the watcher and closes the broker. It is safe to call
// more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
		w.broker.Close()
	})
	return err
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.fsWatcher.Add(path); err != nil {
			return fmt.Errorf("watching directory %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending = make(map[string]struct{})
	)

	timerC := func() <-chan time.Time {
		if timer != nil {
			return timer.C
		}
		return nil
	}

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if event.Has(fsnotify.Create) && w.isNewDir(event.Name) {
				if err := w.addTree(event.Name); err != nil {
					log.ErrorErr(log.CatWatch, "Failed to watch new directory", err, "dir", event.Name)
				}
				continue
			}
			if !isRelevantEvent(event) {
				continue
			}
			pending[event.Name] = struct{}{}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC():
			timer = nil
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(pending)

			log.Debug(log.CatWatch, "Notes changed", "count", len(paths))
			w.broker.Publish(pubsub.UpdatedEvent, Event{Paths: paths})

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatch, "Watcher error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) isNewDir(path string) bool {
	if isHidden(filepath.Base(path)) {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isRelevantEvent keeps writes, creations, removals and renames of
// visible markdown files.
func isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(event.Name)
	return !isHidden(base) && strings.EqualFold(filepath.Ext(base), ".md")
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
