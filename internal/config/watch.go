package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadLag suppresses the bursts of filesystem events editors emit
// for a single save.
const reloadLag = 100 * time.Millisecond

// Update is one live-reload result. Either Cfg or Err is set.
type Update struct {
	Cfg *Config
	Err error
}

// Watcher watches a config file and delivers validated snapshots as it
// changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Update
	done    chan struct{}
}

// Watch starts watching the given config file. The containing
// directory is watched rather than the file itself so atomic saves
// (write to temp, rename over) keep working.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fsw,
		updates: make(chan Update, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Updates returns the channel of reload results. The channel holds at
// most one pending update; stale snapshots are replaced by newer ones.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Close stops watching. The updates channel delivers nothing afterwards.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	var lastReload time.Time
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if time.Since(lastReload) < reloadLag {
				continue
			}
			lastReload = time.Now()
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.push(Update{Err: fmt.Errorf("config watcher: %w", err)})
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.push(Update{Err: err})
		return
	}
	w.push(Update{Cfg: cfg})
}

// push delivers an update without blocking, dropping the stale pending
// one if the consumer has not caught up.
func (w *Watcher) push(u Update) {
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- u:
	case <-w.done:
	}
}
