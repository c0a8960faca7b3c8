package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/closewatch/closewatch/internal/colors"
)

// FilePath returns the path of the config file Load reads, whether or not
// the file exists yet.
func FilePath() string {
	if p := os.Getenv("CLOSEWATCH_CONFIG_PATH"); p != "" {
		return p
	}
	return filepath.Join(Get("config_dir", ""), "config"+FileExtTOML)
}

// Watcher reloads the configuration when the config file changes on disk.
// Reloads are debounced by the watch_debounce setting so editors that write
// in bursts trigger a single reload.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	debounce time.Duration
	onReload func()
	done     chan struct{}

	mu      sync.Mutex
	timer   *time.Timer
	running bool
}

// NewWatcher creates a watcher for the active config file. onReload runs
// after each completed reload and may be nil.
func NewWatcher(onReload func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	debounce, err := time.ParseDuration(Get("watch_debounce", "200ms"))
	if err != nil || debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	return &Watcher{
		watcher:  fw,
		filePath: FilePath(),
		debounce: debounce,
		onReload: onReload,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. The watch is on the directory rather than the file
// itself, which keeps it alive across the rename-and-replace writes editors
// do.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.filePath)); err != nil {
		return err
	}
	go w.watch()
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	filename := filepath.Base(w.filePath)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// Only care about our file
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			colors.Debug(fmt.Sprintf("config watcher error: %v", err))

		case <-w.done:
			return
		}
	}
}

// schedule arms the reload timer, collapsing a burst of writes into one
// reload.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Reset(w.debounce)
		return
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.mu.Unlock()

	colors.Debug(fmt.Sprintf("config file changed, reloading: %s", w.filePath))
	Load()
	if w.onReload != nil {
		w.onReload()
	}
}

// Stop stops the watcher and releases its fsnotify handle.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return nil
	}
	w.running = false
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	close(w.done)
	return w.watcher.Close()
}
