package config

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the profile when the file is modified outside the
// application, e.g. by a hand edit while the browser is running.
type Watcher struct {
	watcher  *fsnotify.Watcher
	store    *Store
	onReload func(*Profile)
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewWatcher creates a watcher for the store's profile file. onReload is
// invoked with a fresh snapshot after every successful reload; it may be nil.
func NewWatcher(store *Store, onReload func(*Profile)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  watcher,
		store:    store,
		onReload: onReload,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching the profile file for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the containing directory; editors replace files on save, which
	// would drop a watch on the file itself.
	dir := filepath.Dir(w.store.Path())
	if dir == "" {
		dir = "."
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.watch()
	return nil
}

// watch is the main watch loop.
func (w *Watcher) watch() {
	filename := filepath.Base(w.store.Path())

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				log.Printf("Profile file changed on disk, reloading: %s", w.store.Path())
				if err := w.store.Load(); err != nil {
					log.Printf("Failed to reload profile: %v", err)
					continue
				}
				if w.onReload != nil {
					w.onReload(w.store.Snapshot())
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Profile watcher error: %v", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher and releases its resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.done)
	return w.watcher.Close()
}
