// Package watch reports changes to a profile's store files.
package watch

import (
	"context"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/logging"
)

// DefaultDebounce is how long a store must stay quiet before a change is
// reported. The host rewrites stores in several quick writes.
const DefaultDebounce = 250 * time.Millisecond

// ChangeFunc receives the store paths, relative to the profile directory,
// that changed since the last call. Paths are sorted.
type ChangeFunc func(stores []string)

// Watcher watches the directories holding a set of stores.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	profileDir  string
	stores      map[string]string // absolute path -> store path
	onChange    ChangeFunc
	log         logging.Logger
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// New creates a watcher for stores under profileDir. Store paths use
// forward slashes, as in finder.EventsStore.
func New(profileDir string, stores []string, onChange ChangeFunc, log logging.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Nop()
	}

	w := &Watcher{
		watcher:     fw,
		profileDir:  profileDir,
		stores:      make(map[string]string, len(stores)),
		onChange:    onChange,
		log:         log,
		debounceMap: make(map[string]time.Time),
		debounceDur: DefaultDebounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	for _, s := range stores {
		w.stores[filepath.Join(profileDir, filepath.FromSlash(s))] = s
	}
	return w, nil
}

// SetDebounce changes the quiet period. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounceDur = d
}

// Dirs returns the directories that Start will watch.
func (w *Watcher) Dirs() []string {
	dirs := []string{w.profileDir}
	for abs := range w.stores {
		dir := filepath.Dir(abs)
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	slices.Sort(dirs[1:])
	return dirs
}

// Start begins watching. It does not block. Directories that do not exist
// are logged and skipped.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	for _, dir := range w.Dirs() {
		if err := w.watcher.Add(dir); err != nil {
			w.log.Warnf("Not watching %s: %v", dir, err)
			continue
		}
		w.log.Debugf("Watching %s", dir)
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit. Stop is safe
// to call more than once, and without Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.log.Errorf("Error closing watcher: %v", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounceDur / 4
	if tick <= 0 {
		tick = time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnf("Watcher error: %v", err)
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	store, ok := w.stores[filepath.Clean(event.Name)]
	if !ok {
		return
	}

	w.log.Debugf("%s event for %s", event.Op, store)
	w.mu.Lock()
	w.debounceMap[store] = time.Now()
	w.mu.Unlock()
}

// flush reports every store that has been quiet for the debounce period.
func (w *Watcher) flush() {
	w.mu.Lock()
	now := time.Now()
	var settled []string
	for store, at := range w.debounceMap {
		if now.Sub(at) >= w.debounceDur {
			settled = append(settled, store)
			delete(w.debounceMap, store)
		}
	}
	w.mu.Unlock()

	if len(settled) == 0 || w.onChange == nil {
		return
	}
	slices.Sort(settled)
	w.onChange(settled)
}
