package dirsource

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gladeworks/depot/pkg/asset"
)

// debounceDelay coalesces the write bursts editors and atomic-save tools
// produce into one refresh per path.
const debounceDelay = 200 * time.Millisecond

// Watcher propagates file writes under a Dir back into an asset source.
// It refreshes only handles the source has already cached, so the
// registry's reload bus fires for live assets and nothing else.
type Watcher struct {
	dir    *Dir
	source *asset.Source
	fsw    *fsnotify.Watcher
	log    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	timersMu sync.Mutex
	timers   map[string]*time.Timer
}

// NewWatcher creates a watcher pairing dir with the source mounted on it.
func NewWatcher(dir *Dir, source *asset.Source) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		dir:    dir,
		source: source,
		fsw:    fsw,
		log:    slog.Default(),
		ctx:    ctx,
		cancel: cancel,
		timers: make(map[string]*time.Timer),
	}, nil
}

// Start begins watching the root tree. Subdirectories present now are
// watched immediately; directories created later are added as their create
// events arrive.
func (w *Watcher) Start() error {
	err := filepath.WalkDir(w.dir.root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return w.fsw.Add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", w.dir.root, err)
	}

	w.wg.Add(1)
	go w.loop()
	return nil
}

// Stop cancels the watch loop and waits for it to exit. Pending debounce
// timers are stopped; a refresh already in flight completes.
func (w *Watcher) Stop() error {
	w.cancel()
	err := w.fsw.Close()
	w.wg.Wait()

	w.timersMu.Lock()
	for _, t := range w.timers {
		t.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	w.timersMu.Unlock()

	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Debug("asset watcher error", "root", w.dir.root, "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.fsw.Add(event.Name); err != nil {
				w.log.Debug("watch new directory", "path", event.Name, "error", err)
			}
			return
		}
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	rel, err := filepath.Rel(w.dir.root, event.Name)
	if err != nil {
		return
	}
	w.scheduleRefresh(asset.NormalizePath(filepath.ToSlash(rel)))
}

// scheduleRefresh debounces rapid write bursts per path before asking the
// source to refresh.
func (w *Watcher) scheduleRefresh(rel string) {
	w.timersMu.Lock()
	defer w.timersMu.Unlock()

	if t, ok := w.timers[rel]; ok {
		t.Reset(debounceDelay)
		return
	}
	w.timers[rel] = time.AfterFunc(debounceDelay, func() {
		w.timersMu.Lock()
		delete(w.timers, rel)
		w.timersMu.Unlock()

		if err := w.source.Refresh(rel); err != nil {
			w.log.Warn("asset refresh", "path", rel, "error", err)
		}
	})
}
