package tracker

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when no debounce is configured
const DefaultDebounce = 250 * time.Millisecond

// Handlers receive debounced change notifications. Calls are serialized.
type Handlers struct {
	OnState func(State)
	OnStyle func()
	OnError func(error)
}

// Watcher watches the state file and the style file
type Watcher struct {
	watcher   *fsnotify.Watcher
	stateFile string
	styleFile string
	debounce  time.Duration
	handlers  Handlers
	logger    *slog.Logger
	stopCh    chan struct{}
	doneCh    chan struct{}
	stopOnce  sync.Once
	started   atomic.Bool
}

// NewWatcher creates a watcher. styleFile may be empty.
func NewWatcher(stateFile, styleFile string, debounce time.Duration, handlers Handlers, logger *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:   fw,
		stateFile: filepath.Clean(stateFile),
		debounce:  debounce,
		handlers:  handlers,
		logger:    logger,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	if styleFile != "" {
		w.styleFile = filepath.Clean(styleFile)
	}

	// fsnotify works better with directories: editors replace files on save
	dirs := map[string]bool{filepath.Dir(w.stateFile): true}
	if w.styleFile != "" {
		dirs[filepath.Dir(w.styleFile)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	return w, nil
}

// Start begins watching
func (w *Watcher) Start() {
	if w.started.CompareAndSwap(false, true) {
		go w.watchLoop()
	}
}

// Stop stops the watcher and waits for the loop to exit
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.watcher.Close()
	})
	if w.started.Load() {
		<-w.doneCh
	}
}

func (w *Watcher) watchLoop() {
	defer close(w.doneCh)

	stateTimer := time.NewTimer(0)
	<-stateTimer.C
	styleTimer := time.NewTimer(0)
	<-styleTimer.C

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			switch filepath.Clean(event.Name) {
			case w.stateFile:
				stateTimer.Reset(w.debounce)
			case w.styleFile:
				styleTimer.Reset(w.debounce)
			}

		case <-stateTimer.C:
			state, err := LoadState(w.stateFile)
			if err != nil {
				w.fail(err)
				continue
			}
			if w.handlers.OnState != nil {
				w.handlers.OnState(state)
			}

		case <-styleTimer.C:
			if w.handlers.OnStyle != nil {
				w.handlers.OnStyle()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.fail(err)
		}
	}
}

func (w *Watcher) fail(err error) {
	if w.handlers.OnError != nil {
		w.handlers.OnError(err)
		return
	}
	w.logger.Warn("watcher error", "error", err)
}
