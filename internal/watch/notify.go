package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/drillhq/drill/internal/applog"
	"github.com/drillhq/drill/internal/exercise"
)

// defaultDebounce coalesces the write bursts editors produce on save.
const defaultDebounce = 200 * time.Millisecond

// FileWatcher monitors the exercise directories and forwards debounced
// file-change events carrying the changed exercise's index.
type FileWatcher struct {
	fw       *fsnotify.Watcher
	events   chan<- Event
	debounce time.Duration
	done     chan struct{}

	mu     sync.Mutex
	index  map[string]int // absolute exercise file path -> exercise index
	timers map[string]*time.Timer
}

// StartFileWatcher watches every exercise file's directory under root.
// A zero debounce uses the default.
func StartFileWatcher(root string, exercises []exercise.Exercise, events chan<- Event, debounce time.Duration) (*FileWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &FileWatcher{
		fw:       fw,
		events:   events,
		debounce: debounce,
		done:     make(chan struct{}),
		index:    make(map[string]int, len(exercises)),
		timers:   make(map[string]*time.Timer),
	}

	watched := make(map[string]bool)
	for i := range exercises {
		path, err := filepath.Abs(filepath.Join(root, exercises[i].Path()))
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("resolve %s: %w", exercises[i].Path(), err)
		}
		w.index[path] = i

		dir := filepath.Dir(path)
		if !watched[dir] {
			if err := fw.Add(dir); err != nil {
				fw.Close()
				return nil, fmt.Errorf("watch %s: %w", dir, err)
			}
			watched[dir] = true
		}
	}

	go w.loop()
	return w, nil
}

// Stop shuts the watcher down. Pending debounce timers are dropped.
func (w *FileWatcher) Stop() error {
	close(w.done)
	err := w.fw.Close()

	w.mu.Lock()
	for _, t := range w.timers {
		t.Stop()
	}
	w.mu.Unlock()

	return err
}

func (w *FileWatcher) loop() {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.handleWrite(event.Name)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			applog.Log.Error("file watcher error", "error", err)
			if !emit(w.events, NotifyErrEvent{Err: err}, w.done) {
				return
			}

		case <-w.done:
			return
		}
	}
}

// handleWrite debounces rapid writes per file and forwards the change
// once the burst settles.
func (w *FileWatcher) handleWrite(name string) {
	path, err := filepath.Abs(name)
	if err != nil {
		path = name
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	ind, ok := w.index[path]
	if !ok {
		return
	}

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		applog.Log.Debug("exercise file changed", "path", path, "index", ind)
		emit(w.events, FileChangeEvent{ExerciseInd: ind}, w.done)
	})
}
