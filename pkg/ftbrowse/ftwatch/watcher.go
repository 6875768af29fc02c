// Package ftwatch notifies about changes of the directory being browsed.
package ftwatch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const DefaultDebounce = 150 * time.Millisecond

// Callback is called from the watcher goroutine with the directory that
// changed.
type Callback func(dir string)

// Watcher watches one directory at a time. Bursts of events are collapsed
// into a single callback.
type Watcher struct {
	watcher  *fsnotify.Watcher
	onChange Callback
	debounce time.Duration

	mu    sync.Mutex
	dir   string
	timer *time.Timer

	done chan struct{}
	once sync.Once
}

var newFsWatcher = fsnotify.NewWatcher

func New(onChange Callback, debounce time.Duration) (*Watcher, error) {
	w, err := newFsWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		watcher:  w,
		onChange: onChange,
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// Watch switches the watcher to dir.
func (w *Watcher) Watch(dir string) error {
	dir = filepath.Clean(dir)
	w.mu.Lock()
	defer w.mu.Unlock()
	if dir == w.dir {
		return nil
	}
	if w.dir != "" {
		if err := w.watcher.Remove(w.dir); err != nil {
			logrus.WithError(err).WithField("dir", w.dir).Debug("ftwatch: failed to remove watch")
		}
	}
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.dir = ""
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.dir = dir
	logrus.WithField("dir", dir).Debug("ftwatch: watching directory")
	return nil
}

// Dir returns the directory being watched.
func (w *Watcher) Dir() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dir
}

func (w *Watcher) Start() {
	go w.eventLoop()
}

func (w *Watcher) Stop() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.done:
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
			logrus.WithError(err).Warn("ftwatch: watcher error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	name := filepath.Clean(event.Name)
	if w.dir == "" || (filepath.Dir(name) != w.dir && name != w.dir) {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	dir := w.dir
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case <-w.done:
			return
		default:
		}
		w.onChange(dir)
	})
}
