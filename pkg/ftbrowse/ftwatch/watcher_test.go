package ftwatch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 3 * time.Second

func newTestWatcher(t *testing.T) (*Watcher, chan string) {
	t.Helper()
	changes := make(chan string, 10)
	w, err := New(func(dir string) { changes <- dir }, 20*time.Millisecond)
	require.NoError(t, err)
	w.Start()
	t.Cleanup(func() { _ = w.Stop() })
	return w, changes
}

func TestWatcher_NotifiesOnCreate(t *testing.T) {
	dir := t.TempDir()
	w, changes := newTestWatcher(t)
	require.NoError(t, w.Watch(dir))
	assert.Equal(t, filepath.Clean(dir), w.Dir())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0o644))

	select {
	case changed := <-changes:
		assert.Equal(t, filepath.Clean(dir), changed)
	case <-time.After(waitTimeout):
		t.Fatal("expected change notification")
	}
}

func TestWatcher_SwitchesDir(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	w, changes := newTestWatcher(t)
	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))
	require.NoError(t, w.Watch(second))
	assert.Equal(t, filepath.Clean(second), w.Dir())

	require.NoError(t, os.WriteFile(filepath.Join(second, "x"), nil, 0o644))
	select {
	case changed := <-changes:
		assert.Equal(t, filepath.Clean(second), changed)
	case <-time.After(waitTimeout):
		t.Fatal("expected change notification for the new dir")
	}
}

func TestWatcher_WatchMissingDir(t *testing.T) {
	w, _ := newTestWatcher(t)
	err := w.Watch(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
	assert.Equal(t, "", w.Dir())
}

func TestWatcher_IgnoresUnrelatedEvents(t *testing.T) {
	called := false
	w := &Watcher{
		onChange: func(string) { called = true },
		debounce: time.Millisecond,
		dir:      "/watched",
		done:     make(chan struct{}),
	}
	w.handleEvent(fsnotify.Event{Name: "/elsewhere/file", Op: fsnotify.Create})
	w.handleEvent(fsnotify.Event{Name: "/watched/file", Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: "/watched/file", Op: fsnotify.Chmod})
	time.Sleep(20 * time.Millisecond)
	assert.False(t, called)
	assert.Nil(t, w.timer)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := New(func(string) {}, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)
	w.Start()
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestNew_Error(t *testing.T) {
	origNewFsWatcher := newFsWatcher
	defer func() { newFsWatcher = origNewFsWatcher }()
	newFsWatcher = func() (*fsnotify.Watcher, error) {
		return nil, errors.New("too many open files")
	}
	w, err := New(func(string) {}, 0)
	assert.Nil(t, w)
	assert.ErrorContains(t, err, "failed to create fsnotify watcher")
}
