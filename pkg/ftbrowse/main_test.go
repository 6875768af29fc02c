package ftbrowse

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/filetug/ftbrowse/pkg/files/filesmocks"
	"github.com/filetug/ftbrowse/pkg/ftbrowse/ftapp"
	"github.com/filetug/ftbrowse/pkg/ftbrowse/ftapp/ftappmocks"
	"github.com/filetug/ftbrowse/pkg/ftbrowse/ftstate"
	"github.com/filetug/ftbrowse/pkg/ftbrowse/ftwatch"
	"github.com/filetug/ftbrowse/pkg/listing"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSetupApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	app := ftappmocks.NewMockApp(ctrl)
	root := newTestTree(t)

	var mounted tview.Primitive
	app.EXPECT().SetRoot(gomock.Any(), true).Do(func(p tview.Primitive, _ bool) {
		mounted = p
	})

	b, cleanup, err := SetupApp(context.Background(), app, Config{
		Store:    testStore,
		StartDir: root,
		Styles:   DefaultStyles,
	})
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	defer cleanup()
	assert.Same(t, b, mounted)
	assert.Equal(t, root, b.State().Path())
	assert.Equal(t, 2, b.State().Listing().Len())
}

func TestSetupApp_UnreadableStartDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	app := ftappmocks.NewMockApp(ctrl)
	missing := filepath.Join(t.TempDir(), "missing")

	b, cleanup, err := SetupApp(context.Background(), app, Config{
		Store:    testStore,
		StartDir: missing,
	})
	assert.Nil(t, b)
	assert.Nil(t, cleanup)
	assert.ErrorIs(t, err, listing.ErrListingUnavailable)
}

func TestSetupApp_Resume(t *testing.T) {
	root := newTestTree(t)
	resumeDir := filepath.Join(root, "a")

	t.Run("resumes_saved_dir", func(t *testing.T) {
		b, _, err := SetupApp(context.Background(), newTestApp(), Config{
			Store:     testStore,
			StartDir:  root,
			ResumeDir: resumeDir,
		})
		require.NoError(t, err)
		assert.Equal(t, resumeDir, b.State().Path())
	})

	t.Run("falls_back_to_start_dir", func(t *testing.T) {
		b, _, err := SetupApp(context.Background(), newTestApp(), Config{
			Store:     testStore,
			StartDir:  root,
			ResumeDir: filepath.Join(root, "gone"),
		})
		require.NoError(t, err)
		assert.Equal(t, root, b.State().Path())
	})
}

func TestSetupApp_SaveState(t *testing.T) {
	root := newTestTree(t)
	type saved struct{ store, dir string }
	var calls []saved
	defer func(orig func(store, dir string)) { saveCurrentDir = orig }(saveCurrentDir)
	saveCurrentDir = func(store, dir string) {
		calls = append(calls, saved{store, dir})
	}

	ctrl := gomock.NewController(t)
	store := filesmocks.NewMockStore(ctrl)
	store.EXPECT().RootURL().Return(url.URL{
		Scheme: "ftp",
		User:   url.UserPassword("user", "secret"),
		Host:   "example.com",
	}).AnyTimes()
	store.EXPECT().RootTitle().Return("example.com").AnyTimes()
	store.EXPECT().ReadDir(gomock.Any(), "/pub").Return(nil, nil)

	_, _, err := SetupApp(context.Background(), newTestApp(), Config{
		Store:     store,
		StartDir:  "/pub",
		SaveState: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []saved{{store: "ftp://example.com", dir: "/pub"}}, calls)

	calls = nil
	b, _, err := SetupApp(context.Background(), newTestApp(), Config{
		Store:     testStore,
		StartDir:  root,
		SaveState: true,
	})
	require.NoError(t, err)
	selectName(t, b, "a")
	b.Dispatch(ActionEnter)
	b.Dispatch(ActionGoUp)
	assert.Equal(t, []saved{
		{store: "file:///", dir: root},
		{store: "file:///", dir: filepath.Join(root, "a")},
		{store: "file:///", dir: root},
	}, calls)
}

func TestSetupApp_WatcherUnavailable(t *testing.T) {
	defer func(orig func(ftwatch.Callback, time.Duration) (*ftwatch.Watcher, error)) { newWatcher = orig }(newWatcher)
	newWatcher = func(ftwatch.Callback, time.Duration) (*ftwatch.Watcher, error) {
		return nil, errors.New("too many open files")
	}

	b, cleanup, err := SetupApp(context.Background(), newTestApp(), Config{
		Store:    testStore,
		StartDir: newTestTree(t),
		Watch:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.NotPanics(t, cleanup)
}

func TestSetupApp_WatchRefreshesListing(t *testing.T) {
	root := newTestTree(t)
	queued := make(chan func(), 16)
	app := ftapp.NewApp(nil,
		ftapp.WithSetRoot(func(tview.Primitive, bool) {}),
		ftapp.WithQueueUpdateDraw(func(f func()) { queued <- f }),
	)
	defer func(orig func(ftwatch.Callback, time.Duration) (*ftwatch.Watcher, error)) { newWatcher = orig }(newWatcher)
	newWatcher = func(onChange ftwatch.Callback, _ time.Duration) (*ftwatch.Watcher, error) {
		return ftwatch.New(onChange, 10*time.Millisecond)
	}

	b, cleanup, err := SetupApp(context.Background(), app, Config{
		Store:    testStore,
		StartDir: root,
		Watch:    true,
	})
	require.NoError(t, err)
	defer cleanup()

	require.NoError(t, os.WriteFile(filepath.Join(root, "new.txt"), nil, 0o644))
	select {
	case f := <-queued:
		f()
	case <-time.After(5 * time.Second):
		t.Fatal("no refresh was queued")
	}
	assert.Equal(t, 3, b.State().Listing().Len())
}

func TestResumeDir(t *testing.T) {
	defer func(orig func() (*ftstate.State, error)) { getState = orig }(getState)

	t.Run("same_store", func(t *testing.T) {
		getState = func() (*ftstate.State, error) {
			return &ftstate.State{Store: "file:///", CurrentDir: "/home/user"}, nil
		}
		assert.Equal(t, "/home/user", ResumeDir(testStore))
	})

	t.Run("other_store", func(t *testing.T) {
		getState = func() (*ftstate.State, error) {
			return &ftstate.State{Store: "ftp://example.com", CurrentDir: "/pub"}, nil
		}
		assert.Equal(t, "", ResumeDir(testStore))
	})

	t.Run("read_error", func(t *testing.T) {
		getState = func() (*ftstate.State, error) {
			return nil, errors.New("corrupted")
		}
		assert.Equal(t, "", ResumeDir(testStore))
	})
}
