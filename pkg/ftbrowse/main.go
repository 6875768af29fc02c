package ftbrowse

import (
	"context"

	"github.com/filetug/ftbrowse/pkg/browser"
	"github.com/filetug/ftbrowse/pkg/files"
	"github.com/filetug/ftbrowse/pkg/ftbrowse/ftapp"
	"github.com/filetug/ftbrowse/pkg/ftbrowse/ftstate"
	"github.com/filetug/ftbrowse/pkg/ftbrowse/ftwatch"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Store    files.Store
	StartDir string
	// ResumeDir is tried before StartDir when not empty.
	ResumeDir string
	Styles    Styles
	// Watch refreshes the listing on changes; local stores only.
	Watch bool
	// SaveState remembers the current directory for the next run.
	SaveState bool
}

var saveCurrentDir = ftstate.SaveCurrentDir

var newWatcher = ftwatch.New

// SetupApp lists the start directory and mounts a Browser as the root of app.
// An error means the start directory can not be listed. The returned func
// releases resources held by the browser.
func SetupApp(ctx context.Context, app ftapp.App, cfg Config) (b *Browser, cleanup func(), err error) {
	state, err := newState(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	options := []BrowserOption{
		WithContext(ctx),
		WithStyles(cfg.Styles),
	}
	cleanup = func() {}

	if cfg.SaveState {
		root := cfg.Store.RootURL()
		root.User = nil
		storeURL := root.String()
		options = append(options, OnDirChanged(func(dir string) {
			saveCurrentDir(storeURL, dir)
		}))
	}

	if cfg.Watch && files.IsLocal(cfg.Store) {
		watcher, err := newWatcher(func(dir string) {
			app.QueueUpdateDraw(func() {
				b.RefreshDir(dir)
			})
		}, ftwatch.DefaultDebounce)
		if err != nil {
			logrus.WithError(err).Warn("directory watching is disabled")
		} else {
			watcher.Start()
			cleanup = func() {
				_ = watcher.Stop()
			}
			options = append(options, OnDirChanged(func(dir string) {
				if err := watcher.Watch(dir); err != nil {
					logrus.WithError(err).WithField("dir", dir).Warn("failed to watch directory")
				}
			}))
		}
	}

	b = NewBrowser(app, state, options...)
	app.SetRoot(b, true)
	return b, cleanup, nil
}

func newState(ctx context.Context, cfg Config) (*browser.State, error) {
	if cfg.ResumeDir != "" && cfg.ResumeDir != cfg.StartDir {
		state, err := browser.New(ctx, cfg.Store, cfg.ResumeDir)
		if err == nil {
			return state, nil
		}
		logrus.WithError(err).WithField("dir", cfg.ResumeDir).Info("can not resume, using start dir")
	}
	return browser.New(ctx, cfg.Store, cfg.StartDir)
}

// ResumeDir returns the directory saved by the previous run when it was
// browsing the same store.
func ResumeDir(store files.Store) string {
	state, err := getState()
	if err != nil {
		logrus.WithError(err).Warn("failed to read saved state")
		return ""
	}
	root := store.RootURL()
	root.User = nil
	if state == nil || state.Store != root.String() {
		return ""
	}
	return state.CurrentDir
}

var getState = ftstate.GetState
