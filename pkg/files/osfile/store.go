package osfile

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/filetug/ftbrowse/pkg/files"
	"github.com/sirupsen/logrus"
)

var osReadDir = os.ReadDir
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

// Store reads directories of the local file system.
type Store struct {
	title string
	root  string
}

func (s Store) RootURL() url.URL {
	return url.URL{
		Scheme: "file",
		Path:   s.root,
	}
}

func (s Store) RootTitle() string {
	return strings.TrimSuffix(s.title, ".station")
}

// ReadDir returns entries of the named directory in the order the OS yields
// them. Entry metadata is lstat based so symlinks are reported as such.
func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

func NewStore(root string) *Store {
	if root == "" {
		logrus.Warn("osfile store root is empty, defaulting to /")
		root = "/"
	}
	store := Store{root: root}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	store.title = "🖥️" + store.title
	return &store
}
