package files

//go:generate mockgen -destination=filesmocks/mock_store.go -package=filesmocks github.com/filetug/ftbrowse/pkg/files Store

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
)

// Store is a source of directory listings: the local disk or a remote server.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
}

// IsLocal reports whether paths of the store are OS paths.
func IsLocal(store Store) bool {
	if store == nil {
		return false
	}
	root := store.RootURL()
	return root.Scheme == "file"
}

// JoinPath returns the path of child name inside dir.
func JoinPath(store Store, dir, name string) string {
	if IsLocal(store) {
		return filepath.Join(dir, name)
	}
	return path.Join(dir, name)
}

// ParentDir returns the parent of dir. The root is its own parent.
func ParentDir(store Store, dir string) string {
	if IsLocal(store) {
		return filepath.Dir(dir)
	}
	return path.Dir(dir)
}

// BaseName returns the last element of p.
func BaseName(store Store, p string) string {
	if IsLocal(store) {
		return filepath.Base(p)
	}
	return path.Base(p)
}
