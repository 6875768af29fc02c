// Package listing reads a directory of a files.Store into an ordered list of
// classified entries.
package listing

import (
	"context"
	"path/filepath"

	"github.com/filetug/ftbrowse/pkg/files"
	"github.com/sirupsen/logrus"
)

// Entry is one child of a listed directory.
type Entry struct {
	Path string
	Kind EntryKind
}

// Listing is the set of immediate children of Path captured by one Build.
// Entries keep the order the store returned them in.
type Listing struct {
	Path    string
	Entries []Entry
}

func (l *Listing) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Entries)
}

// Build enumerates the immediate children of dirPath. Children whose metadata
// can not be read are left out. For a local store a relative dirPath is made
// absolute first.
func Build(ctx context.Context, store files.Store, dirPath string) (*Listing, error) {
	if files.IsLocal(store) && !filepath.IsAbs(dirPath) {
		abs, err := filepath.Abs(dirPath)
		if err != nil {
			return nil, &UnavailableError{Path: dirPath, Err: err}
		}
		dirPath = abs
	}
	children, err := store.ReadDir(ctx, dirPath)
	if err != nil {
		return nil, &UnavailableError{Path: dirPath, Err: err}
	}
	l := &Listing{
		Path:    dirPath,
		Entries: make([]Entry, 0, len(children)),
	}
	for _, child := range children {
		info, err := child.Info()
		if err != nil || info == nil {
			logrus.WithFields(logrus.Fields{
				"dir":   dirPath,
				"entry": child.Name(),
				"err":   err,
			}).Debug("skipping entry with unreadable metadata")
			continue
		}
		l.Entries = append(l.Entries, Entry{
			Path: files.JoinPath(store, dirPath, child.Name()),
			Kind: KindOf(info),
		})
	}
	return l, nil
}
