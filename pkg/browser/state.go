// Package browser holds the navigation state of a directory browser: the
// current directory, its listing and the selected entry.
package browser

import (
	"context"

	"github.com/filetug/ftbrowse/pkg/files"
	"github.com/filetug/ftbrowse/pkg/listing"
	"github.com/sirupsen/logrus"
)

const noSelection = -1

// State is owned by a single event loop and is not safe for concurrent use.
//
// Operations that change the directory either fully succeed or leave path,
// listing and selection as they were.
type State struct {
	store    files.Store
	listing  *listing.Listing
	selected int
}

// New lists dirPath and returns a state with nothing selected.
func New(ctx context.Context, store files.Store, dirPath string) (*State, error) {
	l, err := listing.Build(ctx, store, dirPath)
	if err != nil {
		return nil, err
	}
	return &State{
		store:    store,
		listing:  l,
		selected: noSelection,
	}, nil
}

// Store returns the store the directories are read from.
func (s *State) Store() files.Store {
	return s.store
}

// Path returns the directory being browsed.
func (s *State) Path() string {
	return s.listing.Path
}

// Listing returns the listing of the current directory.
func (s *State) Listing() *listing.Listing {
	return s.listing
}

// Selection returns the selected index and whether anything is selected.
func (s *State) Selection() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

// Selected returns the selected entry.
func (s *State) Selected() (listing.Entry, bool) {
	if s.selected == noSelection {
		return listing.Entry{}, false
	}
	return s.listing.Entries[s.selected], true
}

// MoveNext selects the following entry, wrapping from the last to the first.
// With nothing selected it selects the first entry.
func (s *State) MoveNext() {
	n := s.listing.Len()
	if n == 0 {
		return
	}
	if s.selected == noSelection || s.selected >= n-1 {
		s.selected = 0
		return
	}
	s.selected++
}

// MovePrevious selects the preceding entry, wrapping from the first to the
// last. With nothing selected it selects the last entry.
func (s *State) MovePrevious() {
	n := s.listing.Len()
	if n == 0 {
		return
	}
	if s.selected == noSelection || s.selected == 0 {
		s.selected = n - 1
		return
	}
	s.selected--
}

// Deselect clears the selection.
func (s *State) Deselect() {
	s.selected = noSelection
}

// Enter descends into the selected directory. Files and symlinks are not
// opened: the result reports them as unsupported and the state is unchanged.
func (s *State) Enter(ctx context.Context) (EnterResult, error) {
	entry, ok := s.Selected()
	if !ok {
		return EnterResult{Outcome: OutcomeNone}, nil
	}
	if entry.Kind != listing.Directory {
		logrus.WithFields(logrus.Fields{
			"entry": entry.Path,
			"kind":  entry.Kind,
		}).Debug("enter is not supported for entry kind")
		return EnterResult{Outcome: OutcomeUnsupported, Entry: entry}, nil
	}
	name := files.BaseName(s.store, entry.Path)
	target := files.JoinPath(s.store, s.listing.Path, name)
	if err := s.changeDir(ctx, target); err != nil {
		return EnterResult{Outcome: OutcomeNone, Entry: entry}, err
	}
	return EnterResult{Outcome: OutcomeDescended, Entry: entry}, nil
}

// GoUp moves to the parent directory. At the root the root is listed again.
func (s *State) GoUp(ctx context.Context) error {
	return s.changeDir(ctx, files.ParentDir(s.store, s.listing.Path))
}

// Refresh lists the current directory again. The selection survives if its
// index is still valid.
func (s *State) Refresh(ctx context.Context) error {
	l, err := listing.Build(ctx, s.store, s.listing.Path)
	if err != nil {
		logrus.WithError(err).WithField("dir", s.listing.Path).Warn("refresh failed")
		return err
	}
	s.listing = l
	if s.selected >= l.Len() {
		s.selected = noSelection
	}
	return nil
}

func (s *State) changeDir(ctx context.Context, dirPath string) error {
	l, err := listing.Build(ctx, s.store, dirPath)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"from": s.listing.Path,
			"to":   dirPath,
		}).Warn("directory change rolled back")
		return err
	}
	logrus.WithFields(logrus.Fields{
		"dir":     l.Path,
		"entries": l.Len(),
	}).Debug("changed directory")
	s.listing = l
	s.selected = noSelection
	return nil
}
