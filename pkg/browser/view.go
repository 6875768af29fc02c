package browser

import (
	"github.com/filetug/ftbrowse/pkg/files"
	"github.com/filetug/ftbrowse/pkg/listing"
)

// Row is one entry as shown to the user: its base name and kind.
type Row struct {
	Label string
	Kind  listing.EntryKind
}

// View is what a renderer needs to draw the current directory.
type View struct {
	Path     string
	Rows     []Row
	Selected int
	// HasSelection is false when no row is highlighted; Selected is 0 then.
	HasSelection bool
}

// CurrentView returns a snapshot of the current directory for rendering.
func (s *State) CurrentView() View {
	rows := make([]Row, len(s.listing.Entries))
	for i, entry := range s.listing.Entries {
		rows[i] = Row{
			Label: files.BaseName(s.store, entry.Path),
			Kind:  entry.Kind,
		}
	}
	selected, ok := s.Selection()
	return View{
		Path:         s.listing.Path,
		Rows:         rows,
		Selected:     selected,
		HasSelection: ok,
	}
}
