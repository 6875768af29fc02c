package ftbrowse

import (
	"github.com/filetug/ftbrowse/pkg/ftbrowse/ftsettings"
	"github.com/filetug/ftbrowse/pkg/listing"
	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	Directory tcell.Style
	File      tcell.Style
	Symlink   tcell.Style
	Selected  tcell.Style

	BorderColor tcell.Color
	StatusColor tcell.Color
	ErrorColor  tcell.Color
}

var DefaultStyles = Styles{
	Directory: tcell.StyleDefault.Foreground(tcell.ColorLightBlue).Bold(true),
	File:      tcell.StyleDefault,
	Symlink:   tcell.StyleDefault.Foreground(tcell.ColorLightGreen),
	Selected:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightBlue).Italic(true),

	BorderColor: tcell.ColorCornflowerBlue,
	StatusColor: tcell.ColorSlateGray,
	ErrorColor:  tcell.ColorRed,
}

// StylesFromColors applies configured color names over DefaultStyles.
// Unknown names keep the default.
func StylesFromColors(colors ftsettings.Colors) Styles {
	styles := DefaultStyles
	if c := tcell.GetColor(colors.Directory); c != tcell.ColorDefault {
		styles.Directory = styles.Directory.Foreground(c)
	}
	if c := tcell.GetColor(colors.File); c != tcell.ColorDefault {
		styles.File = styles.File.Foreground(c)
	}
	if c := tcell.GetColor(colors.Symlink); c != tcell.ColorDefault {
		styles.Symlink = styles.Symlink.Foreground(c)
	}
	if c := tcell.GetColor(colors.SelectedFg); c != tcell.ColorDefault {
		styles.Selected = styles.Selected.Foreground(c)
	}
	if c := tcell.GetColor(colors.SelectedBg); c != tcell.ColorDefault {
		styles.Selected = styles.Selected.Background(c)
	}
	return styles
}

func (s Styles) ForKind(kind listing.EntryKind) tcell.Style {
	switch kind {
	case listing.Directory:
		return s.Directory
	case listing.Symlink:
		return s.Symlink
	default:
		return s.File
	}
}
