package ftbrowse

import (
	"github.com/filetug/ftbrowse/pkg/browser"
	"github.com/rivo/tview"
)

const (
	selectedMarker   = " --> "
	unselectedMarker = "     "
)

// entriesPanel draws a browser.View as a single column table. The table is
// not selectable: the highlighted row comes from the view.
type entriesPanel struct {
	*tview.Table
	styles Styles
	offset int
}

func newEntriesPanel(styles Styles) *entriesPanel {
	table := tview.NewTable()
	table.SetSelectable(false, false)
	table.SetBorder(true)
	table.SetBorderColor(styles.BorderColor)
	table.SetTitleAlign(tview.AlignLeft)
	return &entriesPanel{
		Table:  table,
		styles: styles,
	}
}

func (p *entriesPanel) render(view browser.View) {
	p.SetTitle(" " + tview.Escape(view.Path) + " ")
	p.Clear()
	for i, row := range view.Rows {
		marker := unselectedMarker
		style := p.styles.ForKind(row.Kind)
		if view.HasSelection && i == view.Selected {
			marker = selectedMarker
			style = p.styles.Selected
		}
		cell := tview.NewTableCell(marker + tview.Escape(row.Label))
		cell.SetStyle(style)
		cell.SetExpansion(1)
		p.SetCell(i, 0, cell)
	}
	p.scrollTo(view)
}

// scrollTo keeps the highlighted row inside the visible area.
func (p *entriesPanel) scrollTo(view browser.View) {
	if !view.HasSelection {
		p.offset = 0
		p.SetOffset(0, 0)
		return
	}
	_, _, _, height := p.GetInnerRect()
	if height <= 0 {
		height = 1
	}
	switch {
	case view.Selected < p.offset:
		p.offset = view.Selected
	case view.Selected >= p.offset+height:
		p.offset = view.Selected - height + 1
	}
	p.SetOffset(p.offset, 0)
}
