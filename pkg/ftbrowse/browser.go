package ftbrowse

import (
	"context"

	"github.com/filetug/ftbrowse/pkg/browser"
	"github.com/filetug/ftbrowse/pkg/files"
	"github.com/filetug/ftbrowse/pkg/ftbrowse/ftapp"
	"github.com/filetug/ftbrowse/pkg/listing"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Browser is the terminal front end of a browser.State. Every state change
// happens on the tview event goroutine.
type Browser struct {
	*tview.Flex
	app     ftapp.App
	state   *browser.State
	entries *entriesPanel
	bottom  *bottom
	o       browserOptions
}

type browserOptions struct {
	ctx          context.Context
	styles       Styles
	onDirChanged []func(dir string)
}

type BrowserOption func(o *browserOptions)

func WithStyles(styles Styles) BrowserOption {
	return func(o *browserOptions) {
		o.styles = styles
	}
}

func WithContext(ctx context.Context) BrowserOption {
	return func(o *browserOptions) {
		o.ctx = ctx
	}
}

// OnDirChanged registers f to be called after every successful change of the
// current directory, and once for the start directory.
func OnDirChanged(f func(dir string)) BrowserOption {
	return func(o *browserOptions) {
		o.onDirChanged = append(o.onDirChanged, f)
	}
}

func NewBrowser(app ftapp.App, state *browser.State, options ...BrowserOption) *Browser {
	o := browserOptions{
		ctx:    context.Background(),
		styles: DefaultStyles,
	}
	for _, option := range options {
		option(&o)
	}
	b := &Browser{
		Flex:    tview.NewFlex().SetDirection(tview.FlexRow),
		app:     app,
		state:   state,
		entries: newEntriesPanel(o.styles),
		bottom:  newBottom(o.styles),
		o:       o,
	}
	b.AddItem(b.entries, 0, 1, true)
	b.AddItem(b.bottom, 1, 0, false)
	b.entries.SetInputCapture(b.inputCapture)
	b.render()
	b.dirChanged()
	return b
}

func (b *Browser) State() *browser.State {
	return b.state
}

func (b *Browser) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	action := ActionForKey(event)
	if action == ActionNone {
		return event
	}
	b.Dispatch(action)
	return nil
}

// Dispatch runs one action to completion and redraws the table.
func (b *Browser) Dispatch(action Action) {
	ctx := b.o.ctx
	switch action {
	case ActionQuit:
		b.app.Stop()
		return
	case ActionDeselect:
		b.state.Deselect()
		b.bottom.clearMessage()
	case ActionNext:
		b.state.MoveNext()
	case ActionPrevious:
		b.state.MovePrevious()
	case ActionEnter:
		b.enter(ctx)
	case ActionGoUp:
		if err := b.state.GoUp(ctx); err != nil {
			b.bottom.setError(err)
		} else {
			b.bottom.clearMessage()
			b.dirChanged()
		}
	case ActionRefresh:
		b.refresh(ctx)
	default:
		return
	}
	b.render()
}

func (b *Browser) enter(ctx context.Context) {
	result, err := b.state.Enter(ctx)
	if err != nil {
		b.bottom.setError(err)
		return
	}
	switch result.Outcome {
	case browser.OutcomeDescended:
		b.bottom.clearMessage()
		b.dirChanged()
	case browser.OutcomeUnsupported:
		name := files.BaseName(b.state.Store(), result.Entry.Path)
		switch result.Entry.Kind {
		case listing.Symlink:
			b.bottom.setMessage("following symlinks is not supported yet: %s", name)
		default:
			b.bottom.setMessage("opening files is not supported yet: %s", name)
		}
	case browser.OutcomeNone:
	}
}

func (b *Browser) refresh(ctx context.Context) {
	if err := b.state.Refresh(ctx); err != nil {
		b.bottom.setError(err)
		return
	}
	if b.bottom.isError {
		b.bottom.clearMessage()
	}
}

// RefreshDir re-lists dir if it is still the current directory. It is meant
// for watchers and must be called through App.QueueUpdateDraw.
func (b *Browser) RefreshDir(dir string) {
	if dir != b.state.Path() {
		return
	}
	b.refresh(b.o.ctx)
	b.render()
}

func (b *Browser) dirChanged() {
	dir := b.state.Path()
	for _, f := range b.o.onDirChanged {
		f(dir)
	}
}

func (b *Browser) render() {
	view := b.state.CurrentView()
	b.entries.render(view)
	b.bottom.setSummary(b.state.Store().RootTitle(), len(view.Rows))
}
