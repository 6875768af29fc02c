package ftbrowse

import (
	"fmt"

	"github.com/rivo/tview"
)

// bottom is the status line under the entries table.
type bottom struct {
	*tview.TextView
	styles  Styles
	summary string
	message string
	isError bool
}

func newBottom(styles Styles) *bottom {
	b := &bottom{
		styles: styles,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetTextColor(styles.StatusColor),
	}
	return b
}

func (b *bottom) setSummary(storeTitle string, entriesCount int) {
	b.summary = fmt.Sprintf("%s ┊ %d entries", tview.Escape(storeTitle), entriesCount)
	b.render()
}

func (b *bottom) setMessage(format string, a ...any) {
	b.message = tview.Escape(fmt.Sprintf(format, a...))
	b.isError = false
	b.render()
}

func (b *bottom) setError(err error) {
	b.message = tview.Escape(err.Error())
	b.isError = true
	b.render()
}

func (b *bottom) clearMessage() {
	b.message = ""
	b.isError = false
	b.render()
}

func (b *bottom) render() {
	text := b.summary
	if b.message != "" {
		message := b.message
		if b.isError {
			message = fmt.Sprintf("[%s]%s[-]", b.styles.ErrorColor.String(), message)
		}
		text += " ┊ " + message
	}
	b.SetText(text)
}
