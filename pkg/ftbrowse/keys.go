package ftbrowse

import "github.com/gdamore/tcell/v2"

// Action is a navigation command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionDeselect
	ActionNext
	ActionPrevious
	ActionEnter
	ActionGoUp
	ActionRefresh
)

var runeActions = map[rune]Action{
	'q': ActionQuit,
	'j': ActionNext,
	'k': ActionPrevious,
	'l': ActionEnter,
	'h': ActionGoUp,
	'r': ActionRefresh,
}

var keyActions = map[tcell.Key]Action{
	tcell.KeyEscape: ActionDeselect,
	tcell.KeyDown:   ActionNext,
	tcell.KeyUp:     ActionPrevious,
	tcell.KeyRight:  ActionEnter,
	tcell.KeyLeft:   ActionGoUp,
}

// ActionForKey maps a key press to an action. Keys with modifiers other than
// shift are not bound.
func ActionForKey(event *tcell.EventKey) Action {
	if event == nil || event.Modifiers()&^tcell.ModShift != 0 {
		return ActionNone
	}
	if event.Key() == tcell.KeyRune {
		return runeActions[event.Rune()]
	}
	return keyActions[event.Key()]
}
