package browser

import "github.com/filetug/ftbrowse/pkg/listing"

// Outcome tells what State.Enter did.
type Outcome int

const (
	// OutcomeNone means nothing changed: nothing was selected or the directory
	// could not be listed.
	OutcomeNone Outcome = iota
	// OutcomeDescended means the selected directory became the current one.
	OutcomeDescended
	// OutcomeUnsupported means the selected entry is a file or a symlink,
	// which can not be opened yet.
	OutcomeUnsupported
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeDescended:
		return "descended"
	case OutcomeUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// EnterResult is the outcome of State.Enter and the entry it acted on.
type EnterResult struct {
	Outcome Outcome
	Entry   listing.Entry
}
