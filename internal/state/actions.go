package state

import "github.com/kk-code-lab/maskfield/internal/mask"

// Action is the base interface for all state mutations
type Action interface{}

// ===== EDITING ACTIONS =====

type CharAction struct {
	Char rune
}
type PasteAction struct {
	Text string
}
type BackspaceAction struct{}
type DeleteAction struct{}
type DeleteWordAction struct{}
type ClearFieldAction struct{}
type MoveCursorAction struct {
	Direction string // "left", "right", "word-left", "word-right", "home", "end"
}

// ===== VALUE & CONFIG ACTIONS =====

// SetValueAction loads a raw value into a field, as when restoring saved data.
type SetValueAction struct {
	Field int
	Raw   string
}

// ConfigChangeAction swaps a field's mask configuration. The current raw
// value is re-rendered with the new configuration.
type ConfigChangeAction struct {
	Field  int
	Config mask.Config
}

// ===== FOCUS ACTIONS =====

type FocusNextAction struct{}
type FocusPrevAction struct{}
type FocusIndexAction struct {
	Index int
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type HelpToggleAction struct{}
type HelpHideAction struct{}
type YankValueAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SubmitAction struct{} // Enter on the last field: print values and exit
type SuspendAction struct{}
