package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/maskfield/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.FormState // Reference to current state for mode checking

	// Bracketed paste: keys between the start and end markers are collected
	// and delivered as one PasteAction.
	pasting bool
	paste   strings.Builder
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.FormState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the application should stop.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventPaste:
		if ev.Start() {
			ih.pasting = true
			ih.paste.Reset()
			return true
		}
		ih.pasting = false
		if ih.paste.Len() > 0 {
			ih.actionChan <- statepkg.PasteAction{Text: ih.paste.String()}
			ih.paste.Reset()
		}
		return true
	case *tcell.EventKey:
		if ih.pasting {
			ih.collectPaste(ev)
			return true
		}
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) collectPaste(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		ih.paste.WriteRune(ev.Rune())
	case tcell.KeyTab:
		ih.paste.WriteRune('\t')
	}
}

func (ih *InputHandler) lastFieldFocused() bool {
	if ih.state == nil {
		return true
	}
	return ih.state.FocusIndex >= len(ih.state.Fields)-1
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	helpVisible := ih.state != nil && ih.state.HelpVisible
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	if helpVisible {
		switch ev.Key() {
		case tcell.KeyCtrlC:
			ih.actionChan <- statepkg.QuitAction{}
			return false
		case tcell.KeyEscape, tcell.KeyF1:
			ih.actionChan <- statepkg.HelpHideAction{}
			return true
		case tcell.KeyRune:
			r := ev.Rune()
			if r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- statepkg.HelpHideAction{}
			}
			return true
		default:
			return true
		}
	}

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyF1:
		ih.actionChan <- statepkg.HelpToggleAction{}
		return true

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true

	case tcell.KeyTab, tcell.KeyDown:
		ih.actionChan <- statepkg.FocusNextAction{}
		return true

	case tcell.KeyBacktab, tcell.KeyUp:
		ih.actionChan <- statepkg.FocusPrevAction{}
		return true

	case tcell.KeyEnter:
		if ih.lastFieldFocused() {
			ih.actionChan <- statepkg.SubmitAction{}
			return false
		}
		ih.actionChan <- statepkg.FocusNextAction{}
		return true

	case tcell.KeyLeft:
		if ctrl || ev.Modifiers()&tcell.ModAlt != 0 {
			ih.actionChan <- statepkg.MoveCursorAction{Direction: "word-left"}
		} else {
			ih.actionChan <- statepkg.MoveCursorAction{Direction: "left"}
		}
		return true

	case tcell.KeyRight:
		if ctrl || ev.Modifiers()&tcell.ModAlt != 0 {
			ih.actionChan <- statepkg.MoveCursorAction{Direction: "word-right"}
		} else {
			ih.actionChan <- statepkg.MoveCursorAction{Direction: "right"}
		}
		return true

	case tcell.KeyHome, tcell.KeyCtrlA:
		ih.actionChan <- statepkg.MoveCursorAction{Direction: "home"}
		return true

	case tcell.KeyEnd, tcell.KeyCtrlE:
		ih.actionChan <- statepkg.MoveCursorAction{Direction: "end"}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			ih.actionChan <- statepkg.DeleteWordAction{}
		} else {
			ih.actionChan <- statepkg.BackspaceAction{}
		}
		return true

	case tcell.KeyDelete, tcell.KeyCtrlD:
		ih.actionChan <- statepkg.DeleteAction{}
		return true

	case tcell.KeyCtrlW:
		ih.actionChan <- statepkg.DeleteWordAction{}
		return true

	case tcell.KeyCtrlU:
		ih.actionChan <- statepkg.ClearFieldAction{}
		return true

	case tcell.KeyCtrlY:
		ih.actionChan <- statepkg.YankValueAction{}
		return true

	case tcell.KeyRune:
		r := ev.Rune()
		if ctrl {
			switch r {
			case 'a', 'A':
				ih.actionChan <- statepkg.MoveCursorAction{Direction: "home"}
			case 'e', 'E':
				ih.actionChan <- statepkg.MoveCursorAction{Direction: "end"}
			case 'w', 'W':
				ih.actionChan <- statepkg.DeleteWordAction{}
			case 'u', 'U':
				ih.actionChan <- statepkg.ClearFieldAction{}
			}
			return true
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			switch r {
			case 'b':
				ih.actionChan <- statepkg.MoveCursorAction{Direction: "word-left"}
			case 'f':
				ih.actionChan <- statepkg.MoveCursorAction{Direction: "word-right"}
			}
			return true
		}

		ih.actionChan <- statepkg.CharAction{Char: r}
		return true

	default:
		return true
	}
}
