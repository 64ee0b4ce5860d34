package state

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/kk-code-lab/maskfield/internal/mask"
	textutil "github.com/kk-code-lab/maskfield/internal/textutil"
	"golang.org/x/text/unicode/norm"
)

// StateReducer applies actions to a FormState.
type StateReducer struct {
	logger *slog.Logger
}

// NewStateReducer creates a reducer. A nil logger discards output.
func NewStateReducer(logger *slog.Logger) *StateReducer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StateReducer{logger: logger}
}

// Reduce applies action to state in place and returns it.
func (r *StateReducer) Reduce(state *FormState, action Action) (*FormState, error) {
	switch a := action.(type) {
	case CharAction:
		if field := state.FocusedField(); field != nil {
			r.insert(field, string(a.Char))
		}

	case PasteAction:
		if field := state.FocusedField(); field != nil {
			text := textutil.StripControlRunes(norm.NFC.String(a.Text))
			if text != "" {
				r.insert(field, text)
			}
		}

	case BackspaceAction:
		if field := state.FocusedField(); field != nil {
			r.backspace(field)
		}

	case DeleteAction:
		if field := state.FocusedField(); field != nil {
			r.deleteForward(field)
		}

	case DeleteWordAction:
		if field := state.FocusedField(); field != nil {
			r.deleteWord(field)
		}

	case ClearFieldAction:
		if field := state.FocusedField(); field != nil {
			field.SetValue("")
		}

	case MoveCursorAction:
		if field := state.FocusedField(); field != nil {
			if err := moveCaret(field, a.Direction); err != nil {
				return state, err
			}
		}

	case SetValueAction:
		if a.Field < 0 || a.Field >= len(state.Fields) {
			return state, fmt.Errorf("field index %d out of range", a.Field)
		}
		state.Fields[a.Field].SetValue(a.Raw)

	case ConfigChangeAction:
		if a.Field < 0 || a.Field >= len(state.Fields) {
			return state, fmt.Errorf("field index %d out of range", a.Field)
		}
		field := &state.Fields[a.Field]
		raw := field.Value()
		field.Engine = mask.New(a.Config)
		field.SetValue(raw)
		r.logger.Debug("field config changed",
			"profile", field.Profile,
			"template", a.Config.Template,
			"direction", a.Config.Direction.String(),
			"raw", raw)

	case FocusNextAction:
		r.focus(state, state.FocusIndex+1)

	case FocusPrevAction:
		r.focus(state, state.FocusIndex-1)

	case FocusIndexAction:
		if a.Index < 0 || a.Index >= len(state.Fields) {
			return state, nil
		}
		r.focus(state, a.Index)

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible

	case HelpHideAction:
		state.HelpVisible = false

	case YankValueAction, QuitAction, SubmitAction, SuspendAction:
		// Handled by the application loop.

	default:
		return state, fmt.Errorf("unknown action: %T", action)
	}

	return state, nil
}

// focus moves focus with wrap-around. A field left with no raw value is
// blanked so its placeholder shows again.
func (r *StateReducer) focus(state *FormState, index int) {
	count := len(state.Fields)
	if count == 0 {
		return
	}
	index = ((index % count) + count) % count
	if field := state.FocusedField(); field != nil && field.Value() == "" {
		field.SetValue("")
	}
	state.FocusIndex = index
	state.FocusedField().clampCaret()
}

func (r *StateReducer) insert(field *Field, text string) {
	runes := []rune(field.Display)
	caret := field.Caret
	if caret < 0 {
		caret = 0
	}
	if caret > len(runes) {
		caret = len(runes)
	}

	inserted := []rune(text)
	buffer := make([]rune, 0, len(runes)+len(inserted))
	buffer = append(buffer, runes[:caret]...)
	buffer = append(buffer, inserted...)
	buffer = append(buffer, runes[caret:]...)

	before := field.Display
	field.rewrite(string(buffer), caret+len(inserted))
	if field.Display == before {
		r.logger.Debug("input rejected", "profile", field.Profile, "text", text)
	}
}

// backspace removes the raw character left of the caret. Template literals
// are reinserted by the engine, so deleting one alone changes nothing; the
// search keeps stepping left until a deletion changes the field.
func (r *StateReducer) backspace(field *Field) {
	runes := []rune(field.Display)
	lo, _ := field.Engine.EditableRange(field.Display)
	caret := min(field.Caret, len(runes))

	for c := caret; c > lo; c-- {
		buffer := append([]rune{}, runes[:c-1]...)
		buffer = append(buffer, runes[c:]...)

		display, pos := field.Engine.Apply(string(buffer), c-1)
		if display != field.Display {
			field.Display, field.Caret = display, pos
			field.clampCaret()
			return
		}
	}
	field.clampCaret()
}

func (r *StateReducer) deleteForward(field *Field) {
	runes := []rune(field.Display)
	_, hi := field.Engine.EditableRange(field.Display)
	caret := max(field.Caret, 0)

	for c := caret; c < hi; c++ {
		buffer := append([]rune{}, runes[:c]...)
		buffer = append(buffer, runes[c+1:]...)

		display, pos := field.Engine.Apply(string(buffer), c)
		if display != field.Display {
			field.Display, field.Caret = display, pos
			field.clampCaret()
			return
		}
	}
}

func (r *StateReducer) deleteWord(field *Field) {
	runes := []rune(field.Display)
	lo, _ := field.Engine.EditableRange(field.Display)
	caret := min(field.Caret, len(runes))
	if caret <= lo {
		return
	}

	start := max(previousWordBoundary(runes, caret), lo)
	buffer := append([]rune{}, runes[:start]...)
	buffer = append(buffer, runes[caret:]...)
	field.rewrite(string(buffer), start)
}

func moveCaret(field *Field, direction string) error {
	runes := []rune(field.Display)
	lo, hi := field.Engine.EditableRange(field.Display)

	switch direction {
	case "left":
		field.Caret--
	case "right":
		field.Caret++
	case "word-left":
		field.Caret = previousWordBoundary(runes, field.Caret)
	case "word-right":
		field.Caret = nextWordBoundary(runes, field.Caret)
	case "home":
		field.Caret = lo
	case "end":
		field.Caret = hi
	default:
		return fmt.Errorf("unknown cursor direction %q", direction)
	}
	field.clampCaret()
	return nil
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func previousWordBoundary(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}

	i := pos - 1
	for i >= 0 && !isWordChar(runes[i]) {
		i--
	}
	for i >= 0 && isWordChar(runes[i]) {
		i--
	}
	return i + 1
}

func nextWordBoundary(runes []rune, pos int) int {
	if pos >= len(runes) {
		return len(runes)
	}
	if pos < 0 {
		pos = 0
	}

	i := pos
	for i < len(runes) && !isWordChar(runes[i]) {
		i++
	}
	for i < len(runes) && isWordChar(runes[i]) {
		i++
	}
	return i
}
