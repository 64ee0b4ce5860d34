package state

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kk-code-lab/maskfield/internal/mask"
)

var phoneConfig = mask.Config{
	Template:  "(###) ###-####",
	Allowed:   mask.Digits,
	LeftAffix: "+1 ",
}

type fieldSnapshot struct {
	Display string
	Caret   int
}

func snapshot(f *Field) fieldSnapshot {
	return fieldSnapshot{Display: f.Display, Caret: f.Caret}
}

func newPhoneForm(initial string) *FormState {
	return &FormState{
		Fields: []Field{NewField("phone", "Phone", "(555) 123-4567", phoneConfig, initial)},
	}
}

func typeText(t *testing.T, reducer *StateReducer, state *FormState, text string) {
	t.Helper()
	for _, r := range text {
		if _, err := reducer.Reduce(state, CharAction{Char: r}); err != nil {
			t.Fatalf("Reduce(CharAction %q) error: %v", r, err)
		}
	}
}

func TestTypingPhoneNumber(t *testing.T) {
	state := newPhoneForm("")
	reducer := NewStateReducer(nil)

	typeText(t, reducer, state, "5551234567")

	field := state.FocusedField()
	want := fieldSnapshot{Display: "+1 (555) 123-4567", Caret: 17}
	if diff := cmp.Diff(want, snapshot(field)); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
	if got := field.Value(); got != "5551234567" {
		t.Errorf("Value() = %q, want %q", got, "5551234567")
	}
}

func TestTypingRejectsDisallowedCharacters(t *testing.T) {
	state := newPhoneForm("")
	reducer := NewStateReducer(nil)

	typeText(t, reducer, state, "5a5-5")

	field := state.FocusedField()
	if diff := cmp.Diff(fieldSnapshot{Display: "+1 (555", Caret: 7}, snapshot(field)); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestTypingRightToLeftTime(t *testing.T) {
	state := &FormState{
		Fields: []Field{NewField("time", "Time", "", mask.Config{
			Template:  "##:##",
			Allowed:   mask.Digits,
			Direction: mask.RightToLeft,
		}, "")},
	}
	reducer := NewStateReducer(nil)

	typeText(t, reducer, state, "930")

	if diff := cmp.Diff(fieldSnapshot{Display: "9:30", Caret: 4}, snapshot(state.FocusedField())); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestBackspaceSkipsTemplateLiterals(t *testing.T) {
	state := newPhoneForm("555123")
	field := state.FocusedField()
	field.Caret = 9 // right after "(555) "

	reducer := NewStateReducer(nil)
	if _, err := reducer.Reduce(state, BackspaceAction{}); err != nil {
		t.Fatalf("Reduce(BackspaceAction) error: %v", err)
	}

	if diff := cmp.Diff(fieldSnapshot{Display: "+1 (551) 23", Caret: 6}, snapshot(field)); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestBackspaceStopsAtLeftAffix(t *testing.T) {
	state := newPhoneForm("5")
	field := state.FocusedField()
	reducer := NewStateReducer(nil)

	for i := 0; i < 3; i++ {
		if _, err := reducer.Reduce(state, BackspaceAction{}); err != nil {
			t.Fatalf("Reduce(BackspaceAction) error: %v", err)
		}
	}

	if diff := cmp.Diff(fieldSnapshot{Display: "+1 ", Caret: 3}, snapshot(field)); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteForwardSkipsTemplateLiterals(t *testing.T) {
	state := newPhoneForm("555123")
	field := state.FocusedField()
	field.Caret = 7 // before ")"

	reducer := NewStateReducer(nil)
	if _, err := reducer.Reduce(state, DeleteAction{}); err != nil {
		t.Fatalf("Reduce(DeleteAction) error: %v", err)
	}

	if diff := cmp.Diff(fieldSnapshot{Display: "+1 (555) 23", Caret: 7}, snapshot(field)); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteWordRemovesDigitGroup(t *testing.T) {
	state := newPhoneForm("555123")
	reducer := NewStateReducer(nil)

	if _, err := reducer.Reduce(state, DeleteWordAction{}); err != nil {
		t.Fatalf("Reduce(DeleteWordAction) error: %v", err)
	}

	if diff := cmp.Diff(fieldSnapshot{Display: "+1 (555", Caret: 7}, snapshot(state.FocusedField())); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveCursorStaysInsideAffixes(t *testing.T) {
	state := &FormState{
		Fields: []Field{NewField("weight", "Weight", "", mask.Config{
			Template:   "#.##",
			Allowed:    mask.Digits,
			RightAffix: " kg",
		}, "123")},
	}
	field := state.FocusedField()
	reducer := NewStateReducer(nil)

	if field.Display != "1.23 kg" || field.Caret != 4 {
		t.Fatalf("initial field = %q caret %d, want %q caret 4", field.Display, field.Caret, "1.23 kg")
	}

	tests := []struct {
		direction string
		want      int
	}{
		{"right", 4},
		{"home", 0},
		{"left", 0},
		{"right", 1},
		{"end", 4},
		{"word-right", 4},
		{"word-left", 2},
	}

	for _, tt := range tests {
		if _, err := reducer.Reduce(state, MoveCursorAction{Direction: tt.direction}); err != nil {
			t.Fatalf("Reduce(MoveCursorAction %q) error: %v", tt.direction, err)
		}
		if field.Caret != tt.want {
			t.Fatalf("after %q caret = %d, want %d", tt.direction, field.Caret, tt.want)
		}
	}
}

func TestMoveCursorWordLeftClampsToAffix(t *testing.T) {
	state := newPhoneForm("555123")
	field := state.FocusedField()
	reducer := NewStateReducer(nil)

	wants := []int{9, 4, 3}
	for _, want := range wants {
		if _, err := reducer.Reduce(state, MoveCursorAction{Direction: "word-left"}); err != nil {
			t.Fatalf("Reduce(MoveCursorAction) error: %v", err)
		}
		if field.Caret != want {
			t.Fatalf("caret = %d, want %d", field.Caret, want)
		}
	}
}

func TestMoveCursorUnknownDirection(t *testing.T) {
	state := newPhoneForm("")
	reducer := NewStateReducer(nil)

	if _, err := reducer.Reduce(state, MoveCursorAction{Direction: "up"}); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}

func TestPasteNormalizesAndStripsControls(t *testing.T) {
	state := &FormState{
		Fields: []Field{NewField("note", "Note", "", mask.Config{LeftAffix: "> "}, "")},
	}
	reducer := NewStateReducer(nil)

	if _, err := reducer.Reduce(state, PasteAction{Text: "é\tx\x1b"}); err != nil {
		t.Fatalf("Reduce(PasteAction) error: %v", err)
	}

	field := state.FocusedField()
	if diff := cmp.Diff(fieldSnapshot{Display: "> éx", Caret: 4}, snapshot(field)); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
	if field.Value() != "éx" {
		t.Errorf("Value() = %q, want %q", field.Value(), "éx")
	}
}

func TestPasteFormattedPhone(t *testing.T) {
	state := newPhoneForm("")
	reducer := NewStateReducer(nil)

	if _, err := reducer.Reduce(state, PasteAction{Text: "555-123-4567"}); err != nil {
		t.Fatalf("Reduce(PasteAction) error: %v", err)
	}

	field := state.FocusedField()
	if field.Display != "+1 (555) 123-4567" {
		t.Fatalf("Display = %q, want %q", field.Display, "+1 (555) 123-4567")
	}
	if field.Caret != 17 {
		t.Errorf("Caret = %d, want 17", field.Caret)
	}
}

func TestClearFieldShowsPlaceholder(t *testing.T) {
	state := newPhoneForm("5551234567")
	reducer := NewStateReducer(nil)

	if _, err := reducer.Reduce(state, ClearFieldAction{}); err != nil {
		t.Fatalf("Reduce(ClearFieldAction) error: %v", err)
	}

	field := state.FocusedField()
	if field.Display != "" || field.Caret != 0 {
		t.Fatalf("field = %q caret %d, want blank", field.Display, field.Caret)
	}
	if got := field.PlaceholderText(); got != "+1 (555) 123-4567" {
		t.Errorf("PlaceholderText() = %q", got)
	}
}

func TestSetValueAction(t *testing.T) {
	state := newPhoneForm("")
	reducer := NewStateReducer(nil)

	if _, err := reducer.Reduce(state, SetValueAction{Field: 0, Raw: "555 12"}); err != nil {
		t.Fatalf("Reduce(SetValueAction) error: %v", err)
	}
	if diff := cmp.Diff(fieldSnapshot{Display: "+1 (555) 12", Caret: 11}, snapshot(state.FocusedField())); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}

	if _, err := reducer.Reduce(state, SetValueAction{Field: 3, Raw: "1"}); err == nil {
		t.Fatal("expected error for out-of-range field")
	}
}

func TestConfigChangeReformatsValue(t *testing.T) {
	state := newPhoneForm("5551234567")
	reducer := NewStateReducer(nil)

	next := mask.Config{Template: "###-###-####", Allowed: mask.Digits}
	if _, err := reducer.Reduce(state, ConfigChangeAction{Field: 0, Config: next}); err != nil {
		t.Fatalf("Reduce(ConfigChangeAction) error: %v", err)
	}

	field := state.FocusedField()
	if diff := cmp.Diff(fieldSnapshot{Display: "555-123-4567", Caret: 12}, snapshot(field)); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}
	if field.Value() != "5551234567" {
		t.Errorf("Value() = %q", field.Value())
	}
}

func TestFocusBlurClearsEmptyField(t *testing.T) {
	state := &FormState{
		Fields: []Field{
			NewField("phone", "Phone", "", phoneConfig, ""),
			NewField("date", "Date", "MM/DD/YYYY", mask.Config{Template: "##/##/####", Allowed: mask.Digits}, "12252024"),
		},
	}
	reducer := NewStateReducer(nil)

	typeText(t, reducer, state, "x")
	if state.Fields[0].Display != "+1 " {
		t.Fatalf("after rejected char Display = %q, want affix only", state.Fields[0].Display)
	}

	if _, err := reducer.Reduce(state, FocusNextAction{}); err != nil {
		t.Fatalf("Reduce(FocusNextAction) error: %v", err)
	}
	if state.FocusIndex != 1 {
		t.Fatalf("FocusIndex = %d, want 1", state.FocusIndex)
	}
	if state.Fields[0].Display != "" {
		t.Errorf("blurred empty field Display = %q, want blank", state.Fields[0].Display)
	}

	if _, err := reducer.Reduce(state, FocusNextAction{}); err != nil {
		t.Fatalf("Reduce(FocusNextAction) error: %v", err)
	}
	if state.FocusIndex != 0 {
		t.Fatalf("FocusIndex = %d, want wrap to 0", state.FocusIndex)
	}

	if _, err := reducer.Reduce(state, FocusPrevAction{}); err != nil {
		t.Fatalf("Reduce(FocusPrevAction) error: %v", err)
	}
	if state.FocusIndex != 1 {
		t.Fatalf("FocusIndex = %d, want wrap to 1", state.FocusIndex)
	}
	if state.Fields[1].Display != "12/25/2024" {
		t.Errorf("non-empty field lost its value: %q", state.Fields[1].Display)
	}
}

func TestFieldValidate(t *testing.T) {
	field := NewField("phone", "Phone", "", phoneConfig, "5551234567")

	raw, err := field.Validate()
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if raw != "5551234567" {
		t.Errorf("Validate() = %q", raw)
	}

	field.Display = "+1 (55x"
	if _, err := field.Validate(); !errors.Is(err, mask.ErrNoMatch) {
		t.Fatalf("Validate() error = %v, want ErrNoMatch", err)
	}

	var matchErr *mask.MatchError
	if _, err := field.Validate(); !errors.As(err, &matchErr) || matchErr.Offset != 3 {
		t.Fatalf("Validate() error = %#v, want MatchError at offset 3", err)
	}
}

func TestFormValues(t *testing.T) {
	state := &FormState{
		Fields: []Field{
			NewField("phone", "Phone", "", phoneConfig, "5551234567"),
			NewField("time", "Time", "", mask.Config{Template: "##:##", Allowed: mask.Digits, Direction: mask.RightToLeft}, "930"),
			NewField("note", "Note", "", mask.Config{}, ""),
		},
	}

	want := map[string]string{"phone": "5551234567", "time": "930", "note": ""}
	if diff := cmp.Diff(want, state.Values()); diff != "" {
		t.Fatalf("Values mismatch (-want +got):\n%s", diff)
	}
}

func TestViewActions(t *testing.T) {
	state := newPhoneForm("")
	reducer := NewStateReducer(nil)

	if _, err := reducer.Reduce(state, ResizeAction{Width: 80, Height: 24}); err != nil {
		t.Fatalf("Reduce(ResizeAction) error: %v", err)
	}
	if state.ScreenWidth != 80 || state.ScreenHeight != 24 {
		t.Errorf("screen = %dx%d, want 80x24", state.ScreenWidth, state.ScreenHeight)
	}

	if _, err := reducer.Reduce(state, HelpToggleAction{}); err != nil {
		t.Fatalf("Reduce(HelpToggleAction) error: %v", err)
	}
	if !state.HelpVisible {
		t.Error("help should be visible after toggle")
	}
	if _, err := reducer.Reduce(state, HelpHideAction{}); err != nil {
		t.Fatalf("Reduce(HelpHideAction) error: %v", err)
	}
	if state.HelpVisible {
		t.Error("help should be hidden")
	}
}

func TestUnknownActionReturnsError(t *testing.T) {
	state := newPhoneForm("")
	reducer := NewStateReducer(nil)

	type bogusAction struct{}
	if _, err := reducer.Reduce(state, bogusAction{}); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestEditingEmptyFormIsNoop(t *testing.T) {
	state := &FormState{}
	reducer := NewStateReducer(nil)

	for _, action := range []Action{CharAction{Char: '1'}, BackspaceAction{}, FocusNextAction{}, MoveCursorAction{Direction: "left"}} {
		if _, err := reducer.Reduce(state, action); err != nil {
			t.Fatalf("Reduce(%T) error: %v", action, err)
		}
	}
}
