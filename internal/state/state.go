package state

import (
	"time"
	"unicode/utf8"

	"github.com/kk-code-lab/maskfield/internal/mask"
)

// ===== STATE DEFINITIONS =====

// Field is one masked input line. Display is exactly what the user sees,
// affixes included; Caret is a rune offset into Display.
type Field struct {
	Profile     string
	Label       string
	Placeholder string
	Engine      *mask.Engine

	Display string
	Caret   int
}

// NewField builds a field and loads initial as its raw value.
func NewField(profile, label, placeholder string, cfg mask.Config, initial string) Field {
	field := Field{
		Profile:     profile,
		Label:       label,
		Placeholder: placeholder,
		Engine:      mask.New(cfg),
	}
	field.SetValue(initial)
	return field
}

// Value is the logical raw value with template literals and affixes removed.
func (f *Field) Value() string {
	if f.Display == "" {
		return ""
	}
	return f.Engine.Value(f.Display)
}

// SetValue replaces the field content with the rendering of raw and parks
// the caret at the end of the editable text. An empty raw value leaves the
// field blank so the placeholder shows.
func (f *Field) SetValue(raw string) {
	if raw == "" {
		f.Display = ""
		f.Caret = 0
		return
	}
	f.Display = f.Engine.Display(raw)
	_, hi := f.Engine.EditableRange(f.Display)
	f.Caret = hi
}

// Validate checks the display against the template without the heuristics
// of Value.
func (f *Field) Validate() (string, error) {
	if f.Display == "" {
		return "", nil
	}
	text, _ := f.Engine.StripAffixes(f.Display, 0)
	return f.Engine.UnformatStrict(text)
}

// PlaceholderText is what the renderer shows while the field is blank.
func (f *Field) PlaceholderText() string {
	cfg := f.Engine.Config()
	if f.Placeholder == "" {
		return ""
	}
	return cfg.LeftAffix + f.Placeholder + cfg.RightAffix
}

// rewrite runs an edited display string through the engine and keeps the
// caret inside the editable range.
func (f *Field) rewrite(display string, caret int) {
	f.Display, f.Caret = f.Engine.Apply(display, caret)
	f.clampCaret()
}

func (f *Field) clampCaret() {
	lo, hi := f.Engine.EditableRange(f.Display)
	if f.Caret < lo {
		f.Caret = lo
	}
	if f.Caret > hi {
		f.Caret = hi
	}
}

func (f *Field) length() int {
	return utf8.RuneCountInString(f.Display)
}

// FormState is the single source of truth for the interactive form.
type FormState struct {
	Fields     []Field
	FocusIndex int

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	HelpVisible bool

	// Status line
	ClipboardAvailable bool      // Whether clipboard command is available
	LastYankTime       time.Time // Time of last successful yank (for flash effect)

	// Error state
	LastError error
}

// FocusedField returns the field receiving input, or nil for an empty form.
func (s *FormState) FocusedField() *Field {
	if s == nil || s.FocusIndex < 0 || s.FocusIndex >= len(s.Fields) {
		return nil
	}
	return &s.Fields[s.FocusIndex]
}

// Values returns every field's raw value keyed by profile name.
func (s *FormState) Values() map[string]string {
	values := make(map[string]string, len(s.Fields))
	for i := range s.Fields {
		values[s.Fields[i].Profile] = s.Fields[i].Value()
	}
	return values
}
