package mask

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultReplacement marks input slots when a config leaves it unset.
const DefaultReplacement = '#'

// Direction controls which end of the template raw characters fill from.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	switch d {
	case RightToLeft:
		return "rtl"
	default:
		return "ltr"
	}
}

// ParseDirection accepts "ltr", "rtl" and their long forms. An empty string
// means LeftToRight.
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "ltr", "left-to-right", "left_to_right":
		return LeftToRight, nil
	case "rtl", "right-to-left", "right_to_left":
		return RightToLeft, nil
	default:
		return LeftToRight, fmt.Errorf("unknown direction %q", value)
	}
}

// Config describes one masked field. An empty Template disables formatting;
// affixes still apply.
type Config struct {
	Template    string
	Replacement rune
	Allowed     CharSet
	Direction   Direction
	LeftAffix   string
	RightAffix  string
}

// Engine is a compiled Config. It holds no mutable state, so one Engine can
// serve any number of edits; build a new one whenever the config changes.
type Engine struct {
	cfg      Config
	tmpl     Template
	leftLen  int
	rightLen int
}

// New compiles cfg.
func New(cfg Config) *Engine {
	if cfg.Replacement == 0 {
		cfg.Replacement = DefaultReplacement
	}
	return &Engine{
		cfg:      cfg,
		tmpl:     ParseTemplate(cfg.Template, cfg.Replacement),
		leftLen:  utf8.RuneCountInString(cfg.LeftAffix),
		rightLen: utf8.RuneCountInString(cfg.RightAffix),
	}
}

// Config returns the configuration the engine was built from.
func (e *Engine) Config() Config {
	return e.cfg
}

// Template returns the parsed template.
func (e *Engine) Template() Template {
	return e.tmpl
}

// Apply rewrites the text of an edited field: affixes are stripped, the raw
// value extracted, the template re-applied and the left affix restored. The
// caret follows the same logical character through the rewrite.
func (e *Engine) Apply(display string, caret int) (string, int) {
	text, pos := e.StripAffixes(display, caret)
	raw, pos := e.extract(text, pos)
	masked, pos := e.Format(raw, pos)
	if e.tmpl.IsEmpty() {
		masked += e.cfg.RightAffix
	}
	return e.cfg.LeftAffix + masked, pos + e.leftLen
}

// Display renders a stored raw value the way Apply would show it.
func (e *Engine) Display(raw string) string {
	display, _ := e.Render(raw, 0)
	return display
}

// Render is Display with a caret: pos is an offset into raw, the result an
// offset into the returned display text.
func (e *Engine) Render(raw string, pos int) (string, int) {
	filtered, pos := e.FilterAllowed(raw, pos)
	masked, pos := e.Format(filtered, pos)
	if e.tmpl.IsEmpty() {
		masked += e.cfg.RightAffix
	}
	return e.cfg.LeftAffix + masked, pos + e.leftLen
}

// Value extracts the logical raw value from a display string.
func (e *Engine) Value(display string) string {
	text, _ := e.StripAffixes(display, 0)
	raw, _ := e.extract(text, 0)
	return raw
}

// EditableRange returns the caret bounds of display that lie between the
// affixes.
func (e *Engine) EditableRange(display string) (int, int) {
	length := utf8.RuneCountInString(display)
	lo, hi := 0, length
	if e.cfg.LeftAffix != "" && strings.HasPrefix(display, e.cfg.LeftAffix) {
		lo = e.leftLen
	}
	if e.cfg.RightAffix != "" && strings.HasSuffix(display, e.cfg.RightAffix) && length-e.rightLen >= lo {
		hi = length - e.rightLen
	}
	return lo, hi
}

// extract picks the unformatting strategy: character filtering when the field
// restricts input, template matching otherwise.
func (e *Engine) extract(text string, pos int) (string, int) {
	if e.tmpl.IsEmpty() {
		return text, pos
	}
	if !e.cfg.Allowed.IsUniversal() {
		return e.FilterAllowed(text, pos)
	}
	return e.UnformatAt(text, pos)
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
