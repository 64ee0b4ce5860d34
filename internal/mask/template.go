package mask

import "strings"

// SegmentKind tells literal runs apart from input slots.
type SegmentKind int

const (
	Literal SegmentKind = iota
	Slot
)

// Segment is one piece of a parsed template. Slots always carry an empty Text.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Template is a format pattern split on its replacement character. Literal
// run i is the text immediately before slot i; the final run trails the last
// slot. Runs may be empty, and there is always one more run than there are
// slots.
type Template struct {
	pattern     []rune
	replacement rune
	literals    []string
	literalRuns [][]rune
}

// ParseTemplate splits pattern into literal runs around each occurrence of
// replacement.
func ParseTemplate(pattern string, replacement rune) Template {
	literals := strings.Split(pattern, string(replacement))
	runs := make([][]rune, len(literals))
	for i, literal := range literals {
		runs[i] = []rune(literal)
	}
	return Template{
		pattern:     []rune(pattern),
		replacement: replacement,
		literals:    literals,
		literalRuns: runs,
	}
}

// IsEmpty reports whether formatting is disabled.
func (t Template) IsEmpty() bool {
	return len(t.pattern) == 0
}

// Slots is the number of raw characters the template can hold.
func (t Template) Slots() int {
	if len(t.literals) == 0 {
		return 0
	}
	return len(t.literals) - 1
}

// Len is the length of the fully filled template in characters.
func (t Template) Len() int {
	return len(t.pattern)
}

// Literals returns the literal runs L[0..n].
func (t Template) Literals() []string {
	out := make([]string, len(t.literals))
	copy(out, t.literals)
	return out
}

// Segments returns the template as an ordered list of literal runs and slots,
// skipping empty runs.
func (t Template) Segments() []Segment {
	segments := make([]Segment, 0, len(t.literals)*2)
	for i, literal := range t.literals {
		if literal != "" {
			segments = append(segments, Segment{Kind: Literal, Text: literal})
		}
		if i < len(t.literals)-1 {
			segments = append(segments, Segment{Kind: Slot})
		}
	}
	return segments
}

// String returns the original pattern.
func (t Template) String() string {
	return string(t.pattern)
}

func (t Template) isSlot(r rune) bool {
	return r == t.replacement
}

// IsSlotAt reports whether position i of the filled template is an input slot.
func (t Template) IsSlotAt(i int) bool {
	return i >= 0 && i < len(t.pattern) && t.isSlot(t.pattern[i])
}
