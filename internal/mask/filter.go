package mask

import "strings"

// FilterAllowed drops every character outside the allowed set. Each dropped
// character that sat before the caret moves the caret one step left. Without
// a template or with a universal set the text passes through untouched.
func (e *Engine) FilterAllowed(text string, pos int) (string, int) {
	if e.tmpl.IsEmpty() || e.cfg.Allowed.IsUniversal() {
		return text, pos
	}

	var builder strings.Builder
	builder.Grow(len(text))
	start := pos
	index := 0
	for _, r := range text {
		if e.cfg.Allowed.Contains(r) {
			builder.WriteRune(r)
		} else if index < start {
			pos--
		}
		index++
	}
	return builder.String(), pos
}

// SimpleUnformat recovers the raw value purely by character class. It is the
// unformatting strategy for right-to-left fields.
func (e *Engine) SimpleUnformat(text string, pos int) (string, int) {
	return e.FilterAllowed(text, pos)
}
