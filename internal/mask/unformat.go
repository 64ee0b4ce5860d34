package mask

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoMatch is wrapped by every error UnformatStrict returns.
var ErrNoMatch = errors.New("text does not match template")

// MatchError pinpoints where a masked string left the template.
type MatchError struct {
	Offset   int
	Expected string
	Got      rune
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("offset %d: expected %s, got %q", e.Offset, e.Expected, e.Got)
}

func (e *MatchError) Unwrap() error {
	return ErrNoMatch
}

// UnformatWithSuffix is the historical extractor: it returns the raw value
// followed by the right affix. Prefer UnformatRaw unless a caller depends on
// the suffix.
func (e *Engine) UnformatWithSuffix(masked string) string {
	if e.tmpl.IsEmpty() || masked == "" {
		return masked
	}
	return e.UnformatRaw(masked) + e.cfg.RightAffix
}

// UnformatRaw extracts the raw value from masked by locating each literal run
// of the template in order. This is a heuristic: input that does not follow
// the template, or raw characters equal to a literal, can produce the wrong
// value. Right-to-left fields should use SimpleUnformat.
func (e *Engine) UnformatRaw(masked string) string {
	raw, _ := e.UnformatAt(masked, 0)
	return raw
}

// UnformatAt is UnformatRaw with caret tracking: pos moves left by the number
// of literal characters removed in front of it.
func (e *Engine) UnformatAt(masked string, pos int) (string, int) {
	if e.tmpl.IsEmpty() {
		return masked, pos
	}

	if right := e.cfg.RightAffix; right != "" {
		if idx := strings.LastIndex(masked, right); idx >= 0 {
			masked = masked[:idx]
		}
	}

	text := []rune(masked)
	out := make([]rune, 0, len(text))
	start := pos
	index := 0
	for _, run := range e.tmpl.literalRuns {
		if len(run) == 0 {
			continue
		}
		found := indexRunes(text[index:], run)
		if found < 0 {
			break
		}
		found += index
		out = append(out, text[index:found]...)
		end := found + len(run)
		if start > found {
			pos -= min(end, start) - found
		}
		index = end
	}
	out = append(out, text[index:]...)

	return string(out), clamp(pos, 0, len(out))
}

// UnformatStrict extracts the raw value only when masked is a faithful
// (possibly partial) rendering of the template: every literal in place and
// every slot holding an allowed character. Otherwise it returns a
// *MatchError wrapping ErrNoMatch.
func (e *Engine) UnformatStrict(masked string) (string, error) {
	if e.tmpl.IsEmpty() {
		return masked, nil
	}
	if right := e.cfg.RightAffix; right != "" {
		masked = strings.TrimSuffix(masked, right)
	}

	text := []rune(masked)
	pattern := e.tmpl.pattern
	if len(text) > len(pattern) {
		return "", &MatchError{Offset: len(pattern), Expected: "end of input", Got: text[len(pattern)]}
	}

	// Right-to-left fields are anchored to the end of the template.
	offset := 0
	if e.cfg.Direction == RightToLeft {
		offset = len(pattern) - len(text)
	}

	out := make([]rune, 0, len(text))
	for i, r := range text {
		want := pattern[offset+i]
		if e.tmpl.isSlot(want) {
			if !e.cfg.Allowed.Contains(r) {
				return "", &MatchError{Offset: i, Expected: "an allowed character", Got: r}
			}
			out = append(out, r)
			continue
		}
		if r != want {
			return "", &MatchError{Offset: i, Expected: fmt.Sprintf("%q", want), Got: r}
		}
	}
	return string(out), nil
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j, r := range needle {
			if haystack[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}
