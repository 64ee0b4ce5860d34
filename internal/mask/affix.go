package mask

import (
	"strings"
	"unicode/utf8"
)

// StripAffixes removes the fixed left and right affixes from text and shifts
// pos left past the removed prefix. When the full left affix is missing but
// the affix minus its last character is present (the user backspaced into
// it), that shorter prefix is removed instead. pos never goes below zero.
func (e *Engine) StripAffixes(text string, pos int) (string, int) {
	result := text

	// Right side first: a suffix match cannot be confused with entered text.
	if right := e.cfg.RightAffix; right != "" && strings.HasSuffix(result, right) {
		result = result[:len(result)-len(right)]
	}

	if left := e.cfg.LeftAffix; left != "" {
		if strings.HasPrefix(result, left) {
			result = result[len(left):]
			pos -= e.leftLen
		} else if e.leftLen > 1 {
			_, size := utf8.DecodeLastRuneInString(left)
			shortened := left[:len(left)-size]
			if strings.HasPrefix(result, shortened) {
				result = result[len(shortened):]
				pos -= e.leftLen - 1
			}
		}
	}

	if pos < 0 {
		pos = 0
	}
	return result, pos
}
