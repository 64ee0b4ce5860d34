package mask

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// CharSet is the set of characters a field accepts. The zero value accepts
// every character.
type CharSet struct {
	table *unicode.RangeTable
}

var (
	// Digits accepts the ASCII digits 0-9.
	Digits = NewCharSet("0123456789")
	// HexDigits accepts 0-9, a-f and A-F.
	HexDigits = NewCharSet("0123456789abcdefABCDEF")
	// Letters accepts any Unicode letter.
	Letters = CharSet{table: unicode.Letter}
	// Alphanumeric accepts Unicode letters and ASCII digits.
	Alphanumeric = Union(Letters, Digits)
	// AllChars accepts everything.
	AllChars = CharSet{}
)

var charClasses = map[string]CharSet{
	"all":          AllChars,
	"digits":       Digits,
	"hex":          HexDigits,
	"letters":      Letters,
	"alnum":        Alphanumeric,
	"alphanumeric": Alphanumeric,
}

// NewCharSet builds a set holding exactly the characters of chars. An empty
// string yields the universal set.
func NewCharSet(chars string) CharSet {
	if chars == "" {
		return CharSet{}
	}
	return CharSet{table: rangetable.New([]rune(chars)...)}
}

// Union merges sets. If any operand is universal the result is universal.
func Union(sets ...CharSet) CharSet {
	tables := make([]*unicode.RangeTable, 0, len(sets))
	for _, set := range sets {
		if set.IsUniversal() {
			return CharSet{}
		}
		tables = append(tables, set.table)
	}
	if len(tables) == 0 {
		return CharSet{}
	}
	return CharSet{table: rangetable.Merge(tables...)}
}

// ParseCharClass resolves a named class such as "digits" or "alnum".
func ParseCharClass(name string) (CharSet, error) {
	set, ok := charClasses[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CharSet{}, fmt.Errorf("unknown character class %q", name)
	}
	return set, nil
}

// Contains reports whether r is accepted.
func (s CharSet) Contains(r rune) bool {
	if s.table == nil {
		return true
	}
	return unicode.Is(s.table, r)
}

// IsUniversal reports whether the set accepts every character.
func (s CharSet) IsUniversal() bool {
	return s.table == nil
}
