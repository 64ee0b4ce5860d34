package textutil

import "strings"

// formattingLabels names the invisible bidi and zero-width runes. Shown raw,
// they could reorder or hide parts of a field value.
var formattingLabels = map[rune]string{
	0x00AD: "⟪SHY⟫",
	0x061C: "⟪ALM⟫",
	0x180E: "⟪MVS⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200D: "⟪ZWJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0x206A: "⟪ISS⟫",
	0x206B: "⟪ASS⟫",
	0x206C: "⟪IAFS⟫",
	0x206D: "⟪AAFS⟫",
	0x206E: "⟪NADS⟫",
	0x206F: "⟪NODS⟫",
	0xFEFF: "⟪BOM⟫",
}

type runeClass int

const (
	classPrintable runeClass = iota
	classSpace               // tab, newline, carriage return
	classControl
	classFormatting
)

func classify(r rune) runeClass {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return classSpace
	case r < 0x20 || r == 0x7f:
		return classControl
	}
	if _, ok := formattingLabels[r]; ok {
		return classFormatting
	}
	return classPrintable
}

func allPrintable(text string) bool {
	for _, r := range text {
		if classify(r) != classPrintable {
			return false
		}
	}
	return true
}

// SanitizeTerminalText makes text safe to draw on one terminal row: line
// breaks and tabs become spaces, control characters become '?', and
// formatting runes are replaced by a visible label.
func SanitizeTerminalText(text string) string {
	if allPrintable(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch classify(r) {
		case classSpace:
			b.WriteByte(' ')
		case classControl:
			b.WriteByte('?')
		case classFormatting:
			b.WriteString(formattingLabels[r])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeRune is the one-cell form of SanitizeTerminalText, for text drawn
// rune by rune where the caret column must not shift.
func SanitizeRune(r rune) rune {
	switch classify(r) {
	case classSpace:
		return ' '
	case classControl, classFormatting:
		return '?'
	default:
		return r
	}
}

// StripControlRunes drops everything SanitizeTerminalText would replace. Use
// it on text entering a field, where a visible label would become part of the
// value.
func StripControlRunes(text string) string {
	if allPrintable(text) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if classify(r) == classPrintable {
			b.WriteRune(r)
		}
	}
	return b.String()
}
