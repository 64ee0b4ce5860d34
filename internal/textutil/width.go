package textutil

import "github.com/mattn/go-runewidth"

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	width := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		width += w
	}
	return width
}

// CaretColumn converts a caret offset in runes into a terminal column
// relative to the start of text. Offsets past the end land just after the
// last cell.
func CaretColumn(text string, caret int) int {
	if caret <= 0 {
		return 0
	}
	column := 0
	index := 0
	for _, ru := range text {
		if index >= caret {
			break
		}
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			w = 1
		}
		column += w
		index++
	}
	return column
}
