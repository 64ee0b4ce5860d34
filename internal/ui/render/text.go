package render

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const ellipsis = '…'

// cellWidth returns how many terminal columns ru occupies. Zero-width runes
// report 0; callers that always advance use advance instead.
func (r *Renderer) cellWidth(ru rune) int {
	if w, ok := r.widths[ru]; ok {
		return w
	}
	w := max(runewidth.RuneWidth(ru), 0)
	if r.widths == nil {
		r.widths = make(map[rune]int)
	}
	r.widths[ru] = w
	return w
}

// advance is cellWidth with a floor of one column, used when every rune
// (control replacements included) gets its own cell.
func (r *Renderer) advance(ru rune) int {
	return max(r.cellWidth(ru), 1)
}

func (r *Renderer) textWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.cellWidth(ru)
	}
	return width
}

// fitText shortens text to maxWidth columns, ending it with an ellipsis when
// anything was cut.
func (r *Renderer) fitText(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.textWidth(text) <= maxWidth {
		return text
	}

	room := maxWidth - r.advance(ellipsis)
	if room <= 0 {
		return string(ellipsis)
	}

	var b strings.Builder
	used := 0
	for _, ru := range text {
		w := r.cellWidth(ru)
		if used+w > room {
			break
		}
		b.WriteRune(ru)
		used += w
	}
	b.WriteRune(ellipsis)
	return b.String()
}

// drawText writes text from startX, stopping before maxX. Combining marks
// share the cell of the rune they follow. Returns the first free column.
func (r *Renderer) drawText(startX, y, maxX int, text string, style tcell.Style) int {
	runes := []rune(text)
	x := startX
	for i := 0; i < len(runes) && x < maxX; {
		base := runes[i]
		i++
		var marks []rune
		for i < len(runes) && isCombining(runes[i]) {
			marks = append(marks, runes[i])
			i++
		}
		r.screen.SetContent(x, y, base, marks, style)
		x += r.cellWidth(base)
	}
	return x
}

// drawCell writes one rune and blanks the trailing columns of a wide rune so
// stale content never shows through. Returns the next column.
func (r *Renderer) drawCell(x, y, maxX int, ru rune, style tcell.Style) int {
	if x >= maxX {
		return x
	}
	width := r.advance(ru)
	r.screen.SetContent(x, y, ru, nil, style)
	for w := 1; w < width && x+w < maxX; w++ {
		r.screen.SetContent(x+w, y, ' ', nil, style)
	}
	return x + width
}

// fillRow paints blanks from x up to maxX.
func (r *Renderer) fillRow(x, y, maxX int, style tcell.Style) {
	for ; x < maxX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

func isCombining(ru rune) bool {
	return unicode.In(ru, unicode.Mn, unicode.Me)
}
