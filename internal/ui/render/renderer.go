package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/maskfield/internal/mask"
	statepkg "github.com/kk-code-lab/maskfield/internal/state"
	textutil "github.com/kk-code-lab/maskfield/internal/textutil"
)

const (
	formStartY    = 2
	labelPadding  = 2
	maxLabelWidth = 24
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	widths map[rune]int // only touched from the event loop
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// runeRole tells the renderer how to style one display rune.
type runeRole int

const (
	roleInput runeRole = iota
	roleLiteral
	roleAffix
)

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.FormState) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()

	if state != nil && state.HelpVisible {
		r.drawHelpOverlay(state, w, h)
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawForm(state, w, h)
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with the title and the focused profile.
func (r *Renderer) drawHeader(state *statepkg.FormState, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	endX := r.drawText(0, 0, w, "maskfield", headerStyle.Bold(true))
	if field := state.FocusedField(); field != nil && endX < w {
		detail := " › " + field.Profile
		if tmpl := field.Engine.Config().Template; tmpl != "" {
			detail += " " + tmpl
		}
		detail = textutil.SanitizeTerminalText(detail)
		detail = r.fitText(detail, w-endX)
		endX = r.drawText(endX, 0, w, detail, headerStyle)
	}
	r.fillRow(endX, 0, w, headerStyle)
}

func (r *Renderer) labelColumnWidth(state *statepkg.FormState) int {
	width := 0
	for i := range state.Fields {
		if lw := r.textWidth(state.Fields[i].Label); lw > width {
			width = lw
		}
	}
	if width > maxLabelWidth {
		width = maxLabelWidth
	}
	return width + labelPadding
}

// drawForm renders one row per field and places the terminal cursor on the
// focused field's caret.
func (r *Renderer) drawForm(state *statepkg.FormState, w, h int) {
	if state == nil {
		return
	}

	labelWidth := r.labelColumnWidth(state)
	lastRow := h - 3 // status + footer
	for i := range state.Fields {
		y := formStartY + i
		if y > lastRow {
			break
		}
		field := &state.Fields[i]
		focused := i == state.FocusIndex

		labelStyle := tcell.StyleDefault.Foreground(r.theme.LabelFg)
		if focused {
			labelStyle = tcell.StyleDefault.Background(r.theme.FocusLabelBg).Foreground(r.theme.FocusLabelFg).Bold(true)
		}
		label := r.fitText(textutil.SanitizeTerminalText(field.Label), labelWidth-labelPadding)
		x := r.drawText(0, y, labelWidth, label, labelStyle)
		r.fillRow(x, y, min(labelWidth-1, w), labelStyle)

		startX := labelWidth
		if startX >= w {
			continue
		}

		if field.Display == "" {
			placeholder := textutil.SanitizeTerminalText(field.PlaceholderText())
			style := tcell.StyleDefault.Foreground(r.theme.PlaceholderFg).Dim(true)
			x := startX
			for _, ru := range placeholder {
				x = r.drawCell(x, y, w, ru, style)
			}
			if focused {
				r.screen.ShowCursor(startX, y)
			}
			continue
		}

		offset := r.scrollOffset(field, w-startX)
		r.drawField(field, startX, y, w, offset)
		if focused {
			caretX := startX + textutil.CaretColumn(field.Display, field.Caret) - offset
			if caretX >= w {
				caretX = w - 1
			}
			r.screen.ShowCursor(caretX, y)
		}
	}
}

// scrollOffset returns how many columns to skip so the caret stays visible
// in a field narrower than its content.
func (r *Renderer) scrollOffset(field *statepkg.Field, width int) int {
	if width <= 0 {
		return 0
	}
	caretCol := textutil.CaretColumn(field.Display, field.Caret)
	if caretCol < width {
		return 0
	}
	return caretCol - width + 1
}

func (r *Renderer) drawField(field *statepkg.Field, startX, y, maxX, offset int) {
	roles := classifyRunes(field)
	col := 0
	x := startX
	i := 0
	for _, ru := range field.Display {
		if col >= offset {
			x = r.drawCell(x, y, maxX, textutil.SanitizeRune(ru), r.roleStyle(roles[i]))
		}
		col += r.advance(ru)
		i++
	}
}

func (r *Renderer) roleStyle(role runeRole) tcell.Style {
	switch role {
	case roleAffix:
		return tcell.StyleDefault.Foreground(r.theme.AffixFg).Bold(true)
	case roleLiteral:
		return tcell.StyleDefault.Foreground(r.theme.LiteralFg).Dim(true)
	default:
		return tcell.StyleDefault.Foreground(r.theme.InputFg)
	}
}

// classifyRunes labels each rune of the field's display as affix, template
// literal or entered text. Left-to-right text lines up with the start of the
// template, right-to-left text with its end.
func classifyRunes(field *statepkg.Field) []runeRole {
	runes := []rune(field.Display)
	roles := make([]runeRole, len(runes))
	lo, hi := field.Engine.EditableRange(field.Display)

	tmpl := field.Engine.Template()
	offset := 0
	if field.Engine.Config().Direction == mask.RightToLeft {
		offset = tmpl.Len() - (hi - lo)
	}

	for i := range runes {
		switch {
		case i < lo || i >= hi:
			roles[i] = roleAffix
		case tmpl.IsEmpty():
			roles[i] = roleInput
		case !tmpl.IsSlotAt(offset + i - lo):
			roles[i] = roleLiteral
		}
	}
	return roles
}

func (r *Renderer) drawStatusLine(state *statepkg.FormState, w, h int) {
	normalStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	flashStyle := tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)

	// Check if we should flash (within 0.1 seconds of last yank)
	isFlashing := false
	if state != nil && !state.LastYankTime.IsZero() {
		elapsed := time.Since(state.LastYankTime)
		isFlashing = elapsed < 100*time.Millisecond
	}

	if h >= 2 {
		statusY := h - 2
		status := formatFieldStatus(state.FocusedField())
		statusStyle := normalStyle.Foreground(r.theme.ValidFg)
		if !status.valid {
			statusStyle = normalStyle.Foreground(r.theme.InvalidFg)
		}
		text := status.text
		if state != nil && state.LastError != nil {
			text = "error: " + state.LastError.Error()
			statusStyle = normalStyle.Foreground(r.theme.InvalidFg)
		}
		if isFlashing {
			statusStyle = flashStyle
		}
		text = r.fitText(textutil.SanitizeTerminalText(" "+text), w)
		x := r.drawText(0, statusY, w, text, statusStyle)
		r.fillRow(x, statusY, w, statusStyle)
	}

	// Draw help text on last line
	helpText := buildFooterHelpText(state)
	if helpText == "" {
		helpText = " "
	}
	helpText = textutil.SanitizeTerminalText(helpText)

	helpY := h - 1
	x := r.drawText(0, helpY, w, helpText, normalStyle)
	r.fillRow(x, helpY, w, normalStyle)
}
