package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/maskfield/internal/state"
	textutil "github.com/kk-code-lab/maskfield/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines(state *statepkg.FormState) []string {
	sections := []helpOverlaySection{
		{
			title: "Fields",
			entries: []helpOverlayEntry{
				{keys: "Tab/↓", desc: "Next field"},
				{keys: "Shift+Tab/↑", desc: "Previous field"},
				{keys: "↵", desc: "Next field, submit on the last one"},
			},
		},
		{
			title: "Editing",
			entries: []helpOverlayEntry{
				{keys: "←/→", desc: "Move caret"},
				{keys: "Ctrl+←/→", desc: "Move by word"},
				{keys: "Home/End", desc: "Start/end of value"},
				{keys: "Backspace/Del", desc: "Delete character"},
				{keys: "Ctrl+W", desc: "Delete word"},
				{keys: "Ctrl+U", desc: "Clear field"},
			},
		},
	}

	actions := helpOverlaySection{title: "Actions"}
	if state != nil && state.ClipboardAvailable {
		actions.entries = append(actions.entries, helpOverlayEntry{keys: "Ctrl+Y", desc: "Yank raw value to clipboard"})
	}
	actions.entries = append(actions.entries, helpOverlayEntry{keys: "Ctrl+Z", desc: "Suspend to shell"})
	sections = append(sections, actions, helpOverlaySection{
		title: "Exit",
		entries: []helpOverlayEntry{
			{keys: "Esc/Ctrl+C", desc: "Quit without submitting"},
			{keys: "F1", desc: "Close this help"},
		},
	})

	lines := make([]string, 0, 24)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	if field := state.FocusedField(); field != nil {
		lines = append(lines, "", "Focused field")
		lines = append(lines, describeField(field)...)
	}

	return lines
}

func describeField(field *statepkg.Field) []string {
	cfg := field.Engine.Config()
	template := cfg.Template
	if template == "" {
		template = "(none)"
	}
	lines := []string{
		formatHelpOverlayEntry(helpOverlayEntry{keys: "profile", desc: field.Profile}),
		formatHelpOverlayEntry(helpOverlayEntry{keys: "template", desc: template}),
		formatHelpOverlayEntry(helpOverlayEntry{keys: "direction", desc: cfg.Direction.String()}),
	}
	if cfg.LeftAffix != "" || cfg.RightAffix != "" {
		lines = append(lines, formatHelpOverlayEntry(helpOverlayEntry{
			keys: "affixes",
			desc: fmt.Sprintf("%q … %q", cfg.LeftAffix, cfg.RightAffix),
		}))
	}
	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %-14s %s", key, desc)
}

func (r *Renderer) drawHelpOverlay(state *statepkg.FormState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, baseStyle)
		}
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStart := 0
	titleWidth := r.textWidth(title)
	if w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawText(titleStart, 0, w, title, headerStyle)

	bodyStyle := baseStyle
	lines := buildHelpOverlayLines(state)
	row := 2
	maxRow := h - 1
	for _, line := range lines {
		if row >= maxRow {
			break
		}
		text := strings.TrimRight(line, " ")
		text = r.fitText(text, w-4)
		r.drawText(2, row, w-2, text, bodyStyle)
		row++
	}

	footer := "F1 toggle · Esc/q close"
	if h > 0 {
		r.drawText(0, h-1, w, r.fitText(footer, w), headerStyle)
	}
}
