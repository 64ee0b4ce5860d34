package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/maskfield/internal/mask"
	statepkg "github.com/kk-code-lab/maskfield/internal/state"
)

var testPhoneConfig = mask.Config{
	Template:  "(###) ###-####",
	Allowed:   mask.Digits,
	LeftAffix: "+1 ",
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func screenRow(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(string(runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func screenCell(screen tcell.SimulationScreen, x, y int) tcell.SimCell {
	cells, w, _ := screen.GetContents()
	return cells[y*w+x]
}

func newTestForm() *statepkg.FormState {
	return &statepkg.FormState{
		Fields: []statepkg.Field{
			statepkg.NewField("phone", "Phone", "(555) 123-4567", testPhoneConfig, "5551234567"),
			statepkg.NewField("date", "Date", "MM/DD/YYYY", mask.Config{Template: "##/##/####", Allowed: mask.Digits}, ""),
		},
	}
}

func TestFitText(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{
			name:   "fits without truncation",
			text:   "(555) 123",
			width:  20,
			expect: "(555) 123",
		},
		{
			name:   "adds ellipsis when needed",
			text:   "verylongname",
			width:  6,
			expect: "veryl…",
		},
		{
			name:   "only ellipsis when width too small",
			text:   "example",
			width:  1,
			expect: "…",
		},
		{
			name:   "multi-byte characters respected",
			text:   "你好世界",
			width:  5,
			expect: "你好…",
		},
		{
			name:   "returns empty when width is zero",
			text:   "anything",
			width:  0,
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := r.fitText(tt.text, tt.width)
			if actual != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, actual, tt.width)
			}
		})
	}
}

func TestTextWidth(t *testing.T) {
	r := NewRenderer(nil)

	if got := r.textWidth("abc"); got != 3 {
		t.Fatalf("expected ASCII width 3, got %d", got)
	}

	if got := r.textWidth("你好"); got != 4 {
		t.Fatalf("expected wide rune width 4, got %d", got)
	}
}

func TestClassifyRunesLeftToRight(t *testing.T) {
	field := statepkg.NewField("weight", "Weight", "", mask.Config{
		Template:   "#.##",
		Allowed:    mask.Digits,
		RightAffix: " kg",
	}, "123")

	got := classifyRunes(&field)
	want := []runeRole{roleInput, roleLiteral, roleInput, roleInput, roleAffix, roleAffix, roleAffix}
	if len(got) != len(want) {
		t.Fatalf("classifyRunes(%q) = %v, want %v", field.Display, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("classifyRunes(%q) = %v, want %v", field.Display, got, want)
		}
	}
}

func TestClassifyRunesRightToLeftAlignsToTemplateEnd(t *testing.T) {
	field := statepkg.NewField("time", "Time", "", mask.Config{
		Template:  "##:##",
		Allowed:   mask.Digits,
		Direction: mask.RightToLeft,
	}, "930")

	if field.Display != "9:30" {
		t.Fatalf("Display = %q, want %q", field.Display, "9:30")
	}
	got := classifyRunes(&field)
	want := []runeRole{roleInput, roleLiteral, roleInput, roleInput}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("classifyRunes(%q) = %v, want %v", field.Display, got, want)
		}
	}
}

func TestRenderDrawsFieldsAndCaret(t *testing.T) {
	screen := newTestScreen(t, 60, 10)
	r := NewRenderer(screen)
	state := newTestForm()

	r.Render(state)

	if row := screenRow(screen, 0); !strings.HasPrefix(row, "maskfield › phone (###) ###-####") {
		t.Errorf("header row = %q", row)
	}
	if row := screenRow(screen, 2); row != "Phone  +1 (555) 123-4567" {
		t.Errorf("phone row = %q", row)
	}
	if row := screenRow(screen, 3); row != "Date   MM/DD/YYYY" {
		t.Errorf("date row = %q", row)
	}

	x, y, visible := screen.GetCursor()
	if !visible || x != 24 || y != 2 {
		t.Errorf("cursor = (%d,%d,%v), want (24,2,true)", x, y, visible)
	}

	_, _, affixAttrs := screenCell(screen, 7, 2).Style.Decompose()
	if affixAttrs&tcell.AttrBold == 0 {
		t.Error("left affix should be bold")
	}
	_, _, literalAttrs := screenCell(screen, 10, 2).Style.Decompose()
	if literalAttrs&tcell.AttrDim == 0 {
		t.Error("template literal should be dim")
	}
	_, _, inputAttrs := screenCell(screen, 11, 2).Style.Decompose()
	if inputAttrs&(tcell.AttrBold|tcell.AttrDim) != 0 {
		t.Error("entered digits should use the plain style")
	}
	_, _, placeholderAttrs := screenCell(screen, 7, 3).Style.Decompose()
	if placeholderAttrs&tcell.AttrDim == 0 {
		t.Error("placeholder should be dim")
	}
}

func TestRenderStatusLine(t *testing.T) {
	screen := newTestScreen(t, 80, 10)
	r := NewRenderer(screen)
	state := newTestForm()

	r.Render(state)
	if row := screenRow(screen, 8); !strings.Contains(row, `value: "5551234567" · complete`) {
		t.Errorf("status row = %q", row)
	}
	if row := screenRow(screen, 9); !strings.Contains(row, "F1: help") {
		t.Errorf("footer row = %q", row)
	}

	state.Fields[0].Display = "+1 (55x"
	r.Render(state)
	if row := screenRow(screen, 8); !strings.Contains(row, "invalid at 3") {
		t.Errorf("status row = %q, want invalid marker", row)
	}
}

func TestRenderCursorOnBlankFocusedField(t *testing.T) {
	screen := newTestScreen(t, 60, 10)
	r := NewRenderer(screen)
	state := newTestForm()
	state.FocusIndex = 1

	r.Render(state)

	x, y, visible := screen.GetCursor()
	if !visible || x != 7 || y != 3 {
		t.Errorf("cursor = (%d,%d,%v), want (7,3,true)", x, y, visible)
	}
}

func TestRenderScrollsLongField(t *testing.T) {
	screen := newTestScreen(t, 16, 10)
	r := NewRenderer(screen)
	state := newTestForm()

	r.Render(state)

	x, y, visible := screen.GetCursor()
	if !visible || y != 2 || x != 15 {
		t.Errorf("cursor = (%d,%d,%v), want (15,2,true)", x, y, visible)
	}
	if row := screenRow(screen, 2); !strings.HasSuffix(row, "-4567") {
		t.Errorf("scrolled row = %q, want the caret end visible", row)
	}
}

func TestRenderHelpOverlay(t *testing.T) {
	screen := newTestScreen(t, 60, 30)
	r := NewRenderer(screen)
	state := newTestForm()
	state.HelpVisible = true

	r.Render(state)

	if row := screenRow(screen, 0); !strings.Contains(row, "Help") {
		t.Errorf("help title row = %q", row)
	}
	if _, _, visible := screen.GetCursor(); visible {
		t.Error("cursor should be hidden behind the help overlay")
	}
}
