package render

import (
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/maskfield/internal/state"
)

func TestBuildHelpOverlayLinesIncludesSections(t *testing.T) {
	state := newTestForm()
	state.ClipboardAvailable = true

	lines := buildHelpOverlayLines(state)

	assertContains := func(substr string) {
		found := false
		for _, line := range lines {
			if strings.Contains(line, substr) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected lines to contain %q, got %v", substr, lines)
		}
	}

	assertContains("Fields")
	assertContains("Editing")
	assertContains("Actions")
	assertContains("Exit")
	assertContains("Yank raw value")
	assertContains("Focused field")
	assertContains("(###) ###-####")
	assertContains(`"+1 " … ""`)
}

func TestBuildHelpOverlayLinesHidesYankWithoutClipboard(t *testing.T) {
	state := &statepkg.FormState{}
	lines := buildHelpOverlayLines(state)

	joined := strings.Join(lines, " ")
	if strings.Contains(joined, "Yank") {
		t.Fatalf("expected no yank entry without clipboard, got %v", lines)
	}
	if strings.Contains(joined, "Focused field") {
		t.Fatalf("expected no field description for an empty form, got %v", lines)
	}
}
