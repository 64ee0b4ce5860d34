package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/maskfield/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.FormState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.FormState) []string {
	if state == nil {
		return nil
	}

	segments := contextualHelpSegments(state)
	segments = append(segments, persistentHelpSegments(state)...)

	return segments
}

func contextualHelpSegments(state *statepkg.FormState) []string {
	if len(state.Fields) > 1 {
		submit := "↵: next"
		if state.FocusIndex >= len(state.Fields)-1 {
			submit = "↵: submit"
		}
		return []string{"Tab/⇧Tab: field", submit}
	}
	return []string{"↵: submit"}
}

func persistentHelpSegments(state *statepkg.FormState) []string {
	segments := []string{"^U: clear"}
	if state.ClipboardAvailable {
		segments = append(segments, "^Y: yank value")
	}
	segments = append(segments, "F1: help", "Esc: quit")
	return segments
}
