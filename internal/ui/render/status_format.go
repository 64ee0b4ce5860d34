package render

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kk-code-lab/maskfield/internal/mask"
	statepkg "github.com/kk-code-lab/maskfield/internal/state"
)

// fieldStatus summarizes the focused field for the status line.
type fieldStatus struct {
	text  string
	valid bool
}

func formatFieldStatus(field *statepkg.Field) fieldStatus {
	if field == nil {
		return fieldStatus{text: "no fields", valid: true}
	}

	tmpl := field.Engine.Template()
	parts := []string{fmt.Sprintf("value: %q", field.Value())}

	if _, err := field.Validate(); err != nil {
		parts = append(parts, formatValidationError(err))
		return fieldStatus{text: strings.Join(parts, " · "), valid: false}
	}

	if !tmpl.IsEmpty() {
		filled := utf8.RuneCountInString(field.Value())
		parts = append(parts, formatFillSummary(filled, tmpl.Slots()))
	}
	return fieldStatus{text: strings.Join(parts, " · "), valid: true}
}

func formatValidationError(err error) string {
	var matchErr *mask.MatchError
	if errors.As(err, &matchErr) {
		return fmt.Sprintf("invalid at %d: expected %s", matchErr.Offset, matchErr.Expected)
	}
	return "invalid: " + err.Error()
}

func formatFillSummary(filled, slots int) string {
	switch {
	case filled == 0:
		return "empty"
	case filled >= slots:
		return "complete"
	default:
		return fmt.Sprintf("%d/%d", filled, slots)
	}
}
