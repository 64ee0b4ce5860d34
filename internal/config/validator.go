package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kk-code-lab/maskfield/internal/mask"
)

// validate checks every profile and joins all failures into one error.
func validate(profiles []Profile) error {
	var errs []error
	seen := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, NewValidationError("", "name", ErrMissingRequiredField))
			continue
		}
		if seen[p.Name] {
			errs = append(errs, NewValidationError(p.Name, "name", fmt.Errorf("%w: duplicate profile", ErrInvalidValue)))
			continue
		}
		seen[p.Name] = true

		cfg, err := p.MaskConfig()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if cfg.Template != "" && !strings.ContainsRune(cfg.Template, cfg.Replacement) {
			slog.Warn("Template has no input slots", "profile", p.Name, "template", cfg.Template)
		}
		if cfg.Direction == mask.RightToLeft && cfg.Allowed.IsUniversal() {
			// Template matching only understands left-to-right layouts.
			slog.Warn("Right-to-left profile without allowed characters; value extraction is best effort",
				"profile", p.Name)
		}
	}
	return errors.Join(errs...)
}
