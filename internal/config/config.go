package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"dario.cat/mergo"
	"github.com/kk-code-lab/maskfield/internal/mask"
	"gopkg.in/yaml.v3"
)

// Profile is the serialisable description of one masked field.
type Profile struct {
	Name        string   `yaml:"name"`
	Label       string   `yaml:"label,omitempty"`
	Template    string   `yaml:"template,omitempty"`
	Replacement string   `yaml:"replacement,omitempty"` // single character, defaults to "#"
	Allowed     string   `yaml:"allowed,omitempty"`     // literal characters accepted in slots
	Classes     []string `yaml:"classes,omitempty"`     // named classes: digits, letters, alnum, hex, all
	Direction   string   `yaml:"direction,omitempty"`   // "ltr" (default) or "rtl"
	LeftAffix   string   `yaml:"left_affix,omitempty"`
	RightAffix  string   `yaml:"right_affix,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Value       string   `yaml:"value,omitempty"` // initial raw value
}

// ProfilesYAMLConfig is the on-disk profile file layout.
type ProfilesYAMLConfig struct {
	Defaults *Profile `yaml:"defaults"`
	Profiles []Profile `yaml:"profiles"`
}

// Config is the resolved, validated set of profiles.
type Config struct {
	Path     string
	Profiles []Profile
}

const (
	envConfigPath = "MASKFIELD_CONFIG"
	envLogPath    = "MASKFIELD_LOG"
)

// ResolvePath returns flagValue when set, otherwise $MASKFIELD_CONFIG.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return getEnv(envConfigPath, "")
}

// LogPath returns the log file named by $MASKFIELD_LOG, or "" for no logging.
func LogPath() string {
	return getEnv(envLogPath, "")
}

// Load resolves the built-in profiles, overlays the profile file at path
// (when path is not empty) and validates the result.
func Load(path string) (*Config, error) {
	log := slog.With("config_path", path)

	profiles := builtinProfiles()
	if path != "" {
		file, err := loadProfilesYAML(path)
		if err != nil {
			return nil, err
		}
		profiles, err = mergeProfiles(profiles, file)
		if err != nil {
			return nil, NewLoadError(path, err)
		}
	}

	if err := validate(profiles); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	log.Debug("Profiles loaded", "profiles", len(profiles))
	return &Config{Path: path, Profiles: profiles}, nil
}

func loadProfilesYAML(path string) (*ProfilesYAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewLoadError(path, ErrConfigNotFound)
		}
		return nil, NewLoadError(path, err)
	}

	var file ProfilesYAMLConfig
	if err := yaml.Unmarshal(ExpandEnv(data), &file); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}
	return &file, nil
}

// mergeProfiles overlays user profiles on the built-ins. Fields a user
// profile leaves empty are taken from the built-in of the same name, then
// from the file's defaults block. Built-in order is preserved and new
// profiles are appended in file order.
func mergeProfiles(builtin []Profile, file *ProfilesYAMLConfig) ([]Profile, error) {
	result := make([]Profile, len(builtin))
	copy(result, builtin)

	index := make(map[string]int, len(result))
	for i, p := range result {
		index[p.Name] = i
	}

	seen := make(map[string]bool, len(file.Profiles))
	for _, userProfile := range file.Profiles {
		profile := userProfile
		if profile.Name == "" {
			return nil, NewValidationError("", "name", ErrMissingRequiredField)
		}
		if seen[profile.Name] {
			return nil, NewValidationError(profile.Name, "name", fmt.Errorf("%w: duplicate profile", ErrInvalidValue))
		}
		seen[profile.Name] = true

		idx, overridesBuiltin := index[profile.Name]
		if overridesBuiltin {
			if err := mergo.Merge(&profile, builtin[idx]); err != nil {
				return nil, fmt.Errorf("failed to merge profile %s: %w", profile.Name, err)
			}
		}
		if file.Defaults != nil {
			if err := mergo.Merge(&profile, *file.Defaults); err != nil {
				return nil, fmt.Errorf("failed to apply defaults to %s: %w", profile.Name, err)
			}
		}

		if overridesBuiltin {
			result[idx] = profile
		} else {
			index[profile.Name] = len(result)
			result = append(result, profile)
		}
	}
	return result, nil
}

// Lookup returns the profile called name.
func (c *Config) Lookup(name string) (Profile, error) {
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
}

// Select returns the named profiles in the requested order, or every profile
// when names is empty.
func (c *Config) Select(names []string) ([]Profile, error) {
	if len(names) == 0 {
		out := make([]Profile, len(c.Profiles))
		copy(out, c.Profiles)
		return out, nil
	}
	out := make([]Profile, 0, len(names))
	for _, name := range names {
		p, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// DisplayLabel falls back to the profile name when no label is set.
func (p Profile) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Name
}

// MaskConfig converts the profile into an engine configuration.
func (p Profile) MaskConfig() (mask.Config, error) {
	cfg := mask.Config{
		Template:    p.Template,
		Replacement: mask.DefaultReplacement,
		LeftAffix:   p.LeftAffix,
		RightAffix:  p.RightAffix,
	}

	if p.Replacement != "" {
		r, size := utf8.DecodeRuneInString(p.Replacement)
		if r == utf8.RuneError || size != len(p.Replacement) {
			return mask.Config{}, NewValidationError(p.Name, "replacement",
				fmt.Errorf("%w: must be a single character, got %q", ErrInvalidValue, p.Replacement))
		}
		cfg.Replacement = r
	}

	direction, err := mask.ParseDirection(p.Direction)
	if err != nil {
		return mask.Config{}, NewValidationError(p.Name, "direction", fmt.Errorf("%w: %v", ErrInvalidValue, err))
	}
	cfg.Direction = direction

	var sets []mask.CharSet
	if p.Allowed != "" {
		sets = append(sets, mask.NewCharSet(p.Allowed))
	}
	for _, class := range p.Classes {
		set, err := mask.ParseCharClass(class)
		if err != nil {
			return mask.Config{}, NewValidationError(p.Name, "classes", fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
		sets = append(sets, set)
	}
	if len(sets) > 0 {
		cfg.Allowed = mask.Union(sets...)
	}

	return cfg, nil
}
