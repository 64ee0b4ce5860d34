package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound indicates the profile file does not exist
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidYAML indicates YAML parsing failed
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrProfileNotFound indicates a profile name is not defined
	ErrProfileNotFound = errors.New("profile not found")

	// ErrMissingRequiredField indicates a required field is missing
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidValue indicates a field has an invalid value
	ErrInvalidValue = errors.New("invalid field value")
)

// ValidationError wraps profile validation errors with context
type ValidationError struct {
	Profile string
	Field   string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("profile '%s': field '%s': %v", e.Profile, e.Field, e.Err)
	}
	return fmt.Sprintf("profile '%s': %v", e.Profile, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(profile, field string, err error) *ValidationError {
	return &ValidationError{
		Profile: profile,
		Field:   field,
		Err:     err,
	}
}

// LoadError wraps loading errors with file context
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new load error
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{
		File: file,
		Err:  err,
	}
}
