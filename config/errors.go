// Package config loads glowfield settings from YAML, environment and flags
// Defaults come from the constant package, Validate must pass before use
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, matched with errors.Is against Load, ApplyEnv and Validate results
var (
	ErrInvalidConfig  = errors.New("config: invalid configuration")
	ErrInvalidYAML    = errors.New("config: invalid YAML syntax")
	ErrInvalidEnv     = errors.New("config: invalid environment override")
	ErrInvalidPalette = errors.New("config: palette must hold exactly 4 colors")
	ErrInvalidColor   = errors.New("config: invalid hex color")
	ErrInvalidRange   = errors.New("config: value out of range")
	ErrInvalidOption  = errors.New("config: unknown option")
)

// ValidationError is one rejected setting, keyed by its dotted YAML path
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error // sentinel
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors collects every rejected setting of one Validate pass
// Always matches ErrInvalidConfig, plus the sentinel of each entry
type ValidationErrors struct {
	Errors []ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "config: no validation errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("config: %d invalid settings: %s", len(e.Errors), strings.Join(msgs, "; "))
}

func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}

// add appends a validation failure
func (e *ValidationErrors) add(field, msg string, value any, wrapped error) {
	e.Errors = append(e.Errors, ValidationError{
		Field:   field,
		Message: msg,
		Value:   value,
		Wrapped: wrapped,
	})
}
