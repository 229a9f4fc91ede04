package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Message keys shared by the error types below. Rule-specific keys are
// declared next to the rule that raises them.
const (
	KeyNotFound   = "entity.not_found"
	KeyDuplicate  = "entity.duplicate"
	KeyValidation = "request.invalid"
	KeyRequired   = "required"
)

// Localizable is implemented by errors that carry a message key and arguments
// for rendering through a translation catalog at the HTTP boundary.
type Localizable interface {
	MessageKey() string
	MessageArgs() []any
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details. Field values are message keys.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// MessageKey implements Localizable.
func (e *ValidationError) MessageKey() string { return KeyValidation }

// MessageArgs implements Localizable.
func (e *ValidationError) MessageArgs() []any { return []any{len(e.Fields)} }

// RequiredField returns a ValidationError for a single missing field.
func RequiredField(field string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: KeyRequired}}
}

// NotFoundError reports that no record of the given entity type has the id.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Entity, e.ID, ErrNotFound.Error())
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// MessageKey implements Localizable.
func (e *NotFoundError) MessageKey() string { return KeyNotFound }

// MessageArgs implements Localizable.
func (e *NotFoundError) MessageArgs() []any { return []any{e.Entity, e.ID} }

// DuplicateError reports that a create collided with an existing record.
// Candidate describes the conflicting input (usually its natural key).
type DuplicateError struct {
	Entity    string
	Candidate string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q already exists: %s", e.Entity, e.Candidate, ErrConflict.Error())
}

func (e *DuplicateError) Unwrap() error { return ErrConflict }

// MessageKey implements Localizable.
func (e *DuplicateError) MessageKey() string { return KeyDuplicate }

// MessageArgs implements Localizable.
func (e *DuplicateError) MessageArgs() []any { return []any{e.Entity, e.Candidate} }

// RuleError is a domain rule violation identified by a message key.
// Kind selects the sentinel it unwraps to; nil means ErrValidation.
type RuleError struct {
	Key  string
	Args []any
	Kind error
}

// NewRuleError creates a RuleError that unwraps to ErrValidation.
func NewRuleError(key string, args ...any) *RuleError {
	return &RuleError{Key: key, Args: args}
}

func (e *RuleError) Error() string {
	if len(e.Args) == 0 {
		return e.Key
	}
	return fmt.Sprintf("%s %v", e.Key, e.Args)
}

func (e *RuleError) Unwrap() error {
	if e.Kind == nil {
		return ErrValidation
	}
	return e.Kind
}

// MessageKey implements Localizable.
func (e *RuleError) MessageKey() string { return e.Key }

// MessageArgs implements Localizable.
func (e *RuleError) MessageArgs() []any { return e.Args }
