package domain_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

func TestErrorKinds_Unwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		want    error
		wantKey string
	}{
		{"not found", &domain.NotFoundError{Entity: "company", ID: "01H"}, domain.ErrNotFound, domain.KeyNotFound},
		{"duplicate", &domain.DuplicateError{Entity: "company", Candidate: "Acme"}, domain.ErrConflict, domain.KeyDuplicate},
		{"validation", domain.RequiredField("id"), domain.ErrValidation, domain.KeyValidation},
		{"rule default kind", domain.NewRuleError("schedule.collision"), domain.ErrValidation, "schedule.collision"},
		{"rule explicit kind", &domain.RuleError{Key: "x", Kind: domain.ErrConflict}, domain.ErrConflict, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !errors.Is(tt.err, tt.want) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.want)
			}

			var loc domain.Localizable
			if !errors.As(tt.err, &loc) {
				t.Fatalf("%T does not implement Localizable", tt.err)
			}
			if got := loc.MessageKey(); got != tt.wantKey {
				t.Errorf("MessageKey() = %q, want %q", got, tt.wantKey)
			}
		})
	}
}

func TestNotFoundError_Args(t *testing.T) {
	t.Parallel()

	err := &domain.NotFoundError{Entity: "todo", ID: "abc"}
	args := err.MessageArgs()
	if len(args) != 2 || args[0] != "todo" || args[1] != "abc" {
		t.Errorf("MessageArgs() = %v, want [todo abc]", args)
	}
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{"name": "required", "email": "email"}}
	want := "validation error: email: email; name: required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestPersonality_IsValid(t *testing.T) {
	t.Parallel()

	if !domain.PersonalitySteady.IsValid() {
		t.Error("STEADY should be valid")
	}
	if domain.Personality("").IsValid() {
		t.Error("empty personality should be invalid")
	}
}
