package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// createTag marks fields that must be present when an entity is created.
// Updates are partial, so the same fields are optional there.
const createTag = "create"

// Validator checks decoded request bodies against their struct tags.
// Format rules live in `validate` tags and apply to every request; presence
// rules live in `create` tags and apply only on create.
type Validator struct {
	format   *validator.Validate
	presence *validator.Validate
}

// NewValidator returns a Validator that reports fields by their JSON names.
func NewValidator() *Validator {
	format := validator.New(validator.WithRequiredStructEnabled())
	format.RegisterTagNameFunc(jsonFieldName)

	presence := validator.New(validator.WithRequiredStructEnabled())
	presence.SetTagName(createTag)
	presence.RegisterTagNameFunc(jsonFieldName)

	return &Validator{format: format, presence: presence}
}

// Create checks format and presence rules.
func (v *Validator) Create(s any) error {
	return v.check(s, v.format, v.presence)
}

// Update checks format rules only.
func (v *Validator) Update(s any) error {
	return v.check(s, v.format)
}

func (v *Validator) check(s any, validators ...*validator.Validate) error {
	fields := make(map[string]string)
	for _, val := range validators {
		err := val.Struct(s)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating %T: %w", s, err)
		}
		for _, fe := range verrs {
			field := fieldPath(fe.Namespace())
			// A format failure says more than a missing value.
			if _, seen := fields[field]; !seen {
				fields[field] = fe.Tag()
			}
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// fieldPath drops the root type name: "Form.users[0].role" -> "users[0].role".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}
