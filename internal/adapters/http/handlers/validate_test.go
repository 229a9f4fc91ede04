package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/person"
)

func TestFieldPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Form.name", "name"},
		{"Form.person.email", "person.email"},
		{"BulkUpdateTodosRequest.updates[3].todo.status", "updates[3].todo.status"},
		{"name", "name"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fieldPath(tt.in))
		})
	}
}

func TestValidator_NestedForms(t *testing.T) {
	t.Parallel()

	v := NewValidator()
	form := lead.Form{
		AccountID: "a-1",
		Person:    &person.Form{Email: "not-an-email", Phone: "+4915112345678"},
	}

	// Update ignores presence, so only the malformed email is reported.
	err := v.Update(&form)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"person.email": "email"}, verr.Fields)

	// Create adds the nested person's required fields.
	err = v.Create(&form)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"person.email":        "email",
		"person.first_name":   domain.KeyRequired,
		"person.linkedin_url": domain.KeyRequired,
	}, verr.Fields)
}

func TestValidator_NonStruct(t *testing.T) {
	t.Parallel()

	err := NewValidator().Update([]string{"x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestValidator_Valid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, NewValidator().Create(&lead.Form{AccountID: "a-1"}))
}
