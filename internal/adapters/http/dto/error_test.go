package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/app"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
)

// germanRequest returns a request carrying a German localizer, as the locale
// middleware would attach for "Accept-Language: de".
func germanRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()
	c, err := i18n.New("en")
	require.NoError(t, err)
	r := httptest.NewRequest(method, target, nil)
	return r.WithContext(i18n.WithLocalizer(r.Context(), c.Localizer(language.German)))
}

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
		wantCode   string
	}{
		{
			name:       "not found error",
			err:        &domain.NotFoundError{Entity: "lead", ID: "l-1"},
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
			wantCode:   domain.KeyNotFound,
		},
		{
			name:       "validation error",
			err:        domain.RequiredField("name"),
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
			wantCode:   domain.KeyValidation,
		},
		{
			name:       "rule error",
			err:        domain.NewRuleError(app.KeyTodoLinked, "t-1", "p-1"),
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
			wantCode:   app.KeyTodoLinked,
		},
		{
			name:       "duplicate maps to 409",
			err:        &domain.DuplicateError{Entity: "company", Candidate: "Acme"},
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
			wantCode:   domain.KeyDuplicate,
		},
		{
			name:       "bare conflict",
			err:        domain.ErrConflict,
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
			wantCode:   i18n.KeyConflict,
		},
		{
			name:       "forbidden",
			err:        domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantTitle:  "Forbidden",
			wantCode:   i18n.KeyForbidden,
		},
		{
			name:       "unavailable maps to 502",
			err:        fmt.Errorf("rendering report: %w", domain.ErrUnavailable),
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
			wantCode:   i18n.KeyUnavailable,
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
			wantCode:   i18n.KeyInternal,
		},
		{
			name:       "wrapped not found preserves mapping",
			err:        fmt.Errorf("fetching todo: %w", &domain.NotFoundError{Entity: "todo", ID: "t-9"}),
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
			wantCode:   domain.KeyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/todos/t-9", nil)
			got := dto.NewErrorResponse(r, tt.err)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, "about:blank", got.Type)
			assert.Equal(t, "/api/v1/todos/t-9", got.Instance)
		})
	}
}

func TestNewErrorResponse_HidesInternalDetail(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	got := dto.NewErrorResponse(r, errors.New("mongo: connection string leaked"))

	assert.Equal(t, "an unexpected error occurred", got.Detail)
	assert.NotContains(t, got.Detail, "mongo")
}

func TestNewErrorResponse_Localized(t *testing.T) {
	t.Parallel()

	r := germanRequest(t, http.MethodGet, "/api/v1/prospects/p-1")
	got := dto.NewErrorResponse(r, &domain.NotFoundError{Entity: "prospect", ID: "p-1"})

	assert.Equal(t, "Nicht gefunden", got.Title)
	assert.Equal(t, `Interessent "p-1" wurde nicht gefunden`, got.Detail)
	assert.Equal(t, domain.KeyNotFound, got.Code)
}

func TestNewErrorResponse_ValidationErrors(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"name":              domain.KeyRequired,
		"email":             "email",
		"users[0].role":     "oneof",
		"personality.notes": "startswith",
	}}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/people", nil)
	got := dto.NewErrorResponse(r, verr)

	assert.Equal(t, "4 fields are invalid", got.Detail)
	assert.Equal(t, []dto.ErrorDetail{
		{Location: "body.email", Code: "email", Message: "must be a valid email address"},
		{Location: "body.name", Code: domain.KeyRequired, Message: "is required"},
		{Location: "body.personality.notes", Code: "startswith", Message: "is invalid"},
		{Location: "body.users[0].role", Code: "oneof", Message: "must be one of the allowed values"},
	}, got.Errors)
}

func TestNewErrorResponse_NoValidationErrorsForNonValidation(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/todos/1", nil)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	assert.Nil(t, got.Errors)
}

func TestNewStatusResponse(t *testing.T) {
	t.Parallel()

	r := germanRequest(t, http.MethodPut, "/api/v1/nope")
	got := dto.NewStatusResponse(r, http.StatusMethodNotAllowed, i18n.KeyMethodNotAllowed)

	assert.Equal(t, http.StatusMethodNotAllowed, got.Status)
	assert.Equal(t, "Methode nicht erlaubt", got.Title)
	assert.Equal(t, "diese Methode wird hier nicht unterstützt", got.Detail)
	assert.Equal(t, i18n.KeyMethodNotAllowed, got.Code)
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"validation", domain.RequiredField("owner_id"), http.StatusBadRequest},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)

			dto.WriteErrorResponse(w, r, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

			var resp dto.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.NotEmpty(t, resp.Code)
		})
	}
}
