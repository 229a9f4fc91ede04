package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/account"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
	"github.com/jsamuelsen11/pipeline-crm/mocks"
)

func newAccountHandler(t *testing.T) (*handlers.EntityHandler[account.Form], *mocks.MockEntityService[account.Form]) {
	t.Helper()
	svc := mocks.NewMockEntityService[account.Form](t)
	return handlers.NewEntityHandler[account.Form](svc, handlers.NewValidator()), svc
}

func acme() account.Form {
	return account.Form{ID: "a-1", Name: "Acme", OwnerID: "u-1", Created: testTime, Updated: testTime}
}

func TestEntityHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		forms     []account.Form
		wantCount int
	}{
		{"empty store", nil, 0},
		{"two accounts", []account.Form{acme(), {ID: "a-2", Name: "Globex"}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, svc := newAccountHandler(t)
			svc.EXPECT().FindAll(mock.Anything).Return(tt.forms, nil)

			rec := httptest.NewRecorder()
			h.List(rec, newRequest(t, http.MethodGet, "/api/v1/accounts", "", nil))

			requireStatus(t, rec, http.StatusOK)
			resp := decodeJSON[dto.ListResponse[account.Form]](t, rec)
			assert.Equal(t, tt.wantCount, resp.Count)
			assert.Len(t, resp.Items, tt.wantCount)
		})
	}
}

func TestEntityHandler_List_ServiceError(t *testing.T) {
	t.Parallel()

	h, svc := newAccountHandler(t)
	svc.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("store closed"))

	rec := httptest.NewRecorder()
	h.List(rec, newRequest(t, http.MethodGet, "/api/v1/accounts", "", nil))

	requireProblem(t, rec, http.StatusInternalServerError, i18n.KeyInternal)
}

func TestEntityHandler_Create(t *testing.T) {
	t.Parallel()

	h, svc := newAccountHandler(t)
	svc.EXPECT().Create(mock.Anything, account.Form{Name: "Acme", OwnerID: "u-1"}).Return(acme(), nil)

	rec := httptest.NewRecorder()
	h.Create(rec, newRequest(t, http.MethodPost, "/api/v1/accounts", "", account.Form{Name: "Acme", OwnerID: "u-1"}))

	requireStatus(t, rec, http.StatusCreated)
	assert.Equal(t, acme(), decodeJSON[account.Form](t, rec))
}

func TestEntityHandler_Create_Rejected(t *testing.T) {
	t.Parallel()

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'x'
	}

	tests := []struct {
		name       string
		body       any
		wantFields map[string]string
	}{
		{
			name:       "missing name",
			body:       account.Form{Description: "no name"},
			wantFields: map[string]string{"body.name": domain.KeyRequired},
		},
		{
			name:       "name too long",
			body:       account.Form{Name: string(long)},
			wantFields: map[string]string{"body.name": "max"},
		},
		{
			name:       "nested slice element",
			body:       account.Form{Name: "Acme", Collaborators: []string{"u-2", ""}},
			wantFields: map[string]string{"body.collaborators[1]": domain.KeyRequired},
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantFields: map[string]string{"body.body": "json"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newAccountHandler(t)
			rec := httptest.NewRecorder()
			h.Create(rec, newRequest(t, http.MethodPost, "/api/v1/accounts", "", tt.body))

			resp := requireProblem(t, rec, http.StatusBadRequest, domain.KeyValidation)
			got := make(map[string]string, len(resp.Errors))
			for _, e := range resp.Errors {
				got[e.Location] = e.Code
			}
			assert.Equal(t, tt.wantFields, got)
		})
	}
}

func TestEntityHandler_Create_Duplicate(t *testing.T) {
	t.Parallel()

	h, svc := newAccountHandler(t)
	svc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(account.Form{}, &domain.DuplicateError{Entity: account.EntityName, Candidate: "Acme"})

	rec := httptest.NewRecorder()
	h.Create(rec, newRequest(t, http.MethodPost, "/api/v1/accounts", "", account.Form{Name: "Acme"}))

	resp := requireProblem(t, rec, http.StatusConflict, domain.KeyDuplicate)
	assert.Contains(t, resp.Detail, `"Acme"`)
}

func TestEntityHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"found", nil, http.StatusOK},
		{"missing", &domain.NotFoundError{Entity: account.EntityName, ID: "a-1"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, svc := newAccountHandler(t)
			svc.EXPECT().FindByID(mock.Anything, "a-1").Return(acme(), tt.err)

			rec := httptest.NewRecorder()
			h.Get(rec, newRequest(t, http.MethodGet, "/api/v1/accounts/a-1", "a-1", nil))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestEntityHandler_Get_MissingID(t *testing.T) {
	t.Parallel()

	h, _ := newAccountHandler(t)
	rec := httptest.NewRecorder()
	h.Get(rec, newRequest(t, http.MethodGet, "/api/v1/accounts/", "", nil))

	requireProblem(t, rec, http.StatusBadRequest, domain.KeyValidation)
}

func TestEntityHandler_Update(t *testing.T) {
	t.Parallel()

	h, svc := newAccountHandler(t)
	updated := acme()
	updated.Description = "renamed"
	svc.EXPECT().Update(mock.Anything, "a-1", account.Form{Description: "renamed"}).Return(updated, nil)

	rec := httptest.NewRecorder()
	// Partial bodies pass: presence rules apply to create only.
	h.Update(rec, newRequest(t, http.MethodPatch, "/api/v1/accounts/a-1", "a-1", `{"description":"renamed"}`))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "renamed", decodeJSON[account.Form](t, rec).Description)
}

func TestEntityHandler_Update_InvalidJSON(t *testing.T) {
	t.Parallel()

	h, _ := newAccountHandler(t)
	rec := httptest.NewRecorder()
	h.Update(rec, newRequest(t, http.MethodPatch, "/api/v1/accounts/a-1", "a-1", "not json"))

	requireProblem(t, rec, http.StatusBadRequest, domain.KeyValidation)
}

func TestEntityHandler_Delete(t *testing.T) {
	t.Parallel()

	h, svc := newAccountHandler(t)
	svc.EXPECT().Delete(mock.Anything, "a-1").Return(acme(), nil)

	rec := httptest.NewRecorder()
	h.Delete(rec, newRequest(t, http.MethodDelete, "/api/v1/accounts/a-1", "a-1", nil))

	requireStatus(t, rec, http.StatusOK)
	require.Equal(t, "a-1", decodeJSON[account.Form](t, rec).ID)
}

func TestEntityHandler_Delete_NotFound(t *testing.T) {
	t.Parallel()

	h, svc := newAccountHandler(t)
	svc.EXPECT().Delete(mock.Anything, "a-9").
		Return(account.Form{}, &domain.NotFoundError{Entity: account.EntityName, ID: "a-9"})

	rec := httptest.NewRecorder()
	h.Delete(rec, newRequest(t, http.MethodDelete, "/api/v1/accounts/a-9", "a-9", nil))

	requireProblem(t, rec, http.StatusNotFound, domain.KeyNotFound)
}
