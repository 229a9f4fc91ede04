package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/pipeline-crm/internal/adapters/http"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/account"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/company"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/interaction"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/person"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/sequence"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
	"github.com/jsamuelsen11/pipeline-crm/mocks"
)

type testServices struct {
	accounts *mocks.MockEntityService[account.Form]
	leads    *mocks.MockLeadService
	todos    *mocks.MockTodoService
	schedule *mocks.MockScheduleService
	registry *mocks.MockHealthRegistry
}

func newHandlers(t *testing.T) (adapthttp.Handlers, testServices) {
	t.Helper()
	v := handlers.NewValidator()
	s := testServices{
		accounts: mocks.NewMockEntityService[account.Form](t),
		leads:    mocks.NewMockLeadService(t),
		todos:    mocks.NewMockTodoService(t),
		schedule: mocks.NewMockScheduleService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}
	return adapthttp.Handlers{
		Accounts:     handlers.NewEntityHandler[account.Form](s.accounts, v),
		Companies:    handlers.NewEntityHandler[company.Form](mocks.NewMockEntityService[company.Form](t), v),
		People:       handlers.NewEntityHandler[person.Form](mocks.NewMockEntityService[person.Form](t), v),
		Steps:        handlers.NewEntityHandler[sequence.StepForm](mocks.NewMockEntityService[sequence.StepForm](t), v),
		Interactions: handlers.NewEntityHandler[interaction.Form](mocks.NewMockEntityService[interaction.Form](t), v),
		Leads:        handlers.NewLeadHandler(s.leads, v),
		Prospects:    handlers.NewProspectHandler(mocks.NewMockProspectService(t), v),
		Campaigns:    handlers.NewCampaignHandler(mocks.NewMockCampaignService(t), v),
		Sequences:    handlers.NewSequenceHandler(mocks.NewMockSequenceService(t), v),
		Todos:        handlers.NewTodoHandler(s.todos, v),
		Schedule:     handlers.NewScheduleHandler(s.schedule, v),
		Reports:      handlers.NewReportHandler(mocks.NewMockReportService(t)),
		Health:       handlers.NewHealthHandler(s.registry),
	}, s
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	h, _ := newHandlers(t)
	router, ok := adapthttp.NewRouter(h).(*chi.Mux)
	require.True(t, ok, "router is not *chi.Mux")

	registered := make(map[string]bool)
	require.NoError(t, chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+strings.TrimSuffix(route, "/")] = true
		return nil
	}))

	want := []string{
		"GET /health/live",
		"GET /health/ready",
		"GET /api/v1/accounts/{id}/report",
		"GET /api/v1/leads/{id}/todos",
		"POST /api/v1/leads/{id}/schedule/preview",
		"POST /api/v1/leads/{id}/schedule/commit",
		"GET /api/v1/prospects/{id}/todos",
		"GET /api/v1/prospects/{id}/interactions",
		"POST /api/v1/prospects/{id}/interactions",
		"POST /api/v1/prospects/{id}/schedule/preview",
		"POST /api/v1/prospects/{id}/schedule/commit",
		"POST /api/v1/campaigns/{id}/prospects",
		"GET /api/v1/sequences/{id}/steps",
		"POST /api/v1/sequences/{id}/steps",
		"PUT /api/v1/sequences/{id}/users",
		"PATCH /api/v1/todos",
	}
	for _, res := range []string{"accounts", "companies", "people", "leads", "prospects", "campaigns", "sequences", "steps", "todos", "interactions"} {
		base := "/api/v1/" + res
		want = append(want,
			"GET "+base, "POST "+base,
			"GET "+base+"/{id}", "PATCH "+base+"/{id}", "DELETE "+base+"/{id}",
		)
	}

	for _, route := range want {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	h, s := newHandlers(t)
	called := false
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}
	s.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	adapthttp.NewRouter(h, mw).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

	assert.True(t, called, "middleware was not called")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		target string
		body   string
		expect func(s testServices)
		want   int
	}{
		{
			name:   "list without trailing slash",
			method: http.MethodGet,
			target: "/api/v1/accounts",
			expect: func(s testServices) {
				s.accounts.EXPECT().FindAll(mock.Anything).Return([]account.Form{}, nil)
			},
			want: http.StatusOK,
		},
		{
			name:   "nested lead todos",
			method: http.MethodGet,
			target: "/api/v1/leads/l-1/todos",
			expect: func(s testServices) {
				s.leads.EXPECT().ListTodos(mock.Anything, "l-1").Return(nil, nil)
			},
			want: http.StatusOK,
		},
		{
			name:   "schedule preview keeps target kind",
			method: http.MethodPost,
			target: "/api/v1/leads/l-2/schedule/preview",
			body:   `{"sequence_id":"s-1"}`,
			expect: func(s testServices) {
				s.schedule.EXPECT().Preview(mock.Anything, ports.ScheduleRequest{
					TargetKind: ports.TargetLead, TargetID: "l-2", SequenceID: "s-1",
				}).Return([]todo.Form{}, nil)
			},
			want: http.StatusOK,
		},
		{
			name:   "bulk todo patch on collection",
			method: http.MethodPatch,
			target: "/api/v1/todos",
			body:   `{"updates":[{"id":"t-1","todo":{"note":"call back"}}]}`,
			expect: func(s testServices) {
				s.todos.EXPECT().BulkUpdate(mock.Anything, mock.Anything).Return(&ports.BulkUpdateResult{}, nil)
			},
			want: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, s := newHandlers(t)
			tt.expect(s)

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.target, http.NoBody)
			}
			rec := httptest.NewRecorder()
			adapthttp.NewRouter(h).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_Problems(t *testing.T) {
	t.Parallel()

	catalog, err := i18n.New("en")
	require.NoError(t, err)

	tests := []struct {
		name      string
		method    string
		target    string
		lang      string
		want      int
		wantCode  string
		wantTitle string
	}{
		{"unknown route", http.MethodGet, "/nonexistent", "", http.StatusNotFound, i18n.KeyNotFoundRoute, "Not Found"},
		{"unknown nested route", http.MethodGet, "/api/v1/leads/l-1/nope", "", http.StatusNotFound, i18n.KeyNotFoundRoute, "Not Found"},
		{"wrong method", http.MethodPut, "/api/v1/accounts", "", http.StatusMethodNotAllowed, i18n.KeyMethodNotAllowed, "Method Not Allowed"},
		{"wrong method in german", http.MethodDelete, "/api/v1/sequences/s-1/users", "de", http.StatusMethodNotAllowed, i18n.KeyMethodNotAllowed, "Methode nicht erlaubt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, _ := newHandlers(t)
			router := adapthttp.NewRouter(h, middleware.Locale(catalog))

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			if tt.lang != "" {
				req.Header.Set("Accept-Language", tt.lang)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var resp dto.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantTitle, resp.Title)
			assert.Equal(t, tt.target, resp.Instance)
		})
	}
}
