package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pipeline-crm/mocks"
)

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantStatus int
		want       healthBody
	}{
		{
			name:       "all healthy",
			results:    map[string]error{"store": nil, "report-renderer": nil},
			wantStatus: http.StatusOK,
			want:       healthBody{Status: "ready", Checks: map[string]string{"store": "ok", "report-renderer": "ok"}},
		},
		{
			name: "breaker open",
			results: map[string]error{
				"store":           nil,
				"report-renderer": errors.New("report-renderer: failing (circuit breaker open)"),
			},
			wantStatus: http.StatusServiceUnavailable,
			want: healthBody{Status: "not_ready", Checks: map[string]string{
				"store":           "ok",
				"report-renderer": "report-renderer: failing (circuit breaker open)",
			}},
		},
		{
			name:       "store unreachable",
			results:    map[string]error{"store": errors.New("connection refused")},
			wantStatus: http.StatusServiceUnavailable,
			want:       healthBody{Status: "not_ready", Checks: map[string]string{"store": "connection refused"}},
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantStatus: http.StatusOK,
			want:       healthBody{Status: "ready"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantStatus)
			assert.Equal(t, tt.want, decodeJSON[healthBody](t, rec))
		})
	}
}
