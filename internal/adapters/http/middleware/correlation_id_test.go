package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/middleware"
)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requestID string
		incoming  string
		want      string
	}{
		{"incoming header wins", "req-1", "corr-abc", "corr-abc"},
		{"falls back to request ID", "req-2", "", "req-2"},
		{"invalid header falls back", "req-3", "bad id\twith tab", "req-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			handler := middleware.RequestID()(
				middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					got = middleware.CorrelationIDFromContext(r.Context())
				})),
			)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", http.NoBody)
			req.Header.Set("X-Request-ID", tt.requestID)
			if tt.incoming != "" {
				req.Header.Set("X-Correlation-ID", tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestCorrelationIDFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.CorrelationIDFromContext(t.Context()))

	ctx := middleware.WithCorrelationID(t.Context(), "corr-7")
	assert.Equal(t, "corr-7", middleware.CorrelationIDFromContext(ctx))
}
