package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/logging"
)

func TestLogging_StartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/leads", http.NoBody))

	out := buf.String()
	assert.Contains(t, out, `msg="request started"`)
	assert.Contains(t, out, `msg="request completed"`)
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "path=/api/v1/leads")
	assert.Contains(t, out, "status=201")
	assert.Contains(t, out, "bytes=0")
	assert.Contains(t, out, "duration=")
	assert.Contains(t, out, "locale=en")
}

func TestLogging_RouteAndLocale(t *testing.T) {
	t.Parallel()

	catalog, err := i18n.New("en")
	require.NoError(t, err)

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Locale(catalog), middleware.Logging(testLogger(&buf)))
	r.Get("/api/v1/prospects/{id}/todos", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prospects/p-7/todos", http.NoBody)
	req.Header.Set("Accept-Language", "de-DE")
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "route=/api/v1/prospects/{id}/todos")
	assert.Contains(t, out, "path=/api/v1/prospects/p-7/todos")
	assert.Contains(t, out, "locale=de")
}

func TestLogging_ServerErrorsLogAtWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/accounts/a-1/report", http.NoBody))

	assert.Contains(t, buf.String(), `level=WARN msg="request completed"`)
}

func TestLogging_EnrichesLoggerWithIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(
		middleware.CorrelationID()(
			middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				logging.FromContext(r.Context()).Info("handler log")
			})),
		),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		assert.Contains(t, string(line), "request_id=req-log-test")
		assert.Contains(t, string(line), "correlation_id=corr-log-test")
	}
	assert.Contains(t, buf.String(), `msg="handler log"`)
}

func TestLogging_RedactsHeadersAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `msg="request headers"`)
	assert.NotContains(t, out, "secret-token")
	assert.Contains(t, out, "Accept=application/json")
}
