package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
)

var testTime = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newRequest builds a request with an optional JSON body and an "id" route
// parameter when id is non-empty.
func newRequest(t *testing.T, method, target, id string, body any) *http.Request {
	t.Helper()
	var r *http.Request
	switch b := body.(type) {
	case nil:
		r = httptest.NewRequest(method, target, nil)
	case string:
		r = httptest.NewRequest(method, target, strings.NewReader(b))
	default:
		r = httptest.NewRequest(method, target, jsonBody(t, b))
	}
	if id != "" {
		r = withChiParams(r, map[string]string{"id": id})
	}
	return r
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result), "body = %s", rec.Body.String())
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body = %s", rec.Body.String())
}

// requireProblem checks for a problem response and returns it.
func requireProblem(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) dto.ErrorResponse {
	t.Helper()
	requireStatus(t, rec, status)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	require.Equal(t, code, resp.Code)
	return resp
}

func ptr[T any](v T) *T { return &v }
