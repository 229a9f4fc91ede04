package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusWriter_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(sw *statusWriter)
		want  int
	}{
		{"untouched", func(*statusWriter) {}, http.StatusOK},
		{"explicit", func(sw *statusWriter) { sw.WriteHeader(http.StatusNotFound) }, http.StatusNotFound},
		{"first call wins", func(sw *statusWriter) {
			sw.WriteHeader(http.StatusCreated)
			sw.WriteHeader(http.StatusConflict)
		}, http.StatusCreated},
		{"implicit on write", func(sw *statusWriter) {
			_, _ = sw.Write([]byte("{}"))
			sw.WriteHeader(http.StatusBadGateway)
		}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sw := wrapWriter(rec)
			tt.write(sw)

			assert.Equal(t, tt.want, sw.status)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

// headerLog records every WriteHeader call it receives.
type headerLog struct {
	http.ResponseWriter
	codes []int
}

func (h *headerLog) WriteHeader(code int) { h.codes = append(h.codes, code) }

func TestStatusWriter_InformationalIsNotFinal(t *testing.T) {
	t.Parallel()

	log := &headerLog{ResponseWriter: httptest.NewRecorder()}
	sw := wrapWriter(log)
	sw.WriteHeader(http.StatusEarlyHints)
	sw.WriteHeader(http.StatusAccepted)
	sw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusAccepted, sw.status)
	assert.Equal(t, []int{http.StatusEarlyHints, http.StatusAccepted}, log.codes)
}

func TestStatusWriter_CountsBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := wrapWriter(rec)

	n, err := sw.Write([]byte(`{"items":`))
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	_, err = sw.Write([]byte(`[]}`))
	require.NoError(t, err)

	assert.Equal(t, int64(12), sw.bytes)
	assert.True(t, sw.wroteHeader)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestWrapWriter_ReusesOuterWrapper(t *testing.T) {
	t.Parallel()

	outer := wrapWriter(httptest.NewRecorder())
	inner := wrapWriter(outer)

	assert.Same(t, outer, inner)
}

func TestStatusWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := wrapWriter(rec)

	assert.Same(t, rec, sw.Unwrap())
	require.NoError(t, http.NewResponseController(sw).Flush())
	assert.True(t, rec.Flushed)
}
