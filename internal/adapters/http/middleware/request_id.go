package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/pipeline-crm/internal/platform/httpclient"
)

const (
	headerRequestID = "X-Request-ID"

	// maxIDLength bounds caller-supplied request and correlation ids.
	maxIDLength = 128
)

// requestIDKey is the context key for storing request IDs within the middleware
// package. httpclient keeps its own key so it never imports this package.
type requestIDKey struct{}

// WithRequestID returns a new context with the given request ID stored in it.
// It also stores the ID via httpclient.WithRequestID so that calls to the
// report renderer carry the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	ctx = httpclient.WithRequestID(ctx, id)
	return ctx
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID returns middleware that reuses the caller's X-Request-ID or
// generates a UUID v4 one, stores it in the request context and echoes it
// as a response header. Oversized or non-printable ids are replaced.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := headerID(r, headerRequestID)
			if !ok {
				id = uuid.NewString()
			}
			ctx := WithRequestID(r.Context(), id)
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// headerID returns the header's value when it is safe to log and forward:
// non-empty, at most maxIDLength bytes, visible ASCII only.
func headerID(r *http.Request, header string) (string, bool) {
	v := r.Header.Get(header)
	if v == "" || len(v) > maxIDLength {
		return "", false
	}
	for i := range len(v) {
		if v[i] < '!' || v[i] > '~' {
			return "", false
		}
	}
	return v, true
}
