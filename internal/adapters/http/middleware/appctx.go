package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/pipeline-crm/internal/app/context"
)

// AppContext returns middleware that gives each request its own
// appctx.RequestContext. Services reach it through appctx.FromContextOrNew,
// so lookups such as a lead's account are fetched once per request and
// schedule commits stage their writes on it.
//
// It runs innermost so that the RequestContext wraps a context that already
// carries the request IDs, the localizer, the span and the deadline.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
