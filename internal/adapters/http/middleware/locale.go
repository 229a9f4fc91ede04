package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
)

const headerContentLanguage = "Content-Language"

// Locale returns middleware that negotiates the response language from the
// Accept-Language header and stores a localizer for it in the request
// context. Error responses and rendered reports use that localizer.
func Locale(catalog *i18n.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := catalog.Match(r.Header.Get("Accept-Language"))
			ctx := i18n.WithLocalizer(r.Context(), catalog.Localizer(tag))
			w.Header().Set(headerContentLanguage, tag.String())
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
