package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
)

func TestLocale(t *testing.T) {
	t.Parallel()

	catalog, err := i18n.New("en")
	require.NoError(t, err)

	tests := []struct {
		name   string
		accept string
		want   language.Tag
	}{
		{"no header", "", language.English},
		{"german", "de-DE,de;q=0.9", language.German},
		{"unsupported falls back", "fr-FR", language.English},
		{"weighted", "fr;q=0.9,de;q=0.8,en;q=0.1", language.German},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got language.Tag
			handler := middleware.Locale(catalog)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = i18n.FromContext(r.Context()).Tag()
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/leads", http.NoBody)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), rec.Header().Get("Content-Language"))
			assert.Equal(t, "Accept-Language", rec.Header().Get("Vary"))
		})
	}
}
