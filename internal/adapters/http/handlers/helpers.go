package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/logging"
)

// pathID extracts an entity id path parameter. Ids are opaque strings; an
// empty one can only come from a malformed route.
func pathID(r *http.Request, param string) (string, error) {
	id := chi.URLParam(r, param)
	if id == "" {
		return "", domain.RequiredField(param)
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.Any("error", err),
		)
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "json"},
		})
		return false
	}
	return true
}

// decodeAndValidate decodes the JSON request body into dst and runs check
// on it. On decode or validation failure it writes an error response and
// returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, check func(any) error) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := check(dst); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
