package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/logging"
)

// ErrorResponse represents an RFC 9457 Problem Details response. Code carries
// the message key the detail was rendered from, so clients can branch on it
// without parsing localized text.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error,
// rendered in the language of the request's localizer.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)
	loc := i18n.FromContext(r.Context())

	code, detail := loc.Error(err, fallbackKey(status))
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    title(loc, status),
		Status:   status,
		Code:     code,
		Detail:   detail,
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(loc, verr.Fields)
	}

	return resp
}

// NewStatusResponse creates an ErrorResponse for failures raised by the
// router itself, such as unknown routes, rather than by a service.
func NewStatusResponse(r *http.Request, status int, key string) ErrorResponse {
	loc := i18n.FromContext(r.Context())
	return ErrorResponse{
		Type:     "about:blank",
		Title:    title(loc, status),
		Status:   status,
		Code:     key,
		Detail:   loc.Message(key),
		Instance: r.RequestURI,
	}
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. Server-side failures are logged with the original error, which never
// reaches the client.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
	WriteProblem(w, r, resp)
}

// WriteProblem writes resp as application/problem+json.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// fallbackKey is the detail message for errors that carry no key of their own.
func fallbackKey(status int) string {
	switch status {
	case http.StatusBadRequest:
		return i18n.KeyValidationInvalid
	case http.StatusNotFound:
		return i18n.KeyNotFoundRoute
	case http.StatusForbidden:
		return i18n.KeyForbidden
	case http.StatusConflict:
		return i18n.KeyConflict
	case http.StatusBadGateway:
		return i18n.KeyUnavailable
	default:
		return i18n.KeyInternal
	}
}

// title localizes the status text; "Not Found" is looked up as not_found.
func title(loc *i18n.Localizer, status int) string {
	text := http.StatusText(status)
	name := strings.ReplaceAll(strings.ToLower(text), " ", "_")
	return loc.Title(name, text)
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries. Field values are message keys.
func validationFieldsToDetails(loc *i18n.Localizer, fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, key := range fields {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Code:     key,
			Message:  loc.Field(key),
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
