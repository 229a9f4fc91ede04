// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
// Entity bodies are the domain transfer forms themselves; this package only
// adds the envelopes around them.
package dto

import (
	"net/http"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// ListResponse wraps a collection in HTTP responses.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// NewListResponse wraps items, rendering nil as an empty array.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

// BulkUpdateTodosResponse represents the result of a bulk update operation.
// It includes both successful updates and per-item errors.
type BulkUpdateTodosResponse struct {
	Updated   []todo.Form           `json:"updated"`
	Errors    []BulkUpdateErrorItem `json:"errors"`
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// BulkUpdateErrorItem represents a single failed update within a bulk
// operation, rendered like the detail of a problem response.
type BulkUpdateErrorItem struct {
	TodoID  string `json:"todo_id"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToBulkUpdateResponse converts a ports.BulkUpdateResult to an HTTP response
// DTO with item errors rendered in the request's language.
func ToBulkUpdateResponse(r *http.Request, result *ports.BulkUpdateResult) BulkUpdateTodosResponse {
	loc := i18n.FromContext(r.Context())

	updated := result.Updated
	if updated == nil {
		updated = []todo.Form{}
	}

	errs := make([]BulkUpdateErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		status := domainErrorToStatus(e.Err)
		code, msg := loc.Error(e.Err, fallbackKey(status))
		errs[i] = BulkUpdateErrorItem{
			TodoID:  e.TodoID,
			Status:  status,
			Code:    code,
			Message: msg,
		}
	}

	return BulkUpdateTodosResponse{
		Updated:   updated,
		Errors:    errs,
		Total:     len(updated) + len(errs),
		Succeeded: len(updated),
		Failed:    len(errs),
	}
}
