package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/todo"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// TodoHandler handles todo CRUD and bulk updates.
type TodoHandler struct {
	*EntityHandler[todo.Form]
	svc ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(svc ports.TodoService, v *Validator) *TodoHandler {
	return &TodoHandler{EntityHandler: NewEntityHandler[todo.Form](svc, v), svc: svc}
}

// BulkUpdate handles PATCH /api/v1/todos. Each update succeeds or fails on
// its own; the response is 200 whenever the request itself was valid, with
// per-item failures listed in the body.
func (h *TodoHandler) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkUpdateTodosRequest
	if !decodeAndValidate(w, r, &req, h.validator.Update) {
		return
	}

	result, err := h.svc.BulkUpdate(r.Context(), req.ToUpdates())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBulkUpdateResponse(r, result))
}
