package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// LeadHandler handles lead CRUD plus the lead's todo listing.
type LeadHandler struct {
	*EntityHandler[lead.Form]
	svc ports.LeadService
}

// NewLeadHandler creates a new LeadHandler with the given service port.
func NewLeadHandler(svc ports.LeadService, v *Validator) *LeadHandler {
	return &LeadHandler{EntityHandler: NewEntityHandler[lead.Form](svc, v), svc: svc}
}

// ListTodos handles GET /api/v1/leads/{id}/todos.
func (h *LeadHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := h.svc.ListTodos(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListResponse(todos))
}
