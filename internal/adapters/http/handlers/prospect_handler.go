package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/interaction"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/prospect"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// ProspectHandler handles prospect CRUD and the prospect's nested
// interactions and todos.
type ProspectHandler struct {
	*EntityHandler[prospect.Form]
	svc ports.ProspectService
}

// NewProspectHandler creates a new ProspectHandler with the given service port.
func NewProspectHandler(svc ports.ProspectService, v *Validator) *ProspectHandler {
	return &ProspectHandler{EntityHandler: NewEntityHandler[prospect.Form](svc, v), svc: svc}
}

// AddInteraction handles POST /api/v1/prospects/{id}/interactions.
func (h *ProspectHandler) AddInteraction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var form interaction.Form
	if !decodeAndValidate(w, r, &form, h.validator.Create) {
		return
	}

	created, err := h.svc.AddInteraction(r.Context(), id, form)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, created)
}

// ListInteractions handles GET /api/v1/prospects/{id}/interactions.
func (h *ProspectHandler) ListInteractions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	interactions, err := h.svc.ListInteractions(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListResponse(interactions))
}

// ListTodos handles GET /api/v1/prospects/{id}/todos.
func (h *ProspectHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
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
