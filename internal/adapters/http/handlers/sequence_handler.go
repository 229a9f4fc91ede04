package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/sequence"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// SequenceHandler handles sequence CRUD, step management and membership.
type SequenceHandler struct {
	*EntityHandler[sequence.Form]
	svc ports.SequenceService
}

// NewSequenceHandler creates a new SequenceHandler with the given service port.
func NewSequenceHandler(svc ports.SequenceService, v *Validator) *SequenceHandler {
	return &SequenceHandler{EntityHandler: NewEntityHandler[sequence.Form](svc, v), svc: svc}
}

// AddStep handles POST /api/v1/sequences/{id}/steps.
func (h *SequenceHandler) AddStep(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var form sequence.StepForm
	if !decodeAndValidate(w, r, &form, h.validator.Create) {
		return
	}

	created, err := h.svc.AddStep(r.Context(), id, form)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, created)
}

// ListSteps handles GET /api/v1/sequences/{id}/steps.
func (h *SequenceHandler) ListSteps(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	steps, err := h.svc.ListSteps(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListResponse(steps))
}

// SetUsers handles PUT /api/v1/sequences/{id}/users. The body replaces the
// membership; the update hooks reconcile roles and enforce a single owner.
func (h *SequenceHandler) SetUsers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SequenceUsersRequest
	if !decodeAndValidate(w, r, &req, h.validator.Update) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, sequence.Form{Users: req.Users})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, updated)
}
