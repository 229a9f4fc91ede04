package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// ScheduleHandler expands sequences into todos for leads and prospects.
// The same endpoints are mounted under both, so each method returns the
// handler for one target kind.
type ScheduleHandler struct {
	svc       ports.ScheduleService
	validator *Validator
}

// NewScheduleHandler creates a new ScheduleHandler with the given service port.
func NewScheduleHandler(svc ports.ScheduleService, v *Validator) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, validator: v}
}

// Preview handles POST /api/v1/{leads|prospects}/{id}/schedule/preview.
// Nothing is stored.
func (h *ScheduleHandler) Preview(kind ports.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}

		var req dto.ScheduleRequest
		if !decodeAndValidate(w, r, &req, h.validator.Update) {
			return
		}

		todos, err := h.svc.Preview(r.Context(), req.ToPorts(kind, id))
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, dto.NewListResponse(todos))
	}
}

// Commit handles POST /api/v1/{leads|prospects}/{id}/schedule/commit.
func (h *ScheduleHandler) Commit(kind ports.TargetKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}

		var req dto.ScheduleCommitRequest
		if !decodeAndValidate(w, r, &req, h.validator.Update) {
			return
		}

		todos, err := h.svc.Commit(r.Context(), kind, id, req.Todos)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, dto.NewListResponse(todos))
	}
}
