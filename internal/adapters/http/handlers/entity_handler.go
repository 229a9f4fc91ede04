// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// EntityHandler serves the CRUD endpoints every entity shares. Request and
// response bodies are the entity's transfer form F.
type EntityHandler[F any] struct {
	svc       ports.EntityService[F]
	validator *Validator
}

// NewEntityHandler creates a new EntityHandler over the given service port.
func NewEntityHandler[F any](svc ports.EntityService[F], v *Validator) *EntityHandler[F] {
	return &EntityHandler[F]{svc: svc, validator: v}
}

// List handles GET /api/v1/{entities}.
func (h *EntityHandler[F]) List(w http.ResponseWriter, r *http.Request) {
	forms, err := h.svc.FindAll(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListResponse(forms))
}

// Create handles POST /api/v1/{entities}.
func (h *EntityHandler[F]) Create(w http.ResponseWriter, r *http.Request) {
	var form F
	if !decodeAndValidate(w, r, &form, h.validator.Create) {
		return
	}

	created, err := h.svc.Create(r.Context(), form)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, created)
}

// Get handles GET /api/v1/{entities}/{id}.
func (h *EntityHandler[F]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	form, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, form)
}

// Update handles PATCH /api/v1/{entities}/{id}. Only the fields present in
// the body change.
func (h *EntityHandler[F]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var form F
	if !decodeAndValidate(w, r, &form, h.validator.Update) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, form)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/{entities}/{id} and returns the removed
// entity.
func (h *EntityHandler[F]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, deleted)
}
