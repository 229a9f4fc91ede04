package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain/campaign"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// CampaignHandler handles campaign CRUD and prospect enrollment.
type CampaignHandler struct {
	*EntityHandler[campaign.Form]
	svc ports.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler with the given service port.
func NewCampaignHandler(svc ports.CampaignService, v *Validator) *CampaignHandler {
	return &CampaignHandler{EntityHandler: NewEntityHandler[campaign.Form](svc, v), svc: svc}
}

// AddProspect handles POST /api/v1/campaigns/{id}/prospects and returns the
// updated campaign.
func (h *CampaignHandler) AddProspect(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var form campaign.ProspectForm
	if !decodeAndValidate(w, r, &form, h.validator.Create) {
		return
	}

	updated, err := h.svc.AddProspect(r.Context(), id, form)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, updated)
}
