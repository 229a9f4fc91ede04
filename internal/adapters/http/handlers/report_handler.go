package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/logging"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

// ReportHandler serves rendered account reports.
type ReportHandler struct {
	svc ports.ReportService
}

// NewReportHandler creates a new ReportHandler with the given service port.
func NewReportHandler(svc ports.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// AccountReport handles GET /api/v1/accounts/{id}/report. The PDF is
// rendered in the language negotiated for the request.
func (h *ReportHandler) AccountReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	locale := i18n.FromContext(r.Context()).Tag().String()
	pdf, err := h.svc.AccountReport(r.Context(), id, locale)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="account-`+id+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Header().Set("Content-Language", locale)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing report failed",
			slog.String("account_id", id),
			slog.Any("error", err),
		)
	}
}
