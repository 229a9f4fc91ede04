package ports

import (
	"context"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain/report"
)

// ReportClient defines the client port for the remote report renderer.
// Implemented by the ACL adapter; called by the application layer.
type ReportClient interface {
	// RenderAccountReport renders the report as a PDF document.
	// Returns domain.ErrUnavailable when the renderer cannot be reached.
	RenderAccountReport(ctx context.Context, r *report.AccountReport) ([]byte, error)
}
