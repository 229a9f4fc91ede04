package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/clients/acl/report"
	domainreport "github.com/jsamuelsen11/pipeline-crm/internal/domain/report"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/httpclient"
	"github.com/jsamuelsen11/pipeline-crm/internal/ports"
)

const (
	accountReportPath = "/api/v1/render/account-report"
	mediaTypePDF      = "application/pdf"
)

// Compile-time interface checks.
var (
	_ ports.ReportClient  = (*ReportClient)(nil)
	_ ports.HealthChecker = (*ReportClient)(nil)
)

// ReportClient is the outbound adapter for the remote report renderer.
//
// Aggregates are translated to the renderer's schema by [report]; failures
// are mapped by [TranslateHTTPError]. The underlying [httpclient.Client]
// adds retries, circuit breaking, rate limiting and tracing.
type ReportClient struct {
	req *Requester
}

// NewReportClient creates a ReportClient sending through client, whose base
// URL points at the renderer root.
func NewReportClient(client *httpclient.Client, logger *slog.Logger) *ReportClient {
	return &ReportClient{req: NewRequester(client, logger)}
}

// RenderAccountReport POSTs the report and returns the PDF bytes.
func (c *ReportClient) RenderAccountReport(ctx context.Context, r *domainreport.AccountReport) ([]byte, error) {
	return c.req.Send(ctx, Call{
		Method:     http.MethodPost,
		Path:       accountReportPath,
		Body:       report.ToAccountReportDTO(r),
		Accept:     mediaTypePDF,
		WantStatus: http.StatusOK,
	})
}

// Name returns the name the renderer is registered under for readiness.
func (c *ReportClient) Name() string {
	return c.req.Name()
}

// HealthCheck reports the renderer's availability from its circuit breaker
// without making a call.
func (c *ReportClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
