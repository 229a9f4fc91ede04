package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jsamuelsen11/pipeline-crm/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/i18n"
	"github.com/jsamuelsen11/pipeline-crm/mocks"
)

func TestReportHandler_AccountReport(t *testing.T) {
	t.Parallel()

	catalog, err := i18n.New("en")
	require.NoError(t, err)

	tests := []struct {
		name       string
		localizer  *i18n.Localizer
		wantLocale string
	}{
		{"default language", nil, "en"},
		{"negotiated german", catalog.Localizer(language.German), "de"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockReportService(t)
			svc.EXPECT().AccountReport(mock.Anything, "a-1", tt.wantLocale).Return([]byte("%PDF-1.7 report"), nil)
			h := handlers.NewReportHandler(svc)

			req := newRequest(t, http.MethodGet, "/api/v1/accounts/a-1/report", "a-1", nil)
			if tt.localizer != nil {
				req = req.WithContext(i18n.WithLocalizer(req.Context(), tt.localizer))
			}
			rec := httptest.NewRecorder()
			h.AccountReport(rec, req)

			requireStatus(t, rec, http.StatusOK)
			assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantLocale, rec.Header().Get("Content-Language"))
			assert.Equal(t, "15", rec.Header().Get("Content-Length"))
			assert.Equal(t, "%PDF-1.7 report", rec.Body.String())
		})
	}
}

func TestReportHandler_AccountReport_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unknown account", &domain.NotFoundError{Entity: "account", ID: "a-1"}, http.StatusNotFound, domain.KeyNotFound},
		{"renderer down", fmt.Errorf("rendering: %w", domain.ErrUnavailable), http.StatusBadGateway, i18n.KeyUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockReportService(t)
			svc.EXPECT().AccountReport(mock.Anything, "a-1", "en").Return(nil, tt.err)
			h := handlers.NewReportHandler(svc)

			rec := httptest.NewRecorder()
			h.AccountReport(rec, newRequest(t, http.MethodGet, "/api/v1/accounts/a-1/report", "a-1", nil))

			requireProblem(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}
