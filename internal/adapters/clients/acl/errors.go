// Package acl is the anti-corruption layer in front of the remote report
// renderer. It translates report aggregates into the renderer's JSON schema
// and the renderer's failures into domain errors. Schema translators live in
// subpackages (acl/report); transport and error mapping live here.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// ErrRejected marks a report the renderer refused as malformed. That is a
// fault on this side, so it is not mapped to a domain sentinel and surfaces
// as an internal error.
var ErrRejected = errors.New("renderer rejected the report")

// problemDetail is the renderer's RFC 9457 error body.
type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (pd problemDetail) String() string {
	if len(pd.Errors) == 0 {
		return pd.Detail
	}
	parts := make([]string, 0, len(pd.Errors))
	for _, e := range pd.Errors {
		parts = append(parts, strings.TrimPrefix(e.Location, "body.")+": "+e.Message)
	}
	if pd.Detail == "" {
		return strings.Join(parts, "; ")
	}
	return pd.Detail + " (" + strings.Join(parts, "; ") + ")"
}

// TranslateHTTPError maps a failed renderer response to an error.
//
// Outages, throttling and auth failures are the renderer's problem and wrap
// domain.ErrUnavailable. 400 and 422 mean the payload was wrong and wrap
// ErrRejected with the renderer's field errors. The caller closes the body.
func TranslateHTTPError(service string, resp *http.Response) error {
	pd := parseProblemDetail(resp)
	detail := pd.String()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %s: %w", service, detail, ErrRejected)
	default:
		return fmt.Errorf("%s: status %d: %s: %w", service, resp.StatusCode, detail, domain.ErrUnavailable)
	}
}

// parseProblemDetail reads an application/problem+json body. Anything else
// yields an empty problemDetail.
func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}
