package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/jsamuelsen11/pipeline-crm/internal/domain"
	"github.com/jsamuelsen11/pipeline-crm/internal/platform/httpclient"
)

// maxDocumentSize caps a rendered document read into memory.
const maxDocumentSize = 32 << 20 // 32 MB

// Call describes one renderer request. Body is sent as JSON; Accept is the
// media type the response must carry.
type Call struct {
	Method     string
	Path       string
	Body       any
	Accept     string
	WantStatus int
}

// Requester runs the request lifecycle for renderer calls: JSON encoding,
// execution through httpclient.Client, status and content type checks, error
// translation and body cleanup.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Send executes c and returns the response body.
//
// Transport failures and an open circuit breaker wrap domain.ErrUnavailable.
// A status other than c.WantStatus goes through TranslateHTTPError.
func (r *Requester) Send(ctx context.Context, c Call) ([]byte, error) {
	req, err := r.newRequest(ctx, c)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil {
		// Retries ran out on a retryable status; the response says why.
		if resp != nil && resp.StatusCode != c.WantStatus {
			return nil, r.translate(ctx, req, resp, c.WantStatus)
		}
		r.logger.ErrorContext(ctx, "renderer request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}

	if resp.StatusCode != c.WantStatus {
		return nil, r.translate(ctx, req, resp, c.WantStatus)
	}

	if c.Accept != "" {
		mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
		if err != nil || mt != c.Accept {
			return nil, fmt.Errorf("%s %s: content type %q, want %s: %w",
				req.Method, req.URL.Path, resp.Header.Get("Content-Type"), c.Accept, domain.ErrUnavailable)
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}
	if len(body) > maxDocumentSize {
		return nil, fmt.Errorf("response from %s %s exceeds %d bytes", req.Method, req.URL.Path, maxDocumentSize)
	}
	return body, nil
}

// Name returns the renderer's service name.
func (r *Requester) Name() string {
	return r.client.Name()
}

// HealthCheck reports the renderer's circuit breaker state.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Requester) newRequest(ctx context.Context, c Call) (*http.Request, error) {
	url := r.client.BaseURL() + c.Path

	body := io.Reader(http.NoBody)
	if c.Body != nil {
		raw, err := json.Marshal(c.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", c.Method, c.Path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, c.Method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", c.Method, c.Path, err)
	}
	if c.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Accept != "" {
		req.Header.Set("Accept", c.Accept+", application/problem+json")
	}
	return req, nil
}

func (r *Requester) translate(ctx context.Context, req *http.Request, resp *http.Response, want int) error {
	err := TranslateHTTPError(r.client.Name(), resp)
	r.logger.ErrorContext(ctx, "unexpected renderer status",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status", resp.StatusCode),
		slog.Int("want_status", want),
		slog.Any("error", err),
	)
	return err
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
