package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"tracking-bridge/internal/core/logger"
	"tracking-bridge/internal/features/tracking/domain"
	"tracking-bridge/internal/features/tracking/ports"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// maxResponseBytes bounds how much of an upstream body is read.
const maxResponseBytes = 4 << 20

// HTTPTransport implements ports.Transport over an http.Client.
type HTTPTransport struct {
	client *http.Client
	logger *zap.Logger
}

// NewHTTPTransport creates a new HTTPTransport.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	return &HTTPTransport{
		client: client,
		logger: logger.Get(),
	}
}

// Send issues the request. Deadline expiry yields a synthetic 504, any other
// transport error a synthetic 502; both carry the transport marker as body.
func (t *HTTPTransport) Send(ctx context.Context, req ports.OutboundRequest) domain.RawResponse {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, strings.NewReader(req.Body))
	if err != nil {
		return transportFailure(http.StatusBadGateway, fmt.Errorf("failed to create request: %w", err))
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return transportFailure(failureStatus(ctx, err), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(decodeBody(io.LimitReader(resp.Body, maxResponseBytes), resp.Header.Get("Content-Type")))
	if err != nil {
		t.logger.Warn("Failed to read upstream body",
			zap.String("url", req.URL),
			zap.Int("status_code", resp.StatusCode),
			zap.Error(err),
		)
		return transportFailure(failureStatus(ctx, err), fmt.Errorf("failed to read response: %w", err))
	}

	return domain.RawResponse{
		Succeeded:  resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
		Body:       string(data),
	}
}

func failureStatus(ctx context.Context, err error) int {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

func transportFailure(status int, err error) domain.RawResponse {
	return domain.RawResponse{
		StatusCode:     status,
		Body:           domain.TransportErrorMarker + ": " + err.Error(),
		TransportError: err.Error(),
	}
}

// decodeBody converts a body in a declared non-UTF-8 charset to UTF-8.
// Undeclared or unknown charsets are read as-is.
func decodeBody(r io.Reader, contentType string) io.Reader {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return r
	}
	label := params["charset"]
	if label == "" || strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return r
	}
	enc, _ := charset.Lookup(label)
	if enc == nil {
		return r
	}
	return enc.NewDecoder().Reader(r)
}
