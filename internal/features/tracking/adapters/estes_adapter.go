package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tracking-bridge/internal/core/logger"
	"tracking-bridge/internal/features/tracking/domain"
	"tracking-bridge/internal/features/tracking/parser"
	"tracking-bridge/internal/features/tracking/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	estesCourier        = "estes"
	estesCarrierName    = "Estes"
	defaultAttemptLimit = 10 * time.Second
)

// SelectionPolicy picks the response to report after two attempts.
type SelectionPolicy int

const (
	// PreferDifferingStatus reports the retry when it succeeded or when it
	// failed with a different status than the first attempt.
	PreferDifferingStatus SelectionPolicy = iota
	// KeepFirst reports the retry only when it succeeded.
	KeepFirst
)

// Select returns the response to report.
func (p SelectionPolicy) Select(first, second domain.RawResponse) domain.RawResponse {
	if second.Succeeded {
		return second
	}
	if p == PreferDifferingStatus && second.StatusCode != first.StatusCode {
		return second
	}
	return first
}

// EstesOptions configures an EstesAdapter.
type EstesOptions struct {
	Endpoint        string
	SOAPAction      string
	SOAPActionAlt   string
	AttemptTimeout  time.Duration
	Credentials     Credentials
	Policy          SelectionPolicy
	Link            domain.LinkBuilder
	RequestIDSource func() (string, error)
}

// EstesAdapter queries the Estes shipment tracking SOAP service.
type EstesAdapter struct {
	transport ports.Transport
	opts      EstesOptions
	logger    *zap.Logger
}

// NewEstesAdapter creates a new EstesAdapter.
func NewEstesAdapter(transport ports.Transport, opts EstesOptions) *EstesAdapter {
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = defaultAttemptLimit
	}
	if opts.SOAPActionAlt == "" || opts.SOAPActionAlt == opts.SOAPAction {
		opts.SOAPActionAlt = alternateAction(opts.SOAPAction)
	}
	if opts.RequestIDSource == nil {
		opts.RequestIDSource = newRequestID
	}
	return &EstesAdapter{
		transport: transport,
		opts:      opts,
		logger:    logger.Get(),
	}
}

// alternateAction toggles the quoting of action, so the retry never repeats
// the token attempt 1 sent.
func alternateAction(action string) string {
	bare := strings.Trim(action, `"`)
	if quoted := `"` + bare + `"`; quoted != action {
		return quoted
	}
	return bare
}

// SupportsCourier implements ports.TrackingProvider.
func (a *EstesAdapter) SupportsCourier(courierName string) bool {
	return strings.EqualFold(courierName, estesCourier)
}

// CarrierName implements ports.TrackingProvider.
func (a *EstesAdapter) CarrierName() string {
	return estesCarrierName
}

// NormalizeIdentifier keeps the digits of a PRO number.
func (a *EstesAdapter) NormalizeIdentifier(raw string) string {
	return domain.DigitsOnly(raw)
}

// DeepLink implements ports.TrackingProvider.
func (a *EstesAdapter) DeepLink(query domain.TrackingQuery) string {
	return a.opts.Link.Build(query.Identifier())
}

// Fetch sends the search request, retrying once with the alternate action
// when the first attempt failed or returned a fault. At most two requests
// are sent per call.
func (a *EstesAdapter) Fetch(ctx context.Context, query domain.TrackingQuery) (domain.RawResponse, error) {
	if !a.opts.Credentials.Valid() {
		return domain.RawResponse{}, domain.ErrMissingCredentials
	}

	requestID, err := a.opts.RequestIDSource()
	if err != nil {
		return domain.RawResponse{}, fmt.Errorf("failed to create request id: %w", err)
	}

	envelope, err := buildSearchEnvelope(a.opts.Credentials, requestID, query.Identifier())
	if err != nil {
		return domain.RawResponse{}, err
	}

	first := a.attempt(ctx, a.opts.SOAPAction, envelope)
	usable, fault := parser.Classify(first.Body, first.TransportOK())
	if first.Succeeded && usable {
		return first, nil
	}

	if ctx.Err() != nil {
		return first, nil
	}

	a.logger.Info("Retrying Estes search with alternate action",
		zap.String("pro", query.Identifier()),
		zap.String("request_id", requestID),
		zap.Int("status_code", first.StatusCode),
		zap.String("reason", fault),
	)

	second := a.attempt(ctx, a.opts.SOAPActionAlt, envelope)
	return a.opts.Policy.Select(first, second), nil
}

func (a *EstesAdapter) attempt(ctx context.Context, action, envelope string) domain.RawResponse {
	attemptCtx, cancel := context.WithTimeout(ctx, a.opts.AttemptTimeout)
	defer cancel()

	start := time.Now()
	resp := a.transport.Send(attemptCtx, ports.OutboundRequest{
		URL:    a.opts.Endpoint,
		Method: http.MethodPost,
		Headers: map[string]string{
			"Content-Type": "text/xml; charset=utf-8",
			"Accept":       "text/xml",
			"SOAPAction":   action,
		},
		Body: envelope,
	})

	a.logger.Debug("Estes attempt finished",
		zap.String("action", action),
		zap.Int("status_code", resp.StatusCode),
		zap.Bool("succeeded", resp.Succeeded),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp
}

func newRequestID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
