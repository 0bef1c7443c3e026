package ports

import (
	"context"

	"tracking-bridge/internal/features/tracking/domain"
)

// TrackingProvider defines the interface for carrier tracking implementations.
type TrackingProvider interface {
	// SupportsCourier returns true if this provider supports the given courier name.
	SupportsCourier(courierName string) bool
	// CarrierName returns the display name of the carrier.
	CarrierName() string
	// NormalizeIdentifier converts a raw identifier to the carrier's canonical form.
	NormalizeIdentifier(raw string) string
	// Fetch runs the carrier request policy and returns the selected response.
	// It returns domain.ErrMissingCredentials before any attempt when not configured.
	Fetch(ctx context.Context, query domain.TrackingQuery) (domain.RawResponse, error)
	// DeepLink returns the carrier-hosted tracking page for the query.
	DeepLink(query domain.TrackingQuery) string
}

// OutboundRequest is a single request to the carrier.
type OutboundRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    string
}

// Transport sends outbound requests. Implementations never return an error:
// transport failures are reported inside the RawResponse. The context
// deadline bounds the whole exchange.
type Transport interface {
	Send(ctx context.Context, req OutboundRequest) domain.RawResponse
}

// RecordCache stores successfully assembled records.
type RecordCache interface {
	// Get returns the cached record, or nil when there is none.
	Get(ctx context.Context, carrier, identifier string) (*domain.TrackingRecord, error)
	// Save stores the record.
	Save(ctx context.Context, carrier string, record *domain.TrackingRecord) error
}

// TrackingService defines the primary port for tracking lookups.
type TrackingService interface {
	// Track fetches, parses and returns the record for rawID.
	Track(ctx context.Context, carrier, rawID string) (*domain.TrackingRecord, error)
	// Mock returns the canned record for rawID without any network call.
	Mock(carrier, rawID string) (*domain.TrackingRecord, error)
	// Raw returns the namespace-normalized upstream body, truncated to budget bytes.
	Raw(ctx context.Context, carrier, rawID string, budget int) (string, error)
	// DeepLink returns the carrier-hosted tracking page for rawID.
	DeepLink(carrier, rawID string) (string, error)
}
