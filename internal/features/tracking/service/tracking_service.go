package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"tracking-bridge/internal/core/logger"
	"tracking-bridge/internal/features/tracking/domain"
	"tracking-bridge/internal/features/tracking/fixtures"
	"tracking-bridge/internal/features/tracking/parser"
	"tracking-bridge/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// serviceErrorReason is reported for a non-2xx response without a fault text.
const serviceErrorReason = "carrier service error"

// TrackingService orchestrates tracking requests across carrier providers.
type TrackingService struct {
	providers    []ports.TrackingProvider
	cache        ports.RecordCache
	excerptBytes int
	logger       *zap.Logger
}

// NewTrackingService creates a new TrackingService. cache may be nil.
// excerptBytes bounds the body excerpt attached to lookup errors.
func NewTrackingService(providers []ports.TrackingProvider, cache ports.RecordCache, excerptBytes int) *TrackingService {
	return &TrackingService{
		providers:    providers,
		cache:        cache,
		excerptBytes: excerptBytes,
		logger:       logger.Get(),
	}
}

func (s *TrackingService) resolve(carrier, rawID string) (ports.TrackingProvider, domain.TrackingQuery, error) {
	for _, provider := range s.providers {
		if provider.SupportsCourier(carrier) {
			query, err := domain.NewTrackingQuery(rawID, provider.NormalizeIdentifier)
			return provider, query, err
		}
	}
	return nil, domain.TrackingQuery{}, ErrCourierNotSupported
}

func lookupOf(provider ports.TrackingProvider, query domain.TrackingQuery) Lookup {
	return Lookup{
		Carrier:    provider.CarrierName(),
		Identifier: query.Identifier(),
		Link:       provider.DeepLink(query),
	}
}

// Track retrieves and parses the tracking record for rawID.
func (s *TrackingService) Track(ctx context.Context, carrier, rawID string) (*domain.TrackingRecord, error) {
	provider, query, err := s.resolve(carrier, rawID)
	if err != nil {
		return nil, err
	}
	lookup := lookupOf(provider, query)

	if record := s.cached(ctx, lookup); record != nil {
		return record, nil
	}

	resp, err := provider.Fetch(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracking from provider: %w", err)
	}

	record, err := s.parse(lookup, resp)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Save(ctx, lookup.Carrier, record); err != nil {
			s.logger.Warn("Failed to cache tracking record",
				zap.String("carrier", lookup.Carrier),
				zap.String("pro", lookup.Identifier),
				zap.Error(err),
			)
		}
	}
	return record, nil
}

func (s *TrackingService) cached(ctx context.Context, lookup Lookup) *domain.TrackingRecord {
	if s.cache == nil {
		return nil
	}
	record, err := s.cache.Get(ctx, lookup.Carrier, lookup.Identifier)
	if err != nil {
		s.logger.Warn("Tracking cache lookup failed",
			zap.String("carrier", lookup.Carrier),
			zap.String("pro", lookup.Identifier),
			zap.Error(err),
		)
		return nil
	}
	return record
}

// parse turns the selected response into a record or a lookup error.
func (s *TrackingService) parse(lookup Lookup, resp domain.RawResponse) (*domain.TrackingRecord, error) {
	if !resp.TransportOK() {
		return nil, &UpstreamError{
			Lookup:  lookup,
			Status:  resp.StatusCode,
			Reason:  parser.TransportFailureMessage + ": " + resp.TransportError,
			Excerpt: Truncate(resp.Body, s.excerptBytes),
		}
	}

	doc := parser.NormalizeNamespaces(resp.Body)
	excerpt := Truncate(doc, s.excerptBytes)

	usable, fault := parser.Classify(doc, true)
	if !resp.Succeeded {
		reason := fault
		if usable {
			reason = serviceErrorReason
		}
		return nil, &UpstreamError{Lookup: lookup, Status: resp.StatusCode, Reason: reason, Excerpt: excerpt}
	}
	if !usable {
		return nil, &NotFoundError{Lookup: lookup, Reason: fault, Excerpt: excerpt}
	}

	outcome := parser.Assemble(doc)
	if !outcome.OK() {
		return nil, &NotFoundError{Lookup: lookup, Reason: outcome.Reason, Excerpt: excerpt}
	}

	record := outcome.Record
	record.Carrier = lookup.Carrier
	record.Identifier = lookup.Identifier
	record.Link = lookup.Link
	return record, nil
}

// Mock returns the canned record for rawID.
func (s *TrackingService) Mock(carrier, rawID string) (*domain.TrackingRecord, error) {
	provider, query, err := s.resolve(carrier, rawID)
	if err != nil {
		return nil, err
	}

	record, err := fixtures.Record(carrier)
	if err != nil {
		return nil, err
	}

	lookup := lookupOf(provider, query)
	record.Carrier = lookup.Carrier
	record.Identifier = lookup.Identifier
	record.Link = lookup.Link
	return record, nil
}

// Raw returns the namespace-normalized body of the selected response,
// truncated to budget bytes. Faults and transport failures are returned as
// text, not as errors.
func (s *TrackingService) Raw(ctx context.Context, carrier, rawID string, budget int) (string, error) {
	provider, query, err := s.resolve(carrier, rawID)
	if err != nil {
		return "", err
	}

	resp, err := provider.Fetch(ctx, query)
	if err != nil {
		return "", fmt.Errorf("failed to get tracking from provider: %w", err)
	}
	return Truncate(parser.NormalizeNamespaces(resp.Body), budget), nil
}

// DeepLink returns the carrier-hosted tracking page for rawID.
func (s *TrackingService) DeepLink(carrier, rawID string) (string, error) {
	provider, query, err := s.resolve(carrier, rawID)
	if err != nil {
		return "", err
	}
	return provider.DeepLink(query), nil
}

// Truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
// A non-positive n returns s unchanged.
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
