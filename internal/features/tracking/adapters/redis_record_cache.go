package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking-bridge/internal/core/cache"
	"tracking-bridge/internal/features/tracking/domain"

	"github.com/vmihailenco/msgpack/v5"
)

// RecordCache stores assembled tracking records in a byte cache, msgpack encoded.
type RecordCache struct {
	store cache.Cache
	ttl   time.Duration
}

// NewRecordCache creates a new RecordCache.
func NewRecordCache(store cache.Cache, ttl time.Duration) *RecordCache {
	return &RecordCache{store: store, ttl: ttl}
}

func recordKey(carrier, identifier string) string {
	return "tracking:" + strings.ToLower(carrier) + ":" + identifier
}

// Get returns the cached record or nil on a miss.
func (c *RecordCache) Get(ctx context.Context, carrier, identifier string) (*domain.TrackingRecord, error) {
	data, err := c.store.Get(ctx, recordKey(carrier, identifier))
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record domain.TrackingRecord
	if err := msgpack.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode cached record: %w", err)
	}
	return &record, nil
}

// Save stores record under its identifier.
func (c *RecordCache) Save(ctx context.Context, carrier string, record *domain.TrackingRecord) error {
	data, err := msgpack.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return c.store.Set(ctx, recordKey(carrier, record.Identifier), data, c.ttl)
}
