// Package app wires the tracking feature from configuration. It is shared by
// the HTTP server and the command line client.
package app

import (
	"context"
	"time"

	"tracking-bridge/internal/core/cache"
	"tracking-bridge/internal/core/config"
	"tracking-bridge/internal/core/httpclient"
	"tracking-bridge/internal/core/logger"
	"tracking-bridge/internal/core/proxy"
	adapter "tracking-bridge/internal/features/tracking/adapters"
	"tracking-bridge/internal/features/tracking/domain"
	"tracking-bridge/internal/features/tracking/ports"
	"tracking-bridge/internal/features/tracking/service"

	"go.uber.org/zap"
)

const (
	cacheKeyPrefix = "tracking-bridge:"
	pingTimeout    = 2 * time.Second
)

// NewTrackingService builds the tracking service and its providers. The
// returned func releases the cache connection and is never nil.
func NewTrackingService(cfg *config.AppConfig) (*service.TrackingService, func()) {
	client := httpclient.NewClient(cfg.Estes.AttemptTimeout, proxy.Settings{
		Enabled:  cfg.Proxy.Enabled,
		Hostname: cfg.Proxy.Hostname,
		Port:     cfg.Proxy.Port,
		Username: cfg.Proxy.Username,
		Password: cfg.Proxy.Password,
	})

	estes := adapter.NewEstesAdapter(adapter.NewHTTPTransport(client), EstesOptions(cfg.Estes))

	recordCache, closeCache := newRecordCache(cfg.Cache)

	providers := []ports.TrackingProvider{estes}
	return service.NewTrackingService(providers, recordCache, cfg.DebugExcerptBytes), closeCache
}

// EstesOptions maps the Estes configuration onto adapter options.
func EstesOptions(cfg config.EstesConfig) adapter.EstesOptions {
	policy := adapter.KeepFirst
	if cfg.PreferDifferentStatus {
		policy = adapter.PreferDifferingStatus
	}

	return adapter.EstesOptions{
		Endpoint:       cfg.Endpoint,
		SOAPAction:     cfg.SOAPAction,
		SOAPActionAlt:  cfg.SOAPActionAlt,
		AttemptTimeout: cfg.AttemptTimeout,
		Credentials:    adapter.Credentials{User: cfg.User, Password: cfg.Password},
		Policy:         policy,
		Link:           domain.LinkBuilder{BaseURL: cfg.LinkURL, Param: cfg.LinkParam},
	}
}

// newRecordCache connects the optional record cache. An unset or unreachable
// Redis disables caching.
func newRecordCache(cfg config.CacheConfig) (ports.RecordCache, func()) {
	noop := func() {}
	if cfg.RedisURL == "" {
		return nil, noop
	}

	l := logger.Get()
	store, err := cache.NewRedisAdapter(cfg.RedisURL, cacheKeyPrefix)
	if err != nil {
		l.Warn("Record cache disabled", zap.Error(err))
		return nil, noop
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		l.Warn("Record cache disabled", zap.Error(err))
		store.Close()
		return nil, noop
	}

	l.Info("Record cache enabled", zap.Duration("ttl", cfg.TTL))
	return adapter.NewRecordCache(store, cfg.TTL), func() { store.Close() }
}
