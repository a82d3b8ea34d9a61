package interfaces

import (
	"btc-price-client/internal/domain/entities"
	"context"
	"time"
)

// Cache is a string-valued key/value backend. A ttl <= 0 stores without expiry.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// RecordStore is the explicit cache object used by the price data client.
// Lookup reports presence separately from freshness: a stale entry is still
// returned so callers can use it as a fallback.
type RecordStore interface {
	Lookup(ctx context.Context, key entities.CacheKey) (entities.CacheEntry, bool)
	Store(ctx context.Context, entry entities.CacheEntry) error
	IsFresh(entry entities.CacheEntry) bool
	Ping(ctx context.Context) error
}
