package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"btc-price-client/internal/domain/entities"
	"btc-price-client/internal/domain/interfaces"
	"btc-price-client/internal/infrastructure/logging"
	"btc-price-client/internal/infrastructure/metrics"
)

// DefaultWindow is the freshness window applied when none is configured
const DefaultWindow = 10 * time.Second

// RecordCache stores price and market entries in any interfaces.Cache under
// "<prefix><kind>:<currency>". Entries are written without backend expiry:
// freshness is judged from CapturedAt so stale entries stay available as a
// failure fallback for the lifetime of the backend.
type RecordCache struct {
	backend interfaces.Cache
	window  time.Duration
	prefix  string
	now     func() time.Time
}

// RecordCacheOption configures a RecordCache
type RecordCacheOption func(*RecordCache)

// WithWindow sets the freshness window
func WithWindow(window time.Duration) RecordCacheOption {
	return func(c *RecordCache) {
		if window > 0 {
			c.window = window
		}
	}
}

// WithKeyPrefix namespaces every key in the backend
func WithKeyPrefix(prefix string) RecordCacheOption {
	return func(c *RecordCache) {
		c.prefix = prefix
	}
}

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) RecordCacheOption {
	return func(c *RecordCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewRecordCache creates a record cache over backend
func NewRecordCache(backend interfaces.Cache, opts ...RecordCacheOption) *RecordCache {
	c := &RecordCache{
		backend: backend,
		window:  DefaultWindow,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ interfaces.RecordStore = (*RecordCache)(nil)

// Window returns the configured freshness window
func (c *RecordCache) Window() time.Duration {
	return c.window
}

// Now returns the cache clock's current time
func (c *RecordCache) Now() time.Time {
	return c.now()
}

func (c *RecordCache) backendKey(key entities.CacheKey) string {
	return c.prefix + key.String()
}

// Lookup returns the entry stored for key, fresh or stale.
// Backend errors and undecodable payloads are reported as absent.
func (c *RecordCache) Lookup(ctx context.Context, key entities.CacheKey) (entities.CacheEntry, bool) {
	bk := c.backendKey(key)

	raw, err := c.backend.Get(ctx, bk)
	if err != nil {
		if !IsMiss(err) {
			logging.Cache().Failed(ctx, logging.CacheOpGet, bk, err)
			metrics.RecordCacheOperation("get", "error")
		} else {
			logging.Cache().Miss(ctx, logging.CacheOpGet, bk)
			metrics.RecordCacheOperation("get", "miss")
		}
		return entities.CacheEntry{}, false
	}

	entry, err := decodeEntry(key, raw)
	if err != nil {
		logging.Cache().Failed(ctx, logging.CacheOpGet, bk, err)
		metrics.RecordCacheOperation("get", "error")
		return entities.CacheEntry{}, false
	}

	if c.IsFresh(entry) {
		logging.Cache().Hit(ctx, logging.CacheOpGet, bk)
		metrics.RecordCacheOperation("get", "hit")
	} else {
		logging.Cache().Stale(ctx, bk, entry.Age(c.now()))
		metrics.RecordCacheOperation("get", "stale")
	}
	return entry, true
}

// Store overwrites the entry for entry.Key
func (c *RecordCache) Store(ctx context.Context, entry entities.CacheEntry) error {
	bk := c.backendKey(entry.Key)

	payload, err := json.Marshal(entry)
	if err != nil {
		metrics.RecordCacheOperation("set", "error")
		return fmt.Errorf("encode cache entry %s: %w", bk, err)
	}

	if err := c.backend.Set(ctx, bk, string(payload), 0); err != nil {
		logging.Cache().Failed(ctx, logging.CacheOpSet, bk, err)
		metrics.RecordCacheOperation("set", "error")
		return fmt.Errorf("store cache entry %s: %w", bk, err)
	}

	logging.Cache().Stored(ctx, bk)
	metrics.RecordCacheOperation("set", "success")
	return nil
}

// IsFresh reports whether the entry is strictly younger than the window
func (c *RecordCache) IsFresh(entry entities.CacheEntry) bool {
	return entry.Age(c.now()) < c.window
}

// Ping checks the backend
func (c *RecordCache) Ping(ctx context.Context) error {
	return c.backend.Ping(ctx)
}

func decodeEntry(key entities.CacheKey, raw string) (entities.CacheEntry, error) {
	var entry entities.CacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return entities.CacheEntry{}, fmt.Errorf("decode cache entry: %w", err)
	}
	entry.Key = key

	switch key.Kind {
	case entities.KindPrice:
		if entry.Price == nil {
			return entities.CacheEntry{}, fmt.Errorf("cache entry %s has no price payload", key)
		}
	case entities.KindMarket:
		if entry.Market == nil {
			return entities.CacheEntry{}, fmt.Errorf("cache entry %s has no market payload", key)
		}
	}
	return entry, nil
}
