package services

import (
	"context"
	"errors"
	"time"

	"btc-price-client/internal/domain/entities"
	"btc-price-client/internal/domain/interfaces"
	"btc-price-client/internal/infrastructure/logging"
	"btc-price-client/internal/infrastructure/metrics"
)

// Where a returned record came from. Only logged and counted, never returned.
const (
	SourceCache      = "cache"
	SourceLive       = "live"
	SourceStaleCache = "stale_cache"
	SourceMock       = "mock"
)

const reasonUnknown = "unknown"

// PriceDataService implements interfaces.PriceDataClient: fresh cache, then one
// live request, then any cached entry, then synthetic data. It never fails.
//
// Concurrent misses for the same key are not coalesced; each caller issues its
// own upstream request and the last successful write wins.
type PriceDataService struct {
	source interfaces.MarketDataSource
	cache  interfaces.RecordStore
	mock   *MockDataGenerator
	now    func() time.Time
}

// ServiceOption configures a PriceDataService
type ServiceOption func(*PriceDataService)

// WithServiceClock sets the clock used to stamp cache entries
func WithServiceClock(now func() time.Time) ServiceOption {
	return func(s *PriceDataService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewPriceDataService creates the client over an upstream source and a record store
func NewPriceDataService(source interfaces.MarketDataSource, cache interfaces.RecordStore, mock *MockDataGenerator, opts ...ServiceOption) *PriceDataService {
	if mock == nil {
		mock = NewMockDataGenerator(DefaultMockConfig())
	}

	s := &PriceDataService{
		source: source,
		cache:  cache,
		mock:   mock,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ interfaces.PriceDataClient = (*PriceDataService)(nil)
	_ interfaces.WarmupClient    = (*PriceDataService)(nil)
)

// recordOps binds one record type to its upstream call and cache envelope
type recordOps[T any] struct {
	kind    entities.Kind
	live    func(ctx context.Context, currency string) (T, error)
	wrap    func(currency string, record T, capturedAt time.Time) entities.CacheEntry
	unwrap  func(entry entities.CacheEntry) T
	mock    func(currency string) T
	observe func(currency string, record T)
}

// FetchBitcoinPrice returns the bitcoin quote in currency ("" means usd).
// The code is used verbatim for the upstream query, the cache key and the
// record key, so record.Price(currency) answers for whatever the caller sent.
func (s *PriceDataService) FetchBitcoinPrice(ctx context.Context, currency string) entities.PriceRecord {
	return resolve(ctx, s, currency, recordOps[entities.PriceRecord]{
		kind:   entities.KindPrice,
		live:   s.source.SimplePrice,
		wrap:   entities.NewPriceEntry,
		unwrap: func(e entities.CacheEntry) entities.PriceRecord { return *e.Price },
		mock:   s.mock.Price,
		observe: func(currency string, r entities.PriceRecord) {
			if v, ok := r.Price(currency); ok {
				metrics.UpdateCurrentPrice(currency, v)
			}
		},
	})
}

// FetchBitcoinMarketData returns the 24h market snapshot in currency ("" means usd)
func (s *PriceDataService) FetchBitcoinMarketData(ctx context.Context, currency string) entities.MarketRecord {
	return resolve(ctx, s, currency, recordOps[entities.MarketRecord]{
		kind:   entities.KindMarket,
		live:   s.source.CoinMarketData,
		wrap:   entities.NewMarketEntry,
		unwrap: func(e entities.CacheEntry) entities.MarketRecord { return *e.Market },
		mock:   s.mock.Market,
		observe: func(currency string, r entities.MarketRecord) {
			metrics.UpdateCurrentMarketCap(currency, r.MarketCap)
		},
	})
}

func resolve[T any](ctx context.Context, s *PriceDataService, currency string, ops recordOps[T]) T {
	currency = entities.ResolveCurrency(currency)
	key := entities.NewCacheKey(ops.kind, currency)
	kind := string(ops.kind)

	logging.Records().Requested(ctx, kind, currency)

	if entry, ok := s.cache.Lookup(ctx, key); ok && s.cache.IsFresh(entry) {
		s.served(ctx, kind, currency, SourceCache, entry)
		return ops.unwrap(entry)
	}

	record, err := ops.live(ctx, currency)
	if err == nil {
		if storeErr := s.cache.Store(ctx, ops.wrap(currency, record, s.now())); storeErr != nil {
			logging.WarnWithError(ctx, "Live record not cached", storeErr, logging.Fields{
				logging.FieldKind:     kind,
				logging.FieldCurrency: currency,
			})
		}
		ops.observe(currency, record)
		s.served(ctx, kind, currency, SourceLive, entities.CacheEntry{})
		return record
	}

	reason := failureReason(err)
	metrics.RecordFallbackActivation(reason)
	logging.Records().FallbackActivated(ctx, kind, currency, reason, err)

	// Looked up again: another caller may have stored a value meanwhile.
	if entry, ok := s.cache.Lookup(ctx, key); ok {
		source := SourceStaleCache
		if s.cache.IsFresh(entry) {
			source = SourceCache
		}
		s.served(ctx, kind, currency, source, entry)
		return ops.unwrap(entry)
	}

	s.served(ctx, kind, currency, SourceMock, entities.CacheEntry{})
	return ops.mock(currency)
}

func (s *PriceDataService) served(ctx context.Context, kind, currency, source string, entry entities.CacheEntry) {
	metrics.RecordServed(kind, source)
	if !entry.CapturedAt.IsZero() {
		metrics.UpdateServedDataAge(kind, currency, entry.Age(s.now()).Seconds())
	}
	logging.Records().Served(ctx, kind, currency, source)
}

// failureReason extracts the failure kind of a tagged upstream error
func failureReason(err error) string {
	var typed interface{ ErrorType() string }
	if errors.As(err, &typed) {
		return typed.ErrorType()
	}
	return reasonUnknown
}
