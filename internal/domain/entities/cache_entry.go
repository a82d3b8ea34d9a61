package entities

import "time"

// Kind identifies which read operation produced a cached value
type Kind string

const (
	KindPrice  Kind = "price"
	KindMarket Kind = "market"
)

// CacheKey is the composite key (operation kind x currency) of a cache entry.
type CacheKey struct {
	Kind     Kind
	Currency string
}

// NewCacheKey builds a key; the currency is kept verbatim, "" meaning usd
func NewCacheKey(kind Kind, currency string) CacheKey {
	return CacheKey{
		Kind:     kind,
		Currency: ResolveCurrency(currency),
	}
}

// String renders the key as stored in string-valued backends, e.g. "price:usd".
func (k CacheKey) String() string {
	return string(k.Kind) + ":" + k.Currency
}

// CacheEntry is a cached value together with the moment it was captured.
// Exactly one of Price or Market is set, matching Key.Kind.
type CacheEntry struct {
	Key        CacheKey      `json:"-"`
	Price      *PriceRecord  `json:"price,omitempty"`
	Market     *MarketRecord `json:"market,omitempty"`
	CapturedAt time.Time     `json:"captured_at"`
}

// NewPriceEntry wraps a price record captured at the given time
func NewPriceEntry(currency string, record PriceRecord, capturedAt time.Time) CacheEntry {
	return CacheEntry{
		Key:        NewCacheKey(KindPrice, currency),
		Price:      &record,
		CapturedAt: capturedAt,
	}
}

// NewMarketEntry wraps a market record captured at the given time
func NewMarketEntry(currency string, record MarketRecord, capturedAt time.Time) CacheEntry {
	return CacheEntry{
		Key:        NewCacheKey(KindMarket, currency),
		Market:     &record,
		CapturedAt: capturedAt,
	}
}

// Age returns how old the entry is relative to now
func (e CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.CapturedAt)
}
