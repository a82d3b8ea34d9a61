package services

import (
	"math/rand"
	"sync"
	"time"

	"btc-price-client/internal/domain/entities"
)

// MockConfig holds the baselines and jitter widths of synthetic data
type MockConfig struct {
	BaselinePrices        map[string]float64
	DefaultBaselinePrice  float64
	PriceJitter           float64
	PriceChangeJitter     float64
	PercentageChangeRange float64
}

// DefaultMockConfig returns the stock baselines: usd 45000, eur 42000, gbp 38000
func DefaultMockConfig() MockConfig {
	return MockConfig{
		BaselinePrices: map[string]float64{
			"usd": 45000,
			"eur": 42000,
			"gbp": 38000,
		},
		DefaultBaselinePrice:  45000,
		PriceJitter:           1000,
		PriceChangeJitter:     1000,
		PercentageChangeRange: 5,
	}
}

// MockDataGenerator synthesizes plausible records when neither the upstream
// nor the cache can answer. Safe for concurrent use.
type MockDataGenerator struct {
	config MockConfig

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// MockOption configures a MockDataGenerator
type MockOption func(*MockDataGenerator)

// WithRandSource pins the random source, e.g. rand.NewSource(1) in tests
func WithRandSource(src rand.Source) MockOption {
	return func(g *MockDataGenerator) {
		if src != nil {
			g.rng = rand.New(src)
		}
	}
}

// WithMockClock sets the clock used for last_updated_at
func WithMockClock(now func() time.Time) MockOption {
	return func(g *MockDataGenerator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewMockDataGenerator creates a generator; a non-positive default baseline
// falls back to the stock 45000
func NewMockDataGenerator(config MockConfig, opts ...MockOption) *MockDataGenerator {
	if config.DefaultBaselinePrice <= 0 {
		config.DefaultBaselinePrice = DefaultMockConfig().DefaultBaselinePrice
	}

	g := &MockDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// jitter returns a uniform value in [-width, width)
func (g *MockDataGenerator) jitter(width float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return (g.rng.Float64()*2 - 1) * width
}

// Price returns a synthetic quote for currency. Known currencies get their
// baseline plus jitter; unknown ones get the default baseline as is.
func (g *MockDataGenerator) Price(currency string) entities.PriceRecord {
	price := g.config.DefaultBaselinePrice
	if baseline, ok := g.config.BaselinePrices[currency]; ok {
		price = baseline + g.jitter(g.config.PriceJitter)
	}
	return entities.NewPriceRecord(currency, price, g.now().Unix())
}

// Market returns a synthetic market snapshot with fixed cap and volume
func (g *MockDataGenerator) Market(currency string) entities.MarketRecord {
	return entities.MarketRecord{
		MarketCap:                entities.DefaultMarketCap,
		TotalVolume:              entities.DefaultTotalVolume,
		PriceChange24h:           g.jitter(g.config.PriceChangeJitter),
		PriceChangePercentage24h: g.jitter(g.config.PercentageChangeRange),
	}
}
