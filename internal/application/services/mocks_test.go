package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"btc-price-client/internal/domain/entities"
)

// MockMarketDataSource is a testify mock of interfaces.MarketDataSource
type MockMarketDataSource struct {
	mock.Mock
}

func (m *MockMarketDataSource) SimplePrice(ctx context.Context, currency string) (entities.PriceRecord, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(entities.PriceRecord), args.Error(1)
}

func (m *MockMarketDataSource) CoinMarketData(ctx context.Context, currency string) (entities.MarketRecord, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(entities.MarketRecord), args.Error(1)
}

// testClock is a manually advanced clock shared by cache and service
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
