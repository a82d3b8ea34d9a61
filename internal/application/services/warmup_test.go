package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"btc-price-client/internal/domain/entities"
)

func TestWarmUp_PrimesEveryCurrencyOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, c := range []string{"usd", "eur"} {
		f.source.On("SimplePrice", mock.Anything, c).Return(entities.NewPriceRecord(c, 1, 1), nil).Once()
		f.source.On("CoinMarketData", mock.Anything, c).Return(entities.MarketRecord{MarketCap: 1}, nil).Once()
	}

	require.NoError(t, f.service.WarmUp(ctx, []string{"usd", "EUR", "eur", " usd"}))

	for _, c := range []string{"usd", "eur"} {
		for _, kind := range []entities.Kind{entities.KindPrice, entities.KindMarket} {
			entry, ok := f.cache.Lookup(ctx, entities.NewCacheKey(kind, c))
			require.True(t, ok, "%s:%s", kind, c)
			assert.True(t, f.cache.IsFresh(entry))
		}
	}
}

func TestWarmUp_NoCurrencies(t *testing.T) {
	f := newFixture(t)
	assert.NoError(t, f.service.WarmUp(context.Background(), nil))
}

func TestWarmUp_CancelledContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.source.On("SimplePrice", mock.Anything, "usd").Return(entities.PriceRecord{}, errDial).Maybe()
	f.source.On("CoinMarketData", mock.Anything, "usd").Return(entities.MarketRecord{}, errDial).Maybe()

	assert.ErrorIs(t, f.service.WarmUp(ctx, []string{"usd"}), context.Canceled)
}
