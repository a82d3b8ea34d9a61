package interfaces

import (
	"btc-price-client/internal/domain/entities"
	"context"
)

// MarketDataSource is the upstream collaborator queried on a cache miss.
type MarketDataSource interface {
	SimplePrice(ctx context.Context, currency string) (entities.PriceRecord, error)
	CoinMarketData(ctx context.Context, currency string) (entities.MarketRecord, error)
}
