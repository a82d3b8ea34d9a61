package interfaces

import (
	"btc-price-client/internal/domain/entities"
	"context"
)

// PriceDataClient expone las operaciones de lectura de precio y mercado de bitcoin.
// Ninguna de las dos falla: ante errores devuelven caché (aunque esté vencida)
// o datos sintéticos.
type PriceDataClient interface {
	// FetchBitcoinPrice returns the current price in currency ("usd" when empty)
	FetchBitcoinPrice(ctx context.Context, currency string) entities.PriceRecord

	// FetchBitcoinMarketData returns the 24h market snapshot in currency ("usd" when empty)
	FetchBitcoinMarketData(ctx context.Context, currency string) entities.MarketRecord
}
