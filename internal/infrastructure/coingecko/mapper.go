package coingecko

import "btc-price-client/internal/domain/entities"

// toMarketRecord picks the requested currency out of every nested map,
// substituting the documented default for any value that is absent or null.
func toMarketRecord(md *marketData, currency string) entities.MarketRecord {
	return entities.MarketRecord{
		MarketCap:                valueOr(md.MarketCap, currency, entities.DefaultMarketCap),
		TotalVolume:              valueOr(md.TotalVolume, currency, entities.DefaultTotalVolume),
		PriceChange24h:           valueOr(md.PriceChange24hInCurrency, currency, entities.DefaultPriceChange24h),
		PriceChangePercentage24h: valueOr(md.PriceChangePercentage24hInCurrency, currency, entities.DefaultPriceChangePercentage24h),
	}
}

func valueOr(values map[string]*float64, currency string, fallback float64) float64 {
	if v, ok := values[currency]; ok && v != nil {
		return *v
	}
	return fallback
}
