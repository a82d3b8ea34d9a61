package entities

// MarketRecord holds the 24h market snapshot for bitcoin in a single currency
type MarketRecord struct {
	MarketCap                float64 `json:"market_cap"`
	TotalVolume              float64 `json:"total_volume"`
	PriceChange24h           float64 `json:"price_change_24h"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
}

// Valores usados cuando el upstream no trae el campo para la moneda pedida
const (
	DefaultMarketCap                = 850_000_000_000
	DefaultTotalVolume              = 40_000_000_000
	DefaultPriceChange24h           = 0
	DefaultPriceChangePercentage24h = 0
)
