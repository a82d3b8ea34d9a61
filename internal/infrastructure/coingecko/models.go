package coingecko

import "encoding/json"

// CoinID is the upstream identifier of the only asset this client reads
const CoinID = "bitcoin"

const (
	endpointSimplePrice = "/simple/price"
	endpointCoin        = "/coins/" + CoinID
)

// simplePriceResponse is {"bitcoin": {"usd": 50000, "last_updated_at": 1700000000}}.
// Kept raw so the entity decoder owns the flat price shape.
type simplePriceResponse map[string]json.RawMessage

// coinResponse is the subset of /coins/{id} we read
type coinResponse struct {
	MarketData *marketData `json:"market_data"`
}

// marketData values are keyed by currency code; null values count as absent
type marketData struct {
	MarketCap                          map[string]*float64 `json:"market_cap"`
	TotalVolume                        map[string]*float64 `json:"total_volume"`
	PriceChange24hInCurrency           map[string]*float64 `json:"price_change_24h_in_currency"`
	PriceChangePercentage24hInCurrency map[string]*float64 `json:"price_change_percentage_24h_in_currency"`
}
