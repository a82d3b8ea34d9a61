package handlers

import (
	"net/http"

	"btc-price-client/internal/application/dto"
	"btc-price-client/internal/domain/interfaces"
	"btc-price-client/internal/infrastructure/logging"
)

const currencyParam = "currency"

// PriceHandler serves bitcoin price and market snapshots
type PriceHandler struct {
	client          interfaces.PriceDataClient
	mapper          *dto.RecordMapper
	defaultCurrency string
}

// NewPriceHandler creates a new instance of the price handler
func NewPriceHandler(client interfaces.PriceDataClient, defaultCurrency string) *PriceHandler {
	return &PriceHandler{
		client:          client,
		mapper:          dto.NewRecordMapper(),
		defaultCurrency: defaultCurrency,
	}
}

// GetPrice godoc
// @Summary Current bitcoin price
// @Description Returns the bitcoin price in the requested currency. Served from a 10s cache, falling back to stale cache or synthetic data when CoinGecko is unavailable.
// @Tags price
// @Produce json
// @Param currency query string false "Quote currency (2-10 letters)" default(usd)
// @Success 200 {object} dto.PriceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid currency"
// @Router /api/v1/price [get]
func (h *PriceHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	request, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	record := h.client.FetchBitcoinPrice(ctx, request.Currency)
	writeJSONResponse(ctx, w, http.StatusOK, h.mapper.ToPriceResponse(record))
}

// GetMarket godoc
// @Summary Bitcoin 24h market data
// @Description Returns market cap, total volume and 24h change in the requested currency. Missing upstream fields are replaced by defaults.
// @Tags price
// @Produce json
// @Param currency query string false "Quote currency (2-10 letters)" default(usd)
// @Success 200 {object} dto.MarketResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid currency"
// @Router /api/v1/market [get]
func (h *PriceHandler) GetMarket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	request, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	record := h.client.FetchBitcoinMarketData(ctx, request.Currency)
	writeJSONResponse(ctx, w, http.StatusOK, h.mapper.ToMarketResponse(record))
}

func (h *PriceHandler) parseRequest(w http.ResponseWriter, r *http.Request) (*dto.CurrencyRequest, bool) {
	raw := r.URL.Query().Get(currencyParam)

	request, err := dto.NewCurrencyRequest(raw, h.defaultCurrency)
	if err != nil {
		logging.Records().InvalidInput(r.Context(), raw, err.Error())
		writeErrorResponse(r.Context(), w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error())
		return nil, false
	}
	return request, true
}
