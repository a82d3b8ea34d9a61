package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btc-price-client/internal/application/services"
	"btc-price-client/internal/domain/entities"
	"btc-price-client/internal/infrastructure/repositories/cache"
	"btc-price-client/internal/infrastructure/web/handlers"
)

// downSource always fails, so every response comes from cache or mock data
type downSource struct{}

func (downSource) SimplePrice(context.Context, string) (entities.PriceRecord, error) {
	return entities.PriceRecord{}, context.DeadlineExceeded
}

func (downSource) CoinMarketData(context.Context, string) (entities.MarketRecord, error) {
	return entities.MarketRecord{}, context.DeadlineExceeded
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	records := cache.NewRecordCache(cache.NewMemoryCache(), cache.WithWindow(10*time.Second))
	svc := services.NewPriceDataService(downSource{}, records, nil)
	return NewRouter(handlers.NewPriceHandler(svc, "usd"), handlers.NewHealthHandler(records))
}

func TestRouter_Endpoints(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		contains   string
	}{
		{name: "price with fallback", method: http.MethodGet, path: "/api/v1/price?currency=usd", wantStatus: http.StatusOK, contains: `"last_updated_at"`},
		{name: "market with fallback", method: http.MethodGet, path: "/api/v1/market", wantStatus: http.StatusOK, contains: `"market_cap":850000000000`},
		{name: "invalid currency", method: http.MethodGet, path: "/api/v1/price?currency=$$", wantStatus: http.StatusBadRequest, contains: "INVALID_PARAMETER"},
		{name: "wrong method", method: http.MethodPost, path: "/api/v1/price", wantStatus: http.StatusMethodNotAllowed},
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK, contains: "healthy"},
		{name: "ready", method: http.MethodGet, path: "/ready", wantStatus: http.StatusOK, contains: "ready"},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK, contains: "btc_price_"},
		{name: "swagger doc", method: http.MethodGet, path: "/swagger/doc.json", wantStatus: http.StatusOK, contains: "/api/v1/price"},
		{name: "docs redirect", method: http.MethodGet, path: "/docs", wantStatus: http.StatusMovedPermanently},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			if tt.contains != "" {
				assert.Contains(t, w.Body.String(), tt.contains)
			}
		})
	}
}

func TestRouter_MockPriceInRange(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/price?currency=EUR", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"eur":`))
}
