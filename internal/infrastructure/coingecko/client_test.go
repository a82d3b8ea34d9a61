package coingecko_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"btc-price-client/internal/domain/entities"
	"btc-price-client/internal/infrastructure/coingecko"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestSimplePrice(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller and HTTP client
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, http.MethodGet, req.Method)
			require.Equal(t, "/api/v3/simple/price", req.URL.Path)
			require.Equal(t, "bitcoin", req.URL.Query().Get("ids"))
			require.Equal(t, "usd", req.URL.Query().Get("vs_currencies"))
			require.Equal(t, "true", req.URL.Query().Get("include_last_updated_at"))
			require.Equal(t, "application/json", req.Header.Get("Accept"))
			require.Equal(t, "application/json", req.Header.Get("Content-Type"))
			require.Empty(t, req.Header.Get(coingecko.DemoAPIKeyHeader))

			return jsonResponse(http.StatusOK, `{"bitcoin":{"usd":50000,"last_updated_at":1700000000}}`), nil
		}).
		Times(1)

	client := coingecko.NewClient(coingecko.WithHTTPClient(httpClient))

	// Act
	record, err := client.SimplePrice(testContext(t), "usd")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entities.NewPriceRecord("usd", 50000, 1700000000), record)
}

func TestSimplePrice_MissingCurrencyIsStillAccepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{"bitcoin":{}}`), nil).
		Times(1)

	record, err := coingecko.NewClient(coingecko.WithHTTPClient(httpClient)).SimplePrice(testContext(t), "xyz")

	require.NoError(t, err)
	_, ok := record.Price("xyz")
	assert.False(t, ok)
	assert.Zero(t, record.LastUpdatedAt)
}

func TestSimplePrice_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response *http.Response
		err      error
		kind     coingecko.FailureKind
		sentinel error
	}{
		{
			name:     "transport",
			err:      errors.New("dial tcp: lookup api.coingecko.com: no such host"),
			kind:     coingecko.KindTransport,
			sentinel: coingecko.ErrTransport,
		},
		{
			name:     "rate limited",
			response: jsonResponse(http.StatusTooManyRequests, `{"status":{"error_code":429}}`),
			kind:     coingecko.KindStatus,
			sentinel: coingecko.ErrHTTPStatus,
		},
		{
			name:     "server error",
			response: jsonResponse(http.StatusInternalServerError, ``),
			kind:     coingecko.KindStatus,
			sentinel: coingecko.ErrHTTPStatus,
		},
		{
			name:     "not json",
			response: jsonResponse(http.StatusOK, `<html>maintenance</html>`),
			kind:     coingecko.KindInvalidResponse,
			sentinel: coingecko.ErrInvalidResponse,
		},
		{
			name:     "missing asset field",
			response: jsonResponse(http.StatusOK, `{"ethereum":{"usd":3000}}`),
			kind:     coingecko.KindInvalidResponse,
			sentinel: coingecko.ErrInvalidResponse,
		},
		{
			name:     "null asset field",
			response: jsonResponse(http.StatusOK, `{"bitcoin":null}`),
			kind:     coingecko.KindInvalidResponse,
			sentinel: coingecko.ErrInvalidResponse,
		},
		{
			name:     "non numeric quote",
			response: jsonResponse(http.StatusOK, `{"bitcoin":{"usd":"lots"}}`),
			kind:     coingecko.KindInvalidResponse,
			sentinel: coingecko.ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			httpClient := NewMockHTTPClient(ctrl)
			httpClient.EXPECT().Do(gomock.Any()).Return(tt.response, tt.err).Times(1)

			_, err := coingecko.NewClient(coingecko.WithHTTPClient(httpClient)).SimplePrice(testContext(t), "usd")

			require.Error(t, err)
			assert.Equal(t, tt.kind, coingecko.KindOf(err))
			assert.ErrorIs(t, err, tt.sentinel)

			var fe *coingecko.FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "/simple/price", fe.Endpoint)
			assert.Equal(t, string(tt.kind), fe.ErrorType())
		})
	}
}

func TestSimplePrice_ErrCreatingRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().Do(gomock.Any()).Times(0)

	client := coingecko.NewClient(
		coingecko.WithHTTPClient(httpClient),
		coingecko.WithBaseURL(string([]rune{0x7f})),
	)

	_, err := client.SimplePrice(testContext(t), "usd")
	require.Error(t, err)
	assert.ErrorIs(t, err, coingecko.ErrTransport)
}

func TestCoinMarketData(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			require.Equal(t, "/api/v3/coins/bitcoin", req.URL.Path)
			require.Equal(t, "false", q.Get("localization"))
			require.Equal(t, "false", q.Get("tickers"))
			require.Equal(t, "true", q.Get("market_data"))
			require.Equal(t, "false", q.Get("community_data"))
			require.Equal(t, "false", q.Get("developer_data"))
			require.Equal(t, "false", q.Get("sparkline"))
			require.Equal(t, "demo-key", req.Header.Get(coingecko.DemoAPIKeyHeader))
			require.Equal(t, "tests/1.0", req.Header.Get("User-Agent"))

			return jsonResponse(http.StatusOK, `{
				"id": "bitcoin",
				"market_data": {
					"market_cap": {"usd": 1200000000000, "eur": 1100000000000},
					"total_volume": {"usd": 35000000000},
					"price_change_24h_in_currency": {"usd": -512.5},
					"price_change_percentage_24h_in_currency": {"usd": -0.83}
				}
			}`), nil
		}).
		Times(1)

	client := coingecko.NewClient(
		coingecko.WithHTTPClient(httpClient),
		coingecko.WithAPIKey("demo-key"),
		coingecko.WithUserAgent("tests/1.0"),
	)

	record, err := client.CoinMarketData(testContext(t), "usd")

	require.NoError(t, err)
	assert.Equal(t, entities.MarketRecord{
		MarketCap:                1200000000000,
		TotalVolume:              35000000000,
		PriceChange24h:           -512.5,
		PriceChangePercentage24h: -0.83,
	}, record)
}

func TestCoinMarketData_FieldDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{
			"market_data": {
				"market_cap": {"eur": 1100000000000},
				"total_volume": {"eur": null},
				"price_change_percentage_24h_in_currency": {"eur": 0}
			}
		}`), nil).
		Times(1)

	record, err := coingecko.NewClient(coingecko.WithHTTPClient(httpClient)).CoinMarketData(testContext(t), "eur")

	require.NoError(t, err)
	assert.Equal(t, 1100000000000.0, record.MarketCap)
	assert.Equal(t, float64(entities.DefaultTotalVolume), record.TotalVolume, "null counts as absent")
	assert.Equal(t, 0.0, record.PriceChange24h, "missing map")
	assert.Equal(t, 0.0, record.PriceChangePercentage24h)
}

func TestCoinMarketData_MissingMarketData(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{"id":"bitcoin"}`, `{"market_data":null}`, `null`} {
		ctrl := gomock.NewController(t)
		httpClient := NewMockHTTPClient(ctrl)
		httpClient.EXPECT().Do(gomock.Any()).Return(jsonResponse(http.StatusOK, body), nil).Times(1)

		_, err := coingecko.NewClient(coingecko.WithHTTPClient(httpClient)).CoinMarketData(testContext(t), "usd")
		assert.ErrorIs(t, err, coingecko.ErrInvalidResponse, body)
	}
}

func TestClient_AgainstHTTPTestServer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/simple/price":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"bitcoin":{"gbp":39123.5,"last_updated_at":1700000123}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	client := coingecko.NewClient(coingecko.WithBaseURL(srv.URL+"/"), coingecko.WithTimeout(2*time.Second))

	record, err := client.SimplePrice(testContext(t), "gbp")
	require.NoError(t, err)
	price, ok := record.Price("gbp")
	assert.True(t, ok)
	assert.Equal(t, 39123.5, price)

	_, err = client.CoinMarketData(testContext(t), "gbp")
	var fe *coingecko.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
	assert.Equal(t, "coingecko /coins/bitcoin: http status 404", fe.Error())
}

func TestFetchError_Is(t *testing.T) {
	t.Parallel()

	err := &coingecko.FetchError{Kind: coingecko.KindTransport, Endpoint: "/simple/price", Err: io.ErrUnexpectedEOF}
	assert.ErrorIs(t, err, coingecko.ErrTransport)
	assert.NotErrorIs(t, err, coingecko.ErrHTTPStatus)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, coingecko.FailureKind(""), coingecko.KindOf(errors.New("plain")))
}
