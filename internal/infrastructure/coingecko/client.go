package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"btc-price-client/internal/domain/entities"
	"btc-price-client/internal/domain/interfaces"
	"btc-price-client/internal/infrastructure/logging"
	"btc-price-client/internal/infrastructure/metrics"
)

const (
	// DefaultBaseURL is the public CoinGecko v3 API
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	// DemoAPIKeyHeader carries an optional demo-plan key
	DemoAPIKeyHeader = "x-cg-demo-api-key"

	serviceName     = "coingecko"
	maxResponseSize = 4 << 20
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=coingecko_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client reads bitcoin price and market data from CoinGecko.
// It performs exactly one request per call; it never retries.
type Client struct {
	// baseURL is the base URL for the API, without trailing slash.
	baseURL string
	// httpClient performs the requests.
	httpClient HTTPClient
	// header contains headers sent with each request.
	header http.Header
}

// ClientOption is a configuration option for the CoinGecko client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout uses a dedicated http.Client with the given overall timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		if userAgent != "" {
			c.header.Set("User-Agent", userAgent)
		}
	}
}

// WithAPIKey sends a demo-plan API key. An empty key leaves requests unauthenticated.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		if key != "" {
			c.header.Set(DemoAPIKeyHeader, key)
		}
	}
}

// NewClient creates a new CoinGecko client.
func NewClient(options ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
	}
	c.header.Set("Accept", "application/json")
	c.header.Set("Content-Type", "application/json")

	for _, option := range options {
		option(c)
	}
	return c
}

var _ interfaces.MarketDataSource = (*Client)(nil)

// SimplePrice fetches the current bitcoin quote in currency plus its
// last update time. A body whose bitcoin object lacks the currency is
// still a success; the record simply has no quote for it.
func (c *Client) SimplePrice(ctx context.Context, currency string) (entities.PriceRecord, error) {
	query := url.Values{}
	query.Set("ids", CoinID)
	query.Set("vs_currencies", currency)
	query.Set("include_last_updated_at", "true")

	var body simplePriceResponse
	if err := c.get(ctx, endpointSimplePrice, query, &body); err != nil {
		return entities.PriceRecord{}, err
	}

	raw, ok := body[CoinID]
	if !ok || isJSONNull(raw) {
		return entities.PriceRecord{}, &FetchError{
			Kind:     KindInvalidResponse,
			Endpoint: endpointSimplePrice,
			Err:      fmt.Errorf("missing %q field", CoinID),
		}
	}

	var record entities.PriceRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return entities.PriceRecord{}, &FetchError{Kind: KindInvalidResponse, Endpoint: endpointSimplePrice, Err: err}
	}
	return record, nil
}

// CoinMarketData fetches the 24h market snapshot for currency.
// Values missing for the currency are replaced by fixed defaults.
func (c *Client) CoinMarketData(ctx context.Context, currency string) (entities.MarketRecord, error) {
	query := url.Values{}
	query.Set("localization", "false")
	query.Set("tickers", "false")
	query.Set("market_data", "true")
	query.Set("community_data", "false")
	query.Set("developer_data", "false")
	query.Set("sparkline", "false")

	var body coinResponse
	if err := c.get(ctx, endpointCoin, query, &body); err != nil {
		return entities.MarketRecord{}, err
	}

	if body.MarketData == nil {
		return entities.MarketRecord{}, &FetchError{
			Kind:     KindInvalidResponse,
			Endpoint: endpointCoin,
			Err:      fmt.Errorf("missing %q field", "market_data"),
		}
	}
	return toMarketRecord(body.MarketData, currency), nil
}

// get performs one GET and decodes a 2xx JSON body into out
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	start := time.Now()
	logging.Upstream().CallStarted(ctx, serviceName, endpoint)

	fail := func(status int, err *FetchError) error {
		elapsed := time.Since(start)
		metrics.RecordExternalAPICall(serviceName, endpoint, status, elapsed.Seconds())
		logging.Upstream().CallFailed(ctx, serviceName, endpoint, status, elapsed, err)
		return err
	}

	reqURL := c.baseURL + endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fail(0, &FetchError{Kind: KindTransport, Endpoint: endpoint, Err: fmt.Errorf("creating request: %w", err)})
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fail(0, &FetchError{Kind: KindTransport, Endpoint: endpoint, Err: fmt.Errorf("performing request: %w", err)})
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxResponseSize))
		return fail(res.StatusCode, &FetchError{Kind: KindStatus, Endpoint: endpoint, StatusCode: res.StatusCode})
	}

	if err := json.NewDecoder(io.LimitReader(res.Body, maxResponseSize)).Decode(out); err != nil {
		return fail(res.StatusCode, &FetchError{
			Kind:       KindInvalidResponse,
			Endpoint:   endpoint,
			StatusCode: res.StatusCode,
			Err:        fmt.Errorf("decoding response: %w", err),
		})
	}

	elapsed := time.Since(start)
	metrics.RecordExternalAPICall(serviceName, endpoint, res.StatusCode, elapsed.Seconds())
	logging.Upstream().CallSucceeded(ctx, serviceName, endpoint, res.StatusCode, elapsed)
	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
