package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the BTC price client
var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "btc_price_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "btc_price_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPResponseSizeBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "btc_price_http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 1000, 10000, 100000},
		},
		[]string{"method", "path"},
	)

	// Cache Metrics
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "btc_price_cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"}, // operation: get/set, result: hit/miss/stale/success/error
	)

	// External API Metrics
	ExternalAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "btc_price_external_api_requests_total",
			Help: "Total number of external API requests",
		},
		[]string{"service", "endpoint", "status_code"},
	)

	ExternalAPIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "btc_price_external_api_request_duration_seconds",
			Help:    "External API request duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0},
		},
		[]string{"service", "endpoint"},
	)

	// Business Metrics
	RecordsServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "btc_price_records_served_total",
			Help: "Total number of records returned to callers",
		},
		[]string{"kind", "source"}, // kind: price/market, source: cache/live/stale_cache/mock
	)

	FallbackActivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "btc_price_fallback_activations_total",
			Help: "Total number of times live data could not be fetched",
		},
		[]string{"reason"}, // reason: transport/status/invalid_response
	)

	CurrentPrices = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "btc_price_current_price",
			Help: "Last live bitcoin price per currency",
		},
		[]string{"currency"},
	)

	CurrentMarketCap = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "btc_price_current_market_cap",
			Help: "Last live bitcoin market capitalization per currency",
		},
		[]string{"currency"},
	)

	ServedDataAge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "btc_price_served_data_age_seconds",
			Help: "Age of the last cached record served per kind",
		},
		[]string{"kind", "currency"},
	)

	// Application Metrics
	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "btc_price_application_info",
			Help: "Application information",
		},
		[]string{"version", "cache_backend", "go_version"},
	)

	UptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "btc_price_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, path string, statusCode int, duration float64, responseSize int64) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)

	if responseSize > 0 {
		HTTPResponseSizeBytes.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

// RecordCacheOperation records cache operation metrics
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordExternalAPICall records external API call metrics.
// statusCode is 0 when the request never produced a response.
func RecordExternalAPICall(service, endpoint string, statusCode int, duration float64) {
	ExternalAPIRequestsTotal.WithLabelValues(service, endpoint, strconv.Itoa(statusCode)).Inc()
	ExternalAPIRequestDuration.WithLabelValues(service, endpoint).Observe(duration)
}

// RecordServed records which tier produced a returned record
func RecordServed(kind, source string) {
	RecordsServedTotal.WithLabelValues(kind, source).Inc()
}

// RecordFallbackActivation records a failed live fetch by failure kind
func RecordFallbackActivation(reason string) {
	FallbackActivationsTotal.WithLabelValues(reason).Inc()
}

// UpdateCurrentPrice updates current price gauge
func UpdateCurrentPrice(currency string, price float64) {
	CurrentPrices.WithLabelValues(currency).Set(price)
}

// UpdateCurrentMarketCap updates the market cap gauge
func UpdateCurrentMarketCap(currency string, marketCap float64) {
	CurrentMarketCap.WithLabelValues(currency).Set(marketCap)
}

// UpdateServedDataAge updates the age gauge of cached data handed out
func UpdateServedDataAge(kind, currency string, ageSeconds float64) {
	ServedDataAge.WithLabelValues(kind, currency).Set(ageSeconds)
}

// SetApplicationInfo sets application information
func SetApplicationInfo(version, cacheBackend, goVersion string) {
	ApplicationInfo.WithLabelValues(version, cacheBackend, goVersion).Set(1)
}

// UpdateUptime updates application uptime
func UpdateUptime(seconds float64) {
	UptimeSeconds.Set(seconds)
}
