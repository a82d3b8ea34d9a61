package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "btc-price-client/internal/docs" // registra la documentación OpenAPI
	"btc-price-client/internal/infrastructure/metrics"
	"btc-price-client/internal/infrastructure/web/handlers"
	"btc-price-client/internal/infrastructure/web/middleware"
)

// NewRouter sets up HTTP routes and wraps them with the middleware chain
func NewRouter(priceHandler *handlers.PriceHandler, healthHandler *handlers.HealthHandler) http.Handler {
	r := mux.NewRouter()

	// API endpoints
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/price", priceHandler.GetPrice).Methods(http.MethodGet)
	api.HandleFunc("/market", priceHandler.GetMarket).Methods(http.MethodGet)

	r.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	r.HandleFunc("/ready", healthHandler.Ready).Methods(http.MethodGet)

	// Monitoring endpoints
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Documentation endpoints
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.HandleFunc("/docs", redirectToSwagger)
	r.HandleFunc("/docs/", redirectToSwagger)

	// Apply middleware
	var h http.Handler = r
	h = middleware.CORSMiddleware(h)
	h = metrics.HTTPMetricsMiddleware(h)
	h = middleware.RequestTracingMiddleware(h)
	h = middleware.RecoveryMiddleware(h)
	return h
}

func redirectToSwagger(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
}
