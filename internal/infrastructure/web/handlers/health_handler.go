package handlers

import (
	"context"
	"net/http"
	"time"

	"btc-price-client/internal/application/dto"
)

const readinessTimeout = 2 * time.Second

// Pinger is anything whose reachability gates readiness
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler maneja los endpoints de health check
type HealthHandler struct {
	cache Pinger
}

// NewHealthHandler crea una nueva instancia del health handler
func NewHealthHandler(cache Pinger) *HealthHandler {
	return &HealthHandler{
		cache: cache,
	}
}

// Health godoc
// @Summary Basic health check
// @Description Verifies that the service is running. Does not touch dependencies.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is running correctly"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"service": "running",
	}

	writeJSONResponse(r.Context(), w, http.StatusOK, dto.NewHealthResponse("healthy", services))
}

// Ready godoc
// @Summary Readiness check
// @Description Verifies the cache backend is reachable. The upstream API is not checked since its failures are absorbed by the fallback chain.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is ready to receive traffic"
// @Failure 503 {object} dto.HealthResponse "Cache backend unreachable"
// @Router /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	services := make(map[string]string)

	if err := h.cache.Ping(ctx); err != nil {
		services["cache"] = "error: " + err.Error()
		writeJSONResponse(r.Context(), w, http.StatusServiceUnavailable, dto.NewHealthResponse("unhealthy", services))
		return
	}

	services["cache"] = "ready"
	services["service"] = "ready"

	writeJSONResponse(r.Context(), w, http.StatusOK, dto.NewHealthResponse("ready", services))
}
