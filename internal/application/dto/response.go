package dto

import (
	"time"

	"btc-price-client/internal/domain/entities"
)

// PriceResponse is the body of /api/v1/price: the price keyed by currency plus last_updated_at
// @Description Bitcoin price keyed by currency code, e.g. {"usd": 45123.45, "last_updated_at": 1700000000}
type PriceResponse = entities.PriceRecord

// MarketResponse represents the response from /api/v1/market
// @Description Bitcoin 24h market snapshot in the requested currency
type MarketResponse struct {
	MarketCap                float64 `json:"market_cap" example:"850000000000"`
	TotalVolume              float64 `json:"total_volume" example:"40000000000"`
	PriceChange24h           float64 `json:"price_change_24h" example:"-312.5"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h" example:"-0.71"`
}

// ErrorResponse represents a standard error response for endpoints
// @Description Standard error response for endpoints
type ErrorResponse struct {
	Error   string `json:"error" example:"INVALID_PARAMETER" validate:"required"` // Main error message
	Message string `json:"message,omitempty" example:"invalid currency: \"u$d\""` // Detailed error description
	Code    string `json:"code,omitempty" example:"400"`                          // HTTP error code or internal code
}

// HealthResponse represents the health check response with service status
// @Description Health check response with service status
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy" validate:"required" enums:"healthy,ready,unhealthy"` // Overall service status
	Timestamp time.Time         `json:"timestamp" example:"2024-01-15T09:30:00Z" validate:"required"`                 // When the health check was performed
	Services  map[string]string `json:"services,omitempty" example:"cache:ready"`                                     // Individual service statuses
}

// NewErrorResponse creates a new error response
func NewErrorResponse(error string, message string) *ErrorResponse {
	return &ErrorResponse{
		Error:   error,
		Message: message,
	}
}

// NewErrorResponseWithCode creates an error response with code
func NewErrorResponseWithCode(error string, message string, code string) *ErrorResponse {
	return &ErrorResponse{
		Error:   error,
		Message: message,
		Code:    code,
	}
}

// NewHealthResponse creates a health check response
func NewHealthResponse(status string, services map[string]string) *HealthResponse {
	return &HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Services:  services,
	}
}
