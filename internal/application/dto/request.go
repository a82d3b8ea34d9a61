package dto

import (
	"fmt"
	"strings"

	"btc-price-client/internal/domain/entities"
)

// ErrInvalidCurrency is returned for a currency parameter that is not a plain code
var ErrInvalidCurrency = fmt.Errorf("invalid currency")

// CurrencyRequest represents the query of /api/v1/price and /api/v1/market
type CurrencyRequest struct {
	// Currency es el código de la moneda de cotización, normalizado a minúsculas
	Currency string `json:"currency"`
}

// NewCurrencyRequest crea la request desde el query parameter.
// Vacío equivale a la moneda por defecto.
func NewCurrencyRequest(currencyParam, defaultCurrency string) (*CurrencyRequest, error) {
	currency := entities.NormalizeCurrency(currencyParam)
	if strings.TrimSpace(currencyParam) == "" && defaultCurrency != "" {
		currency = entities.NormalizeCurrency(defaultCurrency)
	}

	request := &CurrencyRequest{Currency: currency}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return request, nil
}

// Validate valida la request
func (r *CurrencyRequest) Validate() error {
	if !entities.IsValidCurrencyCode(r.Currency) {
		return fmt.Errorf("%w: %q (expected 2-10 letters, e.g. usd)", ErrInvalidCurrency, r.Currency)
	}
	return nil
}
