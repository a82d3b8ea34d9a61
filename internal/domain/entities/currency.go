package entities

import "strings"

// DefaultCurrency is used when the caller does not name a currency.
const DefaultCurrency = "usd"

// NormalizeCurrency lower-cases and trims a currency code, defaulting to usd.
// Unknown codes are passed through untouched.
func NormalizeCurrency(currency string) string {
	c := strings.ToLower(strings.TrimSpace(currency))
	if c == "" {
		return DefaultCurrency
	}
	return c
}

// ResolveCurrency only substitutes usd for an empty code. Any other code,
// casing and whitespace included, is kept exactly as the caller wrote it.
func ResolveCurrency(currency string) string {
	if currency == "" {
		return DefaultCurrency
	}
	return currency
}

// IsValidCurrencyCode reports whether a normalized code looks like a vs_currency
// accepted by the upstream: 2 to 10 ASCII letters.
func IsValidCurrencyCode(currency string) bool {
	if len(currency) < 2 || len(currency) > 10 {
		return false
	}
	for _, r := range currency {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
