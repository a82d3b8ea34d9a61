package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"btc-price-client/internal/domain/entities"
)

const (
	minCacheWindow = 100 * time.Millisecond
	maxCacheWindow = 24 * time.Hour
)

// Validator valida la configuración cargada
type Validator struct{}

// NewValidator crea una nueva instancia del validador
func NewValidator() *Validator {
	return &Validator{}
}

// Validate valida toda la configuración
func (v *Validator) Validate(config *Config) error {
	if err := v.validateServer(config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := v.validateCache(config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if err := v.validateCoinGecko(config.CoinGecko); err != nil {
		return fmt.Errorf("coingecko config validation failed: %w", err)
	}

	if err := v.validateLogging(config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := v.validateBusiness(config.Business); err != nil {
		return fmt.Errorf("business config validation failed: %w", err)
	}

	if err := v.validateFallback(config.Fallback); err != nil {
		return fmt.Errorf("fallback config validation failed: %w", err)
	}

	return nil
}

// validateServer valida la configuración del servidor
func (v *Validator) validateServer(config ServerConfig) error {
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("invalid port: %d, must be between 1-65535", config.Port)
	}

	if config.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got: %v", config.ShutdownTimeout)
	}

	if config.ShutdownTimeout > 5*time.Minute {
		return fmt.Errorf("shutdown_timeout too long: %v, max 5 minutes", config.ShutdownTimeout)
	}

	if config.ReadTimeout < 0 || config.WriteTimeout < 0 {
		return fmt.Errorf("read/write timeouts cannot be negative")
	}

	return nil
}

// validateCache valida la configuración del cache
func (v *Validator) validateCache(config CacheConfig) error {
	validBackends := []string{"memory", "gocache", "redis"}
	if !contains(validBackends, config.Backend) {
		return fmt.Errorf("invalid cache backend: %s, must be one of: %v", config.Backend, validBackends)
	}

	if err := v.validateWindow(config.Window); err != nil {
		return err
	}

	if config.KeyPrefix == "" {
		return fmt.Errorf("cache key_prefix cannot be empty")
	}

	// Validar Redis config si se usa Redis
	if config.Backend == "redis" {
		if err := v.validateRedis(config.Redis); err != nil {
			return err
		}
	}

	return nil
}

// validateWindow checks the freshness window bounds
func (v *Validator) validateWindow(window time.Duration) error {
	if window <= 0 {
		return fmt.Errorf("cache window must be positive, got: %v", window)
	}

	if window < minCacheWindow {
		return fmt.Errorf("cache window too short: %v, min %v", window, minCacheWindow)
	}

	if window > maxCacheWindow {
		return fmt.Errorf("cache window too long: %v, max %v", window, maxCacheWindow)
	}

	return nil
}

// validateRedis valida la configuración de Redis
func (v *Validator) validateRedis(config RedisConfig) error {
	if config.Addr == "" {
		return fmt.Errorf("redis addr cannot be empty")
	}

	// Validar formato de dirección
	if !strings.Contains(config.Addr, ":") {
		return fmt.Errorf("invalid redis addr format: %s, expected host:port", config.Addr)
	}

	if config.DB < 0 || config.DB > 15 {
		return fmt.Errorf("invalid redis DB: %d, must be between 0-15", config.DB)
	}

	if config.ConnectRetries < 1 || config.ConnectRetries > 10 {
		return fmt.Errorf("redis connect_retries must be between 1-10, got: %d", config.ConnectRetries)
	}

	return nil
}

// validateCoinGecko valida la configuración del API upstream
func (v *Validator) validateCoinGecko(config CoinGeckoConfig) error {
	if err := v.validateURL(config.BaseURL, "coingecko base_url"); err != nil {
		return err
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("coingecko timeout must be positive, got: %v", config.Timeout)
	}

	if config.Timeout > 2*time.Minute {
		return fmt.Errorf("coingecko timeout too long: %v, max 2 minutes", config.Timeout)
	}

	return nil
}

// validateLogging valida la configuración de logging
func (v *Validator) validateLogging(config LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, strings.ToLower(config.Level)) {
		return fmt.Errorf("invalid log level: %s, must be one of: %v", config.Level, validLevels)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, strings.ToLower(config.Format)) {
		return fmt.Errorf("invalid log format: %s, must be one of: %v", config.Format, validFormats)
	}

	return nil
}

// validateBusiness valida la configuración de negocio
func (v *Validator) validateBusiness(config BusinessConfig) error {
	if !entities.IsValidCurrencyCode(config.DefaultCurrency) {
		return fmt.Errorf("invalid default_currency: %q", config.DefaultCurrency)
	}

	for _, currency := range config.WarmupCurrencies {
		if !entities.IsValidCurrencyCode(strings.TrimSpace(currency)) {
			return fmt.Errorf("invalid warmup currency: %q, expected 2-10 letters", currency)
		}
	}

	if len(config.WarmupCurrencies) > 0 && config.WarmupTimeout <= 0 {
		return fmt.Errorf("warmup_timeout must be positive when warmup currencies are set, got: %v", config.WarmupTimeout)
	}

	return nil
}

// validateFallback checks the synthetic data parameters
func (v *Validator) validateFallback(config FallbackConfig) error {
	if config.DefaultBaselinePrice <= 0 {
		return fmt.Errorf("default_baseline_price must be positive, got: %v", config.DefaultBaselinePrice)
	}

	for currency, price := range config.BaselinePrices {
		if price <= 0 {
			return fmt.Errorf("baseline price for %s must be positive, got: %v", currency, price)
		}
	}

	if config.PriceJitter < 0 || config.PriceChangeJitter < 0 || config.PercentageChangeRange < 0 {
		return fmt.Errorf("fallback jitter values cannot be negative")
	}

	if config.PriceJitter >= config.DefaultBaselinePrice {
		return fmt.Errorf("price_jitter (%v) must be lower than default_baseline_price (%v)", config.PriceJitter, config.DefaultBaselinePrice)
	}

	return nil
}

// validateURL valida que una URL sea válida para HTTP/HTTPS
func (v *Validator) validateURL(rawURL, fieldName string) error {
	if rawURL == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid %s: %s, error: %v", fieldName, rawURL, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("invalid %s scheme: %s, must be http or https", fieldName, parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("%s must have a host", fieldName)
	}

	return nil
}

// contains verifica si un slice contiene un elemento
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
