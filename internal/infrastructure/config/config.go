package config

import (
	"time"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko" mapstructure:"coingecko"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
	Business  BusinessConfig  `yaml:"business" mapstructure:"business"`
	Fallback  FallbackConfig  `yaml:"fallback" mapstructure:"fallback"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port" mapstructure:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// CacheConfig contains cache system configuration.
// Window is the freshness window shared by every key; entries are never
// expired by the backend, only judged stale against it.
type CacheConfig struct {
	Backend   string        `yaml:"backend" mapstructure:"backend"`
	Window    time.Duration `yaml:"window" mapstructure:"window"`
	KeyPrefix string        `yaml:"key_prefix" mapstructure:"key_prefix"`
	Redis     RedisConfig   `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig contains Redis-specific configuration
type RedisConfig struct {
	Addr           string `yaml:"addr" mapstructure:"addr"`
	Password       string `yaml:"password" mapstructure:"password"`
	DB             int    `yaml:"db" mapstructure:"db"`
	ConnectRetries int    `yaml:"connect_retries" mapstructure:"connect_retries"`
}

// CoinGeckoConfig contains the upstream market-data API configuration
type CoinGeckoConfig struct {
	BaseURL   string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent string        `yaml:"user_agent" mapstructure:"user_agent"`
	APIKey    string        `yaml:"api_key" mapstructure:"api_key"`
}

// LoggingConfig contains logging system configuration
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// BusinessConfig contains specific business configurations
type BusinessConfig struct {
	DefaultCurrency  string        `yaml:"default_currency" mapstructure:"default_currency"`
	WarmupCurrencies []string      `yaml:"warmup_currencies" mapstructure:"warmup_currencies"`
	WarmupTimeout    time.Duration `yaml:"warmup_timeout" mapstructure:"warmup_timeout"`
}

// FallbackConfig tunes the synthetic data served when both the upstream and the cache fail
type FallbackConfig struct {
	BaselinePrices        map[string]float64 `yaml:"baseline_prices" mapstructure:"baseline_prices"`
	DefaultBaselinePrice  float64            `yaml:"default_baseline_price" mapstructure:"default_baseline_price"`
	PriceJitter           float64            `yaml:"price_jitter" mapstructure:"price_jitter"`
	PriceChangeJitter     float64            `yaml:"price_change_jitter" mapstructure:"price_change_jitter"`
	PercentageChangeRange float64            `yaml:"percentage_change_range" mapstructure:"percentage_change_range"`
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Backend:   "memory",
			Window:    10 * time.Second,
			KeyPrefix: "btc_price:",
			Redis: RedisConfig{
				Addr:           "localhost:6379",
				Password:       "",
				DB:             0,
				ConnectRetries: 3,
			},
		},
		CoinGecko: CoinGeckoConfig{
			BaseURL:   "https://api.coingecko.com/api/v3",
			Timeout:   10 * time.Second,
			UserAgent: "btc-price-client/1.0",
			APIKey:    "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Business: BusinessConfig{
			DefaultCurrency:  "usd",
			WarmupCurrencies: []string{"usd", "eur", "gbp"},
			WarmupTimeout:    15 * time.Second,
		},
		Fallback: FallbackConfig{
			BaselinePrices: map[string]float64{
				"usd": 45000,
				"eur": 42000,
				"gbp": 38000,
			},
			DefaultBaselinePrice:  45000,
			PriceJitter:           1000,
			PriceChangeJitter:     1000,
			PercentageChangeRange: 5,
		},
	}
}
