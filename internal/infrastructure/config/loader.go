package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading using Viper
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader instance
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Load loads configuration from files and environment variables
func (l *Loader) Load() (*Config, error) {
	// 1. Configure Viper
	l.setupViper()

	// 2. Read configuration
	if err := l.v.ReadInConfig(); err != nil {
		// If config.yaml doesn't exist, use only env vars and defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 3. Unmarshal (defaults are registered in setDefaults)
	config := &Config{}
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 4. Override with specific env vars
	l.overrideWithEnvVars(config)

	return config, nil
}

// LoadFile loads configuration from an explicit file path plus env vars
func (l *Loader) LoadFile(path string) (*Config, error) {
	l.setupViper()
	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := &Config{}
	if err := l.v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	l.overrideWithEnvVars(config)
	return config, nil
}

// setupViper configures Viper to read files and env vars
func (l *Loader) setupViper() {
	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")

	l.v.AddConfigPath("./configs")
	l.v.AddConfigPath("../configs")
	l.v.AddConfigPath(".")
	l.v.AddConfigPath("/etc/btc-price")

	// BTC_PRICE_CACHE_WINDOW -> cache.window
	l.v.AutomaticEnv()
	l.v.SetEnvPrefix("BTC_PRICE")
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	l.setDefaults()
	l.bindEnvVars()
}

// setDefaults registers the defaults with Viper so AutomaticEnv can resolve
// prefixed variables (BTC_PRICE_*) for every known key
func (l *Loader) setDefaults() {
	d := GetDefaultConfig()

	l.v.SetDefault("server.port", d.Server.Port)
	l.v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	l.v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	l.v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	l.v.SetDefault("cache.backend", d.Cache.Backend)
	l.v.SetDefault("cache.window", d.Cache.Window)
	l.v.SetDefault("cache.key_prefix", d.Cache.KeyPrefix)
	l.v.SetDefault("cache.redis.addr", d.Cache.Redis.Addr)
	l.v.SetDefault("cache.redis.password", d.Cache.Redis.Password)
	l.v.SetDefault("cache.redis.db", d.Cache.Redis.DB)
	l.v.SetDefault("cache.redis.connect_retries", d.Cache.Redis.ConnectRetries)

	l.v.SetDefault("coingecko.base_url", d.CoinGecko.BaseURL)
	l.v.SetDefault("coingecko.timeout", d.CoinGecko.Timeout)
	l.v.SetDefault("coingecko.user_agent", d.CoinGecko.UserAgent)
	l.v.SetDefault("coingecko.api_key", d.CoinGecko.APIKey)

	l.v.SetDefault("logging.level", d.Logging.Level)
	l.v.SetDefault("logging.format", d.Logging.Format)

	l.v.SetDefault("business.default_currency", d.Business.DefaultCurrency)
	l.v.SetDefault("business.warmup_currencies", d.Business.WarmupCurrencies)
	l.v.SetDefault("business.warmup_timeout", d.Business.WarmupTimeout)

	l.v.SetDefault("fallback.baseline_prices", d.Fallback.BaselinePrices)
	l.v.SetDefault("fallback.default_baseline_price", d.Fallback.DefaultBaselinePrice)
	l.v.SetDefault("fallback.price_jitter", d.Fallback.PriceJitter)
	l.v.SetDefault("fallback.price_change_jitter", d.Fallback.PriceChangeJitter)
	l.v.SetDefault("fallback.percentage_change_range", d.Fallback.PercentageChangeRange)
}

// bindEnvVars maps specific environment variables to configuration keys
func (l *Loader) bindEnvVars() {
	envMappings := map[string]string{
		"server.port":                     "PORT",
		"cache.backend":                   "CACHE_BACKEND",
		"cache.window":                    "CACHE_WINDOW",
		"cache.key_prefix":                "CACHE_KEY_PREFIX",
		"cache.redis.addr":                "REDIS_ADDR",
		"cache.redis.password":            "REDIS_PASSWORD",
		"cache.redis.db":                  "REDIS_DB",
		"coingecko.base_url":              "COINGECKO_BASE_URL",
		"coingecko.timeout":               "COINGECKO_TIMEOUT",
		"coingecko.api_key":               "COINGECKO_API_KEY",
		"business.default_currency":       "DEFAULT_CURRENCY",
		"business.warmup_timeout":         "WARMUP_TIMEOUT",
		"logging.level":                   "LOG_LEVEL",
		"logging.format":                  "LOG_FORMAT",
		"fallback.price_jitter":           "FALLBACK_PRICE_JITTER",
		"fallback.default_baseline_price": "FALLBACK_DEFAULT_BASELINE_PRICE",
	}

	for configKey, envVar := range envMappings {
		_ = l.v.BindEnv(configKey, envVar)
	}
}

// overrideWithEnvVars maneja casos especiales de env vars
func (l *Loader) overrideWithEnvVars(config *Config) {
	// WARMUP_CURRENCIES como string separado por comas
	if warmupEnv := os.Getenv("WARMUP_CURRENCIES"); warmupEnv != "" {
		var currencies []string
		for _, c := range strings.Split(warmupEnv, ",") {
			c = strings.ToLower(strings.TrimSpace(c))
			if c != "" {
				currencies = append(currencies, c)
			}
		}
		if len(currencies) > 0 {
			config.Business.WarmupCurrencies = currencies
		}
	}

	config.Business.DefaultCurrency = strings.ToLower(strings.TrimSpace(config.Business.DefaultCurrency))
	config.Cache.Backend = strings.ToLower(strings.TrimSpace(config.Cache.Backend))
}

// GetEnvironment determina el entorno actual desde ENV vars
func GetEnvironment() string {
	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		env = strings.ToLower(os.Getenv("ENVIRONMENT"))
	}
	if env == "" {
		env = "development"
	}
	return env
}
