package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_DefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 10*time.Second, cfg.Cache.Window)
	assert.Equal(t, "https://api.coingecko.com/api/v3", cfg.CoinGecko.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.CoinGecko.Timeout)
	assert.Equal(t, []string{"usd", "eur", "gbp"}, cfg.Business.WarmupCurrencies)
	assert.InDelta(t, 42000, cfg.Fallback.BaselinePrices["eur"], 0.001)
}

func TestLoader_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CACHE_WINDOW", "3s")
	t.Setenv("CACHE_BACKEND", "GoCache")
	t.Setenv("COINGECKO_BASE_URL", "http://127.0.0.1:9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WARMUP_CURRENCIES", " USD, jpy ,,")
	t.Setenv("BTC_PRICE_COINGECKO_USER_AGENT", "tests/1.0")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Cache.Window)
	assert.Equal(t, "gocache", cfg.Cache.Backend)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.CoinGecko.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"usd", "jpy"}, cfg.Business.WarmupCurrencies)
	assert.Equal(t, "tests/1.0", cfg.CoinGecko.UserAgent)
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
cache:
  backend: redis
  window: 30s
  redis:
    addr: "redis:6379"
business:
  warmup_currencies: ["chf"]
fallback:
  baseline_prices:
    chf: 40000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewLoader().LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 30*time.Second, cfg.Cache.Window)
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, []string{"chf"}, cfg.Business.WarmupCurrencies)
	assert.InDelta(t, 40000, cfg.Fallback.BaselinePrices["chf"], 0.001)
	assert.NoError(t, NewValidator().Validate(cfg))
}

func TestLoader_LoadFileMissing(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
