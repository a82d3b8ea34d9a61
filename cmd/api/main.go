package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"btc-price-client/internal/application/services"
	"btc-price-client/internal/docs"
	"btc-price-client/internal/infrastructure/coingecko"
	"btc-price-client/internal/infrastructure/config"
	"btc-price-client/internal/infrastructure/logging"
	"btc-price-client/internal/infrastructure/metrics"
	"btc-price-client/internal/infrastructure/repositories/cache"
	"btc-price-client/internal/infrastructure/web/handlers"
	"btc-price-client/internal/infrastructure/web/server"
)

const (
	serviceName    = "btc-price-client"
	serviceVersion = "1.0.0"
	uptimeInterval = 15 * time.Second
)

// @title BTC Price Client API
// @version 1.0
// @description Bitcoin price and 24h market data from CoinGecko with a 10 second cache and graceful fallback.
// @host localhost:8080
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatalf("btc-price-client: %v", err)
	}
}

func run() error {
	startedAt := time.Now()

	// Load configuration
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if err := config.NewValidator().Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Configure structured logging
	logConfig := logging.NewConfig(serviceName, serviceVersion, config.GetEnvironment()).
		WithLevel(logging.ParseLevel(cfg.Logging.Level)).
		WithFormat(logging.ParseFormat(cfg.Logging.Format))
	if err := logging.InitializeGlobalLoggers(logConfig); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info(ctx, "Initializing service components", logging.Fields{
		"cache_backend": cfg.Cache.Backend,
		"cache_window":  cfg.Cache.Window.String(),
		"upstream":      cfg.CoinGecko.BaseURL,
	})

	// Create cache based on configuration
	backend, err := cache.NewFactory().CreateCache(ctx, cache.Config{
		Type:           cache.CacheType(cfg.Cache.Backend),
		RedisURL:       cfg.Cache.Redis.Addr,
		RedisDB:        cfg.Cache.Redis.DB,
		Password:       cfg.Cache.Redis.Password,
		ConnectRetries: cfg.Cache.Redis.ConnectRetries,
	})
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logging.WarnWithError(context.Background(), "Cache close failed", err, nil)
		}
	}()

	records := cache.NewRecordCache(backend,
		cache.WithWindow(cfg.Cache.Window),
		cache.WithKeyPrefix(cfg.Cache.KeyPrefix),
	)

	upstream := coingecko.NewClient(
		coingecko.WithBaseURL(cfg.CoinGecko.BaseURL),
		coingecko.WithTimeout(cfg.CoinGecko.Timeout),
		coingecko.WithUserAgent(cfg.CoinGecko.UserAgent),
		coingecko.WithAPIKey(cfg.CoinGecko.APIKey),
	)

	generator := services.NewMockDataGenerator(services.MockConfig{
		BaselinePrices:        cfg.Fallback.BaselinePrices,
		DefaultBaselinePrice:  cfg.Fallback.DefaultBaselinePrice,
		PriceJitter:           cfg.Fallback.PriceJitter,
		PriceChangeJitter:     cfg.Fallback.PriceChangeJitter,
		PercentageChangeRange: cfg.Fallback.PercentageChangeRange,
	})

	priceClient := services.NewPriceDataService(upstream, records, generator)

	metrics.SetApplicationInfo(serviceVersion, cfg.Cache.Backend, runtime.Version())
	go trackUptime(ctx, startedAt)

	// Pre-warm cache; failures only cost the first requests some latency
	if len(cfg.Business.WarmupCurrencies) > 0 {
		warmCtx, cancel := context.WithTimeout(ctx, cfg.Business.WarmupTimeout)
		if err := priceClient.WarmUp(warmCtx, cfg.Business.WarmupCurrencies); err != nil {
			logging.WarnWithError(ctx, "Failed to pre-warm cache", err, nil)
		}
		cancel()
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.Server.Port)

	router := server.NewRouter(
		handlers.NewPriceHandler(priceClient, cfg.Business.DefaultCurrency),
		handlers.NewHealthHandler(records),
	)
	srv := server.NewServer(router, cfg.Server)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info(context.Background(), "Shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logging.Info(shutdownCtx, "Server shutdown completed", logging.Fields{
		"uptime_seconds": time.Since(startedAt).Seconds(),
	})
	return nil
}

// trackUptime refreshes the uptime gauge until ctx ends
func trackUptime(ctx context.Context, startedAt time.Time) {
	ticker := time.NewTicker(uptimeInterval)
	defer ticker.Stop()

	for {
		metrics.UpdateUptime(time.Since(startedAt).Seconds())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
