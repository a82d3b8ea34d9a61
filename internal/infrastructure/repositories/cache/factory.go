package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"

	"btc-price-client/internal/domain/interfaces"
	"btc-price-client/internal/infrastructure/logging"
)

// CacheType represents the type of cache implementation
type CacheType string

const (
	CacheTypeMemory  CacheType = "memory"
	CacheTypeGoCache CacheType = "gocache"
	CacheTypeRedis   CacheType = "redis"
)

const (
	redisPingTimeout = 2 * time.Second
	redisRetryDelay  = 200 * time.Millisecond
)

// Config holds cache configuration options
type Config struct {
	Type           CacheType
	RedisURL       string
	RedisDB        int
	Password       string
	ConnectRetries int
}

// Factory provides methods to create cache instances
type Factory struct{}

// NewFactory creates a new cache factory
func NewFactory() *Factory {
	return &Factory{}
}

// CreateCache creates a cache instance based on configuration
func (f *Factory) CreateCache(ctx context.Context, config Config) (interfaces.Cache, error) {
	fields := logging.Fields{logging.FieldCacheBackend: string(config.Type)}

	switch config.Type {
	case CacheTypeMemory, "":
		logging.Info(ctx, "Creating memory cache", fields)
		return NewMemoryCache(), nil

	case CacheTypeGoCache:
		logging.Info(ctx, "Creating go-cache store", fields)
		return NewGoCache(), nil

	case CacheTypeRedis:
		fields["addr"] = config.RedisURL
		fields["database"] = config.RedisDB
		logging.Info(ctx, "Creating Redis cache", fields)
		return f.createRedisCache(ctx, config)

	default:
		return nil, fmt.Errorf("unsupported cache type: %s", config.Type)
	}
}

// createRedisCache creates the client and waits for the first PONG
func (f *Factory) createRedisCache(ctx context.Context, config Config) (interfaces.Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisURL,
		Password: config.Password,
		DB:       config.RedisDB,
	})

	attempts := config.ConnectRetries
	if attempts < 1 {
		attempts = 1
	}

	err := retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
			defer cancel()
			return rdb.Ping(pingCtx).Err()
		},
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.Delay(redisRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logging.WarnWithError(ctx, "Redis ping failed, retrying", err, logging.Fields{
				"addr":    config.RedisURL,
				"attempt": n + 1,
			})
		}),
	)
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", config.RedisURL, err)
	}

	logging.Info(ctx, "Redis connection established successfully", logging.Fields{
		"addr":     config.RedisURL,
		"database": config.RedisDB,
	})
	return NewRedisCacheWithClient(rdb), nil
}
