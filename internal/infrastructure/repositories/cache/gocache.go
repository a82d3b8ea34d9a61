package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"btc-price-client/internal/domain/interfaces"
)

const goCacheCleanupInterval = time.Minute

// GoCache adapts patrickmn/go-cache to the string-valued Cache interface
type GoCache struct {
	store *gocache.Cache
}

// NewGoCache creates a go-cache backed store whose items never expire by default
func NewGoCache() interfaces.Cache {
	return &GoCache{
		store: gocache.New(gocache.NoExpiration, goCacheCleanupInterval),
	}
}

// Get obtiene un valor del cache
func (g *GoCache) Get(ctx context.Context, key string) (string, error) {
	raw, found := g.store.Get(key)
	if !found {
		return "", ErrKeyNotFound
	}

	value, ok := raw.(string)
	if !ok {
		g.store.Delete(key)
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set almacena un valor; ttl <= 0 lo guarda sin expiración
func (g *GoCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	g.store.Set(key, value, ttl)
	return nil
}

// Delete elimina un valor del cache
func (g *GoCache) Delete(ctx context.Context, key string) error {
	g.store.Delete(key)
	return nil
}

// Ping always succeeds for the in-process store
func (g *GoCache) Ping(ctx context.Context) error {
	return nil
}

// Close drops every entry
func (g *GoCache) Close() error {
	g.store.Flush()
	return nil
}

// Size returns the number of items, expired-but-not-yet-collected included
func (g *GoCache) Size() int {
	return g.store.ItemCount()
}
