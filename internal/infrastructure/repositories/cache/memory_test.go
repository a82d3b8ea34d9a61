package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btc-price-client/internal/domain/interfaces"
)

// backends returns every in-process Cache implementation
func backends() map[string]func() interfaces.Cache {
	return map[string]func() interfaces.Cache{
		"memory":  NewMemoryCache,
		"gocache": NewGoCache,
	}
}

func TestInProcessBackends_Contract(t *testing.T) {
	for name, newCache := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c := newCache()

			_, err := c.Get(ctx, "absent")
			assert.ErrorIs(t, err, ErrKeyNotFound)
			assert.True(t, IsMiss(err))

			require.NoError(t, c.Set(ctx, "price:usd", `{"v":1}`, 0))
			got, err := c.Get(ctx, "price:usd")
			require.NoError(t, err)
			assert.Equal(t, `{"v":1}`, got)

			require.NoError(t, c.Set(ctx, "price:usd", `{"v":2}`, 0))
			got, err = c.Get(ctx, "price:usd")
			require.NoError(t, err)
			assert.Equal(t, `{"v":2}`, got, "set overwrites")

			require.NoError(t, c.Delete(ctx, "price:usd"))
			_, err = c.Get(ctx, "price:usd")
			assert.True(t, IsMiss(err))

			assert.NoError(t, c.Ping(ctx))
			assert.NoError(t, c.Close())
		})
	}
}

func TestInProcessBackends_TTL(t *testing.T) {
	for name, newCache := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c := newCache()

			require.NoError(t, c.Set(ctx, "short", "x", 20*time.Millisecond))
			require.NoError(t, c.Set(ctx, "forever", "y", 0))
			require.NoError(t, c.Set(ctx, "negative", "z", -time.Second))

			time.Sleep(50 * time.Millisecond)

			_, err := c.Get(ctx, "short")
			assert.True(t, IsMiss(err))

			v, err := c.Get(ctx, "forever")
			require.NoError(t, err)
			assert.Equal(t, "y", v)

			v, err = c.Get(ctx, "negative")
			require.NoError(t, err)
			assert.Equal(t, "z", v)
		})
	}
}

func TestMemoryCache_ExpiredKeyIsRemoved(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache().(*MemoryCache)

	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyExpired)
	assert.Equal(t, 0, c.Size())
}

func TestMemoryCache_SetEvictsExpired(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache().(*MemoryCache)

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("old-%d", i), "v", time.Millisecond))
	}
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, c.Set(ctx, "new", "v", 0))

	assert.Equal(t, 1, c.Size())
}

func TestInProcessBackends_ConcurrentAccess(t *testing.T) {
	for name, newCache := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			c := newCache()

			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					key := fmt.Sprintf("market:c%d", i%4)
					for j := 0; j < 50; j++ {
						_ = c.Set(ctx, key, fmt.Sprintf("%d", j), 0)
						_, _ = c.Get(ctx, key)
					}
				}(i)
			}
			wg.Wait()

			for i := 0; i < 4; i++ {
				_, err := c.Get(ctx, fmt.Sprintf("market:c%d", i))
				assert.NoError(t, err)
			}
		})
	}
}
