package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateCache(t *testing.T) {
	factory := NewFactory()
	ctx := context.Background()

	tests := []struct {
		name     string
		config   Config
		wantType interface{}
		wantErr  string
	}{
		{name: "memory", config: Config{Type: CacheTypeMemory}, wantType: &MemoryCache{}},
		{name: "empty type defaults to memory", config: Config{}, wantType: &MemoryCache{}},
		{name: "gocache", config: Config{Type: CacheTypeGoCache}, wantType: &GoCache{}},
		{name: "unsupported", config: Config{Type: "memcached"}, wantErr: "unsupported cache type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := factory.CreateCache(ctx, tt.config)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, c)
		})
	}
}

func TestFactory_RedisUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := NewFactory().CreateCache(ctx, Config{
		Type:           CacheTypeRedis,
		RedisURL:       "127.0.0.1:1",
		ConnectRetries: 2,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis at 127.0.0.1:1")
	assert.Nil(t, c)
}
