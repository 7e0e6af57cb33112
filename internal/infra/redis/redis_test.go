package redis

import (
	"context"
	"testing"
	"time"

	"holocron-go/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientFailsWhenUnreachable(t *testing.T) {
	client, err := NewClient(&config.RedisConfig{Host: "127.0.0.1", Port: 1, PoolSize: 1})
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to ping redis")
}

func TestJSONCacheWrapsConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	cache := NewJSONCache(client)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var dest []string
	hit, err := cache.Get(ctx, "holocron:people:all", &dest)
	require.Error(t, err)
	assert.False(t, hit)
	assert.Contains(t, err.Error(), "redis get holocron:people:all")

	err = cache.Set(ctx, "holocron:people:all", []string{"Luke"}, time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis set holocron:people:all")

	err = cache.Delete(ctx, "holocron:people:all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis del")

	assert.NoError(t, cache.Delete(ctx))
}

func TestJSONCacheRejectsUnencodableValues(t *testing.T) {
	cache := NewJSONCache(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))

	err := cache.Set(context.Background(), "k", make(chan int), time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode k")
}
