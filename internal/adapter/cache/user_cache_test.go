package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "bank-user-service/internal/domain/user"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, mr
}

var maxUser = &domain.User{
	ID:        1,
	Firstname: "Max",
	Lastname:  "Mustermann",
	Email:     "max@mustermann.de",
}

func TestRedisUserCache_SetAndGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisUserCache(client, 5*time.Minute, zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, maxUser))
	assert.True(t, mr.Exists("bank:user:1"))

	got, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, maxUser, got)
}

func TestRedisUserCache_Set_NilUser(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewRedisUserCache(client, 5*time.Minute, zaptest.NewLogger(t))

	err := cache.Set(context.Background(), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cache nil user")
}

func TestRedisUserCache_Get_Miss(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewRedisUserCache(client, 5*time.Minute, zaptest.NewLogger(t))

	got, err := cache.Get(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisUserCache_Get_CorruptedData(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisUserCache(client, 5*time.Minute, zaptest.NewLogger(t))

	require.NoError(t, mr.Set("bank:user:1", "not json"))

	got, err := cache.Get(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestRedisUserCache_TTLExpiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisUserCache(client, time.Minute, zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, maxUser))
	assert.Equal(t, time.Minute, mr.TTL("bank:user:1"))

	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisUserCache_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisUserCache(client, 5*time.Minute, zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, maxUser))
	require.NoError(t, cache.Delete(ctx, 1))
	assert.False(t, mr.Exists("bank:user:1"))

	// deleting a missing key is fine
	assert.NoError(t, cache.Delete(ctx, 1))
}

func TestRedisUserCache_ConnectionError(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewRedisUserCache(client, 5*time.Minute, zaptest.NewLogger(t))

	mr.Close()

	got, err := cache.Get(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, got)
}
