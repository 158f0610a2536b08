package infrastructure

import (
	"context"
	"net"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"bank-user-service/internal/config"
)

func TestNewRedisClient_Disabled(t *testing.T) {
	rdb, err := NewRedisClient(context.Background(), &config.Config{}, zaptest.NewLogger(t))

	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewRedisClient_Enabled(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	cfg := &config.Config{Redis: config.RedisConfig{Enabled: true, Host: host, Port: port, PoolSize: 2}}
	rdb, err := NewRedisClient(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	assert.NoError(t, rdb.Ping(context.Background()).Err())
}
