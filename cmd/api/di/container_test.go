package di

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"bank-user-service/internal/adapter/cache"
	"bank-user-service/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		DB: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			SQLitePath:   filepath.Join(t.TempDir(), "users.db"),
			AutoMigrate:  true,
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		App:    config.AppConfig{Env: "test", HTTPPort: "0", ShutdownTimeoutSeconds: 1},
		Logger: config.LoggerConfig{Level: "info", ServiceName: "bank-user-service"},
	}
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.DB.Driver = ""

	_, err := NewContainer(context.Background(), cfg, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "config validation failed")
}

func TestNewContainer_WithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, err := NewContainer(context.Background(), testConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Nil(t, c.RedisClient)
	assert.Nil(t, c.RateLimiter)

	w := httptest.NewRecorder()
	c.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewContainer_WithRedisCachesReads(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Redis = config.RedisConfig{Enabled: true, Host: host, Port: port, PoolSize: 2, CacheTTL: 60}

	c, err := NewContainer(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	require.NotNil(t, c.RateLimiter)

	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"firstname":"Max","lastname":"Mustermann","email":"max@mustermann.de"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	c.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.True(t, mr.Exists(cache.Key(1)))
}
