package infrastructure

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"bank-user-service/internal/adapter/db/postgres"
	"bank-user-service/internal/config"
	"bank-user-service/internal/domain/user"
)

func sqliteConfig(t *testing.T) *config.Config {
	return &config.Config{
		DB: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			SQLitePath:   filepath.Join(t.TempDir(), "users.db"),
			AutoMigrate:  true,
			MaxOpenConns: 10,
			MaxIdleConns: 1,
		},
		Logger: config.LoggerConfig{Level: "info", SlowQuerySeconds: 0.2},
	}
}

func TestNewDatabase_SQLiteMigrates(t *testing.T) {
	db, err := NewDatabase(sqliteConfig(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDatabase(db) })

	assert.True(t, db.Migrator().HasTable("users"))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestNewDatabase_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DB.Driver = "oracle"

	_, err := NewDatabase(cfg, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestCloseDatabase_Nil(t *testing.T) {
	assert.NoError(t, CloseDatabase(nil))
}

func TestNewPoolSettings(t *testing.T) {
	base := config.DatabaseConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 300,
		ConnMaxIdleTime: 60,
	}

	t.Run("postgres follows config", func(t *testing.T) {
		cfg := base
		cfg.Driver = config.DriverPostgres

		assert.Equal(t, poolSettings{
			maxOpen:     25,
			maxIdle:     5,
			maxLifetime: 300 * time.Second,
			maxIdleTime: time.Minute,
		}, newPoolSettings(&cfg))
	})

	t.Run("sqlite keeps one connection forever", func(t *testing.T) {
		cfg := base
		cfg.Driver = config.DriverSQLite

		assert.Equal(t, poolSettings{maxOpen: 1, maxIdle: 1}, newPoolSettings(&cfg))
	})
}

func TestNewDatabase_SQLiteInMemorySurvivesPoolTimeouts(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.DB.SQLitePath = ":memory:"
	cfg.DB.MaxIdleConns = 0
	cfg.DB.ConnMaxLifetime = 1
	cfg.DB.ConnMaxIdleTime = 1

	log := zaptest.NewLogger(t)
	db, err := NewDatabase(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDatabase(db) })

	repo := postgres.NewUserRepoPG(db, log)
	ctx := context.Background()
	saved, err := repo.Save(ctx, &user.User{Firstname: "Max", Lastname: "Mustermann", Email: "max@mustermann.de"})
	require.NoError(t, err)

	time.Sleep(1500 * time.Millisecond)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "max@mustermann.de", found.Email)
}
