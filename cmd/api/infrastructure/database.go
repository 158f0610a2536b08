package infrastructure

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bank-user-service/internal/adapter/db/postgres"
	"bank-user-service/internal/config"
	"bank-user-service/pkg/logger"
)

// NewDatabase creates a new database connection with GORM configuration
func NewDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	// Configure GORM logger
	gormLogger := logger.NewGormLogger(l, cfg.Logger.SlowQuerySeconds, cfg.Logger.Level)

	dialector, err := openDialector(&cfg.DB)
	if err != nil {
		return nil, err
	}

	// Open database connection
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	pool := newPoolSettings(&cfg.DB)
	sqlDB.SetMaxOpenConns(pool.maxOpen)
	sqlDB.SetMaxIdleConns(pool.maxIdle)
	sqlDB.SetConnMaxLifetime(pool.maxLifetime)
	sqlDB.SetConnMaxIdleTime(pool.maxIdleTime)

	if cfg.DB.AutoMigrate {
		if err := postgres.AutoMigrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		l.Info("database schema migrated")
	}

	l.Info("database connected successfully",
		zap.String("driver", cfg.DB.Driver),
		zap.Int("max_open_conns", pool.maxOpen),
		zap.Int("max_idle_conns", pool.maxIdle),
		zap.Duration("conn_max_lifetime", pool.maxLifetime),
		zap.Duration("conn_max_idle_time", pool.maxIdleTime),
	)

	return db, nil
}

type poolSettings struct {
	maxOpen     int
	maxIdle     int
	maxLifetime time.Duration
	maxIdleTime time.Duration
}

// newPoolSettings derives the connection pool from config. SQLite always
// gets one connection that is never closed by the pool: an in-memory
// database lives only as long as its connection.
func newPoolSettings(cfg *config.DatabaseConfig) poolSettings {
	if cfg.Driver == config.DriverSQLite {
		return poolSettings{maxOpen: 1, maxIdle: 1}
	}
	return poolSettings{
		maxOpen:     cfg.MaxOpenConns,
		maxIdle:     cfg.MaxIdleConns,
		maxLifetime: time.Duration(cfg.ConnMaxLifetime) * time.Second,
		maxIdleTime: time.Duration(cfg.ConnMaxIdleTime) * time.Second,
	}
}

func openDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return pgdriver.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// CloseDatabase closes the database connection
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
