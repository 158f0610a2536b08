package di

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bank-user-service/cmd/api/infrastructure"
	"bank-user-service/internal/adapter/cache"
	"bank-user-service/internal/adapter/db/postgres"
	ginhandler "bank-user-service/internal/adapter/gin/handler"
	"bank-user-service/internal/adapter/gin/middleware"
	ginrouter "bank-user-service/internal/adapter/gin/router"
	"bank-user-service/internal/adapter/repository/cached"
	"bank-user-service/internal/config"
	"bank-user-service/internal/usecase/user"
	redisclient "bank-user-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	DB            *gorm.DB
	RedisClient   *redisclient.Client
	UserUC        user.Usecase
	RateLimiter   *middleware.RateLimiter
	UserHandler   *ginhandler.UserHandler
	HealthHandler *ginhandler.HealthHandler
	Router        http.Handler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(ctx context.Context, cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		_ = infrastructure.CloseDatabase(db)
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Initialize Redis client (nil when disabled)
	rdb, err := infrastructure.NewRedisClient(ctx, cfg, l)
	if err != nil {
		_ = infrastructure.CloseDatabase(db)
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Initialize repository, cached when Redis is available
	var repo user.Repository = postgres.NewUserRepoPG(db, l)
	var rateLimiter *middleware.RateLimiter
	if rdb != nil {
		userCache := cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		repo = cached.NewCachedUserRepository(repo, userCache, l)

		rateLimiter = middleware.NewRateLimiter(
			rdb.Client,
			middleware.RateLimiterConfig{
				RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
				BurstCapacity:     cfg.RateLimit.BurstCapacity,
				Enabled:           cfg.RateLimit.Enabled,
			},
			l,
		)
	}

	// Initialize use case
	userUC := user.New(repo, l)

	// Initialize handlers and router
	userHandler := ginhandler.NewUserHandler(userUC, l)
	healthHandler := ginhandler.NewHealthHandler(cfg.Logger.ServiceName, sqlDB, l)
	router := ginrouter.SetupRouter(userHandler, healthHandler, rateLimiter, l)

	return &Container{
		Config:        cfg,
		Logger:        l,
		DB:            db,
		RedisClient:   rdb,
		UserUC:        userUC,
		RateLimiter:   rateLimiter,
		UserHandler:   userHandler,
		HealthHandler: healthHandler,
		Router:        router,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
