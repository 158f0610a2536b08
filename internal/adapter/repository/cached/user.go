package cached

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"bank-user-service/internal/adapter/cache"
	domain "bank-user-service/internal/domain/user"
	"bank-user-service/internal/usecase/user"
)

// CachedUserRepository implements user.Repository with caching support.
// It wraps a persistent repository (DB) and a cache implementation.
// Cache failures never fail a request; the DB stays the source of truth.
type CachedUserRepository struct {
	dbRepo user.Repository
	cache  cache.UserCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedUserRepository creates a new instance of CachedUserRepository.
func NewCachedUserRepository(dbRepo user.Repository, c cache.UserCache, log *zap.Logger) *CachedUserRepository {
	return &CachedUserRepository{
		dbRepo: dbRepo,
		cache:  c,
		log:    log,
	}
}

var _ user.Repository = (*CachedUserRepository)(nil)

// FindAll delegates to the DB repository.
func (r *CachedUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	return r.dbRepo.FindAll(ctx)
}

// loadTimeout bounds a shared database load, which no longer follows the
// cancellation of the caller that started it.
const loadTimeout = 5 * time.Second

// FindByID retrieves a user by ID using Cache-Aside pattern.
//
// Concurrent misses share one database load. Each caller still returns as
// soon as its own context is done. A load that read the row before a
// concurrent Save can repopulate the cache with the old row after that Save
// invalidated it; the entry is then stale until it expires.
func (r *CachedUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if r.cache != nil {
		cachedUser, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.Int64("id", id), zap.Error(err))
		} else if cachedUser != nil {
			return cachedUser, nil
		}
	}

	// Cache miss or cache disabled - use single-flight to prevent stampede
	ch := r.group.DoChan(flightKey(id), func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		u, err := r.dbRepo.FindByID(loadCtx, id)
		if err != nil {
			return nil, err
		}
		// absent users are not cached
		if u == nil {
			return nil, nil
		}

		if r.cache != nil {
			if err := r.cache.Set(loadCtx, u); err != nil {
				r.log.Warn("failed to cache user", zap.Int64("id", id), zap.Error(err))
			}
		}

		return u, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Val == nil {
		return nil, nil
	}

	// copy so callers mutating the result do not affect other waiters
	u := *res.Val.(*domain.User)
	return &u, nil
}

func flightKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// FindByEmail delegates to the DB repository.
func (r *CachedUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.dbRepo.FindByEmail(ctx, email)
}

// Save persists the user in DB and invalidates its cache entry.
func (r *CachedUserRepository) Save(ctx context.Context, u *domain.User) (*domain.User, error) {
	saved, err := r.dbRepo.Save(ctx, u)
	if err != nil {
		return nil, err
	}

	r.invalidate(ctx, saved.ID, "save")
	return saved, nil
}

// DeleteByID deletes the user from DB and invalidates the cache.
func (r *CachedUserRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.dbRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	r.invalidate(ctx, id, "delete")
	return nil
}

// invalidate drops the cache entry and detaches any in-flight load, so that
// later reads go back to the database.
func (r *CachedUserRepository) invalidate(ctx context.Context, id int64, op string) {
	r.group.Forget(flightKey(id))
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, id); err != nil {
		r.log.Warn("failed to invalidate cache", zap.String("op", op), zap.Int64("id", id), zap.Error(err))
	}
}
