package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bank-user-service/internal/domain/user"
	"bank-user-service/pkg/logger"
)

// UserRepoPG implements the user Repository interface using GORM.
// It runs against PostgreSQL in production and SQLite in tests.
type UserRepoPG struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
// Email has no unique constraint; uniqueness is a service rule.
type UserSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Firstname string `gorm:"not null"`
	Lastname  string `gorm:"not null"`
	Email     string `gorm:"not null;index"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// AutoMigrate creates or updates the users table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserSchema{})
}

func toSchema(u *user.User) UserSchema {
	return UserSchema{
		ID:        u.ID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
	}
}

func (m UserSchema) toDomain() *user.User {
	return &user.User{
		ID:        m.ID,
		Firstname: m.Firstname,
		Lastname:  m.Lastname,
		Email:     m.Email,
	}
}

// FindAll retrieves every user ordered by id.
func (r *UserRepoPG) FindAll(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		logger.WithContext(ctx, r.log).Error("failed to list users from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]user.User, len(models))
	for i, model := range models {
		users[i] = *model.toDomain()
	}

	return users, nil
}

// FindByID retrieves a user by id. It returns nil, nil when no row matches.
func (r *UserRepoPG) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithContext(ctx, r.log).Debug("user not found", zap.Int64("id", id))
			return nil, nil
		}
		logger.WithContext(ctx, r.log).Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.toDomain(), nil
}

// FindByEmail retrieves a user by email address. It returns nil, nil when no row matches.
func (r *UserRepoPG) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithContext(ctx, r.log).Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		logger.WithContext(ctx, r.log).Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return model.toDomain(), nil
}

// Save inserts the user when it has no id and overwrites the stored row otherwise.
func (r *UserRepoPG) Save(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := toSchema(u)
	db := r.db.WithContext(ctx)

	if model.ID == 0 {
		if err := db.Create(&model).Error; err != nil {
			logger.WithContext(ctx, r.log).Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		logger.WithContext(ctx, r.log).Info("user created in db", zap.Int64("id", model.ID))
		return model.toDomain(), nil
	}

	if err := db.Save(&model).Error; err != nil {
		logger.WithContext(ctx, r.log).Error("failed to update user in db", zap.Error(err), zap.Int64("id", u.ID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logger.WithContext(ctx, r.log).Info("user updated in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// DeleteByID removes a user by id. Missing rows are not an error.
func (r *UserRepoPG) DeleteByID(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&UserSchema{}, id)
	if res.Error != nil {
		logger.WithContext(ctx, r.log).Error("failed to delete user in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}

	logger.WithContext(ctx, r.log).Info("user deleted in db", zap.Int64("id", id), zap.Int64("rows", res.RowsAffected))
	return nil
}
