package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain "bank-user-service/internal/domain/user"
	apperrors "bank-user-service/pkg/errors"
	"bank-user-service/pkg/logger"
)

const resourceUser = "user"

// Titles rendered in error responses for the user domain errors.
const (
	titleUserNotFound      = "User Not Found Exception"
	titleUserAlreadyExists = "User Already Exist"
)

// Repository defines the interface for user data access operations.
// Find methods return (nil, nil) when no record matches.
type Repository interface {
	FindAll(ctx context.Context) ([]domain.User, error)                 // All users in insertion order
	FindByID(ctx context.Context, id int64) (*domain.User, error)       // Retrieve user by ID
	FindByEmail(ctx context.Context, email string) (*domain.User, error) // Retrieve user by email
	Save(ctx context.Context, u *domain.User) (*domain.User, error)     // Insert when ID is zero, overwrite otherwise
	DeleteByID(ctx context.Context, id int64) error                     // Delete user by ID, no error if absent
}

// UserService implements the business logic for bank user management.
// It sits between the HTTP handlers and the repository.
type UserService struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

// New creates a new UserService with the provided repository and logger.
func New(r Repository, log *zap.Logger) *UserService {
	return &UserService{repo: r, log: log}
}

var _ Usecase = (*UserService)(nil)

func userNotFound(id int64) error {
	return apperrors.NewNotFoundError(resourceUser, fmt.Sprintf("User with id %d not found.", id)).
		WithTitle(titleUserNotFound)
}

func userAlreadyExists(email string) error {
	return apperrors.NewAlreadyExistsError(resourceUser, fmt.Sprintf("User with email %s already exist.", email)).
		WithTitle(titleUserAlreadyExists)
}

// GetAllUsers returns every stored user. The result is never nil.
func (s *UserService) GetAllUsers(ctx context.Context) ([]UserResponse, error) {
	log := logger.WithContext(ctx, s.log)

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("failed to list users", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to list users", err)
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toResponse(&users[i]))
	}

	log.Debug("listed users", zap.Int("count", len(out)))
	return out, nil
}

// GetUserByID returns a single user or a not found error.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*UserResponse, error) {
	log := logger.WithContext(ctx, s.log)

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("failed to get user", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	if u == nil {
		log.Warn("user not found", zap.Int64("id", id))
		return nil, userNotFound(id)
	}

	return toResponse(u), nil
}

// CreateNewUser creates a user after checking that the email is not taken.
//
// The check and the insert are not atomic: two concurrent requests with the
// same email can both pass the lookup.
func (s *UserService) CreateNewUser(ctx context.Context, in UserRequest) (*UserResponse, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("creating user", zap.String("email", in.Email))

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		log.Warn("email already exists", zap.String("email", in.Email), zap.Int64("existing_id", existing.ID))
		return nil, userAlreadyExists(in.Email)
	}

	saved, err := s.repo.Save(ctx, toEntity(in))
	if err != nil {
		log.Error("failed to create user", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to create user", err)
	}

	log.Info("user created", zap.Int64("id", saved.ID))
	return toResponse(saved), nil
}

// UpdateUser overwrites firstname, lastname and email of an existing user.
// Email uniqueness is not re-checked here.
func (s *UserService) UpdateUser(ctx context.Context, id int64, in UserRequest) (*UserResponse, error) {
	log := logger.WithContext(ctx, s.log)
	log.Info("updating user", zap.Int64("id", id), zap.String("email", in.Email))

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error("failed to get user for update", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to get user", err)
	}
	if u == nil {
		log.Warn("user not found", zap.Int64("id", id))
		return nil, userNotFound(id)
	}

	u.Firstname = in.Firstname
	u.Lastname = in.Lastname
	u.Email = in.Email

	saved, err := s.repo.Save(ctx, u)
	if err != nil {
		log.Error("failed to update user", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to update user", err)
	}

	return toResponse(saved), nil
}

// DeleteUser removes a user. Deleting an unknown id is not an error.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	log := logger.WithContext(ctx, s.log)
	log.Info("deleting user", zap.Int64("id", id))

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.Error("failed to delete user", zap.Int64("id", id), zap.Error(err))
		return apperrors.NewInternalError("failed to delete user", err)
	}
	return nil
}
