package user

import "context"

// Usecase defines the interface for user business logic operations.
type Usecase interface {
	GetAllUsers(ctx context.Context) ([]UserResponse, error)
	GetUserByID(ctx context.Context, id int64) (*UserResponse, error)
	CreateNewUser(ctx context.Context, in UserRequest) (*UserResponse, error)
	UpdateUser(ctx context.Context, id int64, in UserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
}
