package user

import domain "bank-user-service/internal/domain/user"

// UserRequest is the payload accepted on create and update. It carries no id.
// Binding tags are evaluated by gin before the usecase is called.
type UserRequest struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,client_email"`
}

// UserResponse is the representation returned for every read and write.
type UserResponse struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// toEntity maps a request onto a new, not yet persisted user.
func toEntity(in UserRequest) *domain.User {
	return &domain.User{
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Email:     in.Email,
	}
}

// toResponse maps a persisted user onto its response shape.
func toResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Email:     u.Email,
	}
}
