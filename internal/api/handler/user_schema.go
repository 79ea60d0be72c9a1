package handler

import (
	"github.com/taskvault/todo-api/internal/core/domain"
)

type registerUserRequest struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=5"`
}

// updateUserRequest carries a partial update: nil fields keep prior values.
type updateUserRequest struct {
	Name     *string `json:"nome"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"senha" validate:"omitempty,min=5"`
	Role     *string `json:"perfil"`
}

// userResponse is the public projection of a user. The password hash never
// appears here.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"perfil"`
}

type messageResponse struct {
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func toUserListResponse(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
