package ports

import (
	"context"

	"github.com/taskvault/todo-api/internal/core/domain"
)

// RegisterUserInput carries the self-registration fields.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput carries a partial user update: nil fields keep their
// prior values, a supplied password is re-hashed.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *domain.Role
}

// UserService implements account management with the access policy applied
// to every caller-scoped operation.
type UserService interface {
	Register(ctx context.Context, in RegisterUserInput) (*domain.User, error)
	List(ctx context.Context, caller *domain.User) ([]*domain.User, error)
	Get(ctx context.Context, caller *domain.User, id string) (*domain.User, error)
	Update(ctx context.Context, caller *domain.User, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, caller *domain.User, id string) error
	// EnsureAdmin creates the bootstrap administrator account when no user
	// with the given email exists yet. Called once at startup.
	EnsureAdmin(ctx context.Context, name, email, password string) error
}
