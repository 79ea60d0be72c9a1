package ports

import (
	"context"

	"github.com/taskvault/todo-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
// Create and Update surface domain.ErrUserExists when the unique email
// constraint is violated.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
