package ports

import (
	"context"

	"github.com/taskvault/todo-api/internal/core/domain"
)

// TaskRepository defines the persistence interface for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	ListAll(ctx context.Context) ([]*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	// DeleteByOwner removes every task owned by ownerID. Used by the user
	// service to cascade account deletion.
	DeleteByOwner(ctx context.Context, ownerID string) error
}
