package ports

import (
	"context"

	"github.com/taskvault/todo-api/internal/core/domain"
)

// TaskInput carries the writable task fields. Status and Priority arrive as
// raw strings and are checked against the closed enums by the service.
// OwnerID is only honored for administrators; everyone else creates and
// keeps tasks under their own id.
type TaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	OwnerID     string
}

// TaskService implements task management with the access policy applied to
// every operation.
type TaskService interface {
	// List returns all tasks ordered by owner then priority rank for
	// administrators, and the caller's own tasks ordered by priority rank
	// for everyone else.
	List(ctx context.Context, caller *domain.User) ([]*domain.Task, error)
	Get(ctx context.Context, caller *domain.User, id string) (*domain.Task, error)
	Create(ctx context.Context, caller *domain.User, in TaskInput) (*domain.Task, error)
	Update(ctx context.Context, caller *domain.User, id string, in TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, caller *domain.User, id string) error
}
