package ports

import (
	"context"

	"github.com/taskvault/todo-api/internal/core/domain"
)

// AuthService authenticates credentials and mints access tokens.
type AuthService interface {
	// Login returns a signed token and the authenticated user. Unknown
	// email and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
