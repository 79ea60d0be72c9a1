package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/taskvault/todo-api/internal/core/domain"
)

// currentUser extracts the identity bound by the Auth middleware. A nil
// value means the route was wired without the guard — treat it exactly like
// a missing token rather than panicking deep in a handler.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("current_user").(*domain.User)
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
