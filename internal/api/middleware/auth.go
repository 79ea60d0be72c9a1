package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/todo-api/internal/api/metrics"
	"github.com/taskvault/todo-api/internal/core/domain"
	"github.com/taskvault/todo-api/internal/core/ports"
)

// Auth is the bearer-token guard protecting every caller-scoped route.
// It verifies the token and resolves its subject against the user store, so
// a token whose account was deleted after issuance is rejected like any
// other invalid token. The resolved user is bound to this request's context
// only — concurrent requests each get their own binding.
func Auth(tokens ports.TokenManager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_scheme").Inc()
				return domain.ErrUnauthenticated
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				// A dangling subject must not leak whether the id ever
				// existed; it reads as an authentication failure.
				metrics.AuthRejectionsTotal.WithLabelValues("unknown_subject").Inc()
				return domain.ErrUnauthenticated
			}

			c.Set("current_user", user)
			return next(c)
		}
	}
}
