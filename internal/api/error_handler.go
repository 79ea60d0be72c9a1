package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskvault/todo-api/internal/core/domain"
)

// apiError is the canonical error element. Every failure renders as a
// one-element array of these, with a stable machine-readable type tag.
type apiError struct {
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

const (
	typeAuthentication = "authentication"
	typeAuthorization  = "authorization"
	typeNotFound       = "not_found"
	typeIntegrity      = "integrity_error"
	typeUnprocessable  = "unprocessable_entity"
	typeInternal       = "internal_error"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain
// errors to their HTTP statuses and renders the [{"msg","type"}] envelope.
// Unexpected errors are logged with their real cause and surfaced as a
// generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, []apiError{body})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, apiError) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, apiError{
			Msg: "Token de acesso ausente ou inválido.", Type: typeAuthentication,
		}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, apiError{
			Msg: "Credenciais inválidas", Type: typeAuthentication,
		}
	// Role and ownership denials answer 401, not 403, so every denied
	// request reads the same to clients regardless of endpoint.
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusUnauthorized, apiError{
			Msg: "Acesso a recursos de terceiros é restrito a administradores.", Type: typeAuthorization,
		}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, apiError{
			Msg: "Usuário não encontrado.", Type: typeNotFound,
		}
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, apiError{
			Msg: "Tarefa não encontrada.", Type: typeNotFound,
		}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, apiError{
			Msg: "Já existe um usuário com este email.", Type: typeIntegrity,
		}
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, apiError{
			Msg: "Status inválido.", Type: typeUnprocessable,
		}
	case errors.Is(err, domain.ErrInvalidPriority):
		return http.StatusUnprocessableEntity, apiError{
			Msg: "Prioridade inválida.", Type: typeUnprocessable,
		}
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusUnprocessableEntity, apiError{
			Msg: "Perfil inválido.", Type: typeUnprocessable,
		}
	case errors.Is(err, domain.ErrOwnerNotFound):
		return http.StatusUnprocessableEntity, apiError{
			Msg: "Usuário não encontrado.", Type: typeUnprocessable,
		}
	}

	// Echo's own errors: bind failures, router 404/405, handler-raised
	// validation errors.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, apiError{
			Msg:  fmt.Sprintf("%v", he.Message),
			Type: typeForStatus(he.Code),
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, apiError{
		Msg: "Não foi possível processar a requisição.", Type: typeInternal,
	}
}

func typeForStatus(code int) string {
	switch code {
	case http.StatusUnauthorized:
		return typeAuthentication
	case http.StatusForbidden:
		return typeAuthorization
	case http.StatusNotFound:
		return typeNotFound
	case http.StatusConflict:
		return typeIntegrity
	case http.StatusUnprocessableEntity:
		return typeUnprocessable
	default:
		return typeInternal
	}
}
