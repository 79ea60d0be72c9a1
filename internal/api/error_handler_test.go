package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskvault/todo-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, []apiError) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body []apiError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not a JSON array: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, body
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		code     int
		wantType string
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, "authentication"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "authentication"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "authentication"},
		{"forbidden", domain.ErrForbidden, http.StatusUnauthorized, "authorization"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "not_found"},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound, "not_found"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "integrity_error"},
		{"invalid status", domain.ErrInvalidStatus, http.StatusUnprocessableEntity, "unprocessable_entity"},
		{"invalid priority", domain.ErrInvalidPriority, http.StatusUnprocessableEntity, "unprocessable_entity"},
		{"invalid role", domain.ErrInvalidRole, http.StatusUnprocessableEntity, "unprocessable_entity"},
		{"owner not found", domain.ErrOwnerNotFound, http.StatusUnprocessableEntity, "unprocessable_entity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := render(t, tc.err)
			if code != tc.code {
				t.Errorf("status %d, want %d", code, tc.code)
			}
			if len(body) != 1 {
				t.Fatalf("expected one-element envelope, got %d elements", len(body))
			}
			if body[0].Type != tc.wantType {
				t.Errorf("type %q, want %q", body[0].Type, tc.wantType)
			}
			if body[0].Msg == "" {
				t.Error("msg must not be empty")
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	code, body := render(t, errors.Join(errors.New("context"), domain.ErrTaskNotFound))
	if code != http.StatusNotFound {
		t.Errorf("status %d, want 404", code)
	}
	if body[0].Type != "not_found" {
		t.Errorf("type %q, want not_found", body[0].Type)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusBadRequest, "corpo inválido"))
	if code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", code)
	}
	if body[0].Msg != "corpo inválido" {
		t.Errorf("msg %q, want passthrough message", body[0].Msg)
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	code, body := render(t, errors.New("database exploded"))
	if code != http.StatusInternalServerError {
		t.Errorf("status %d, want 500", code)
	}
	if body[0].Type != "internal_error" {
		t.Errorf("type %q, want internal_error", body[0].Type)
	}
	// The real cause stays in the logs.
	if body[0].Msg == "database exploded" {
		t.Error("internal details must not leak to the client")
	}
}
