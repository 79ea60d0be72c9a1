package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskvault/todo-api/internal/core/domain"
	"github.com/taskvault/todo-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub services
// ---------------------------------------------------------------------------

type stubAuthService struct {
	token string
	user  *domain.User
	err   error

	gotEmail    string
	gotPassword string
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	s.gotEmail = email
	s.gotPassword = password
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

type stubUserService struct {
	user  *domain.User
	users []*domain.User
	err   error

	gotRegister ports.RegisterUserInput
	gotUpdate   ports.UpdateUserInput
	gotID       string
	deleted     []string
}

func (s *stubUserService) Register(_ context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	s.gotRegister = in
	return s.user, s.err
}

func (s *stubUserService) List(context.Context, *domain.User) ([]*domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) Get(_ context.Context, _ *domain.User, id string) (*domain.User, error) {
	s.gotID = id
	return s.user, s.err
}

func (s *stubUserService) Update(_ context.Context, _ *domain.User, id string, in ports.UpdateUserInput) (*domain.User, error) {
	s.gotID = id
	s.gotUpdate = in
	return s.user, s.err
}

func (s *stubUserService) Delete(_ context.Context, _ *domain.User, id string) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func (s *stubUserService) EnsureAdmin(context.Context, string, string, string) error {
	return s.err
}

type stubTaskService struct {
	task  *domain.Task
	tasks []*domain.Task
	err   error

	gotInput ports.TaskInput
	gotID    string
	deleted  []string
}

func (s *stubTaskService) List(context.Context, *domain.User) ([]*domain.Task, error) {
	return s.tasks, s.err
}

func (s *stubTaskService) Get(_ context.Context, _ *domain.User, id string) (*domain.Task, error) {
	s.gotID = id
	return s.task, s.err
}

func (s *stubTaskService) Create(_ context.Context, _ *domain.User, in ports.TaskInput) (*domain.Task, error) {
	s.gotInput = in
	return s.task, s.err
}

func (s *stubTaskService) Update(_ context.Context, _ *domain.User, id string, in ports.TaskInput) (*domain.Task, error) {
	s.gotID = id
	s.gotInput = in
	return s.task, s.err
}

func (s *stubTaskService) Delete(_ context.Context, _ *domain.User, id string) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

// ---------------------------------------------------------------------------
// Request helpers
// ---------------------------------------------------------------------------

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asCaller(c echo.Context, u *domain.User) {
	c.Set("current_user", u)
}

func regularCaller() *domain.User {
	return &domain.User{ID: "u1", Name: "Alice", Email: "alice@email.com", Role: domain.RoleUser}
}
