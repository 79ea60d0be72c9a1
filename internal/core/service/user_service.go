package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskvault/todo-api/internal/core/domain"
	"github.com/taskvault/todo-api/internal/core/ports"
)

// UserService implements account management. Every caller-scoped operation
// consults the domain policy before touching the repositories, so a denied
// request never reaches the store.
type UserService struct {
	users ports.UserRepository
	tasks ports.TaskRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, tasks ports.TaskRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, tasks: tasks, log: log}
}

// Register creates a regular account. Self-registration never grants the
// administrator role; only an admin can promote via Update afterwards.
func (s *UserService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// List returns every account. Restricted to administrators.
func (s *UserService) List(ctx context.Context, caller *domain.User) ([]*domain.User, error) {
	if !domain.CanListUsers(caller) {
		return nil, domain.ErrForbidden
	}
	return s.users.List(ctx)
}

// Get returns a single account. The policy check runs before the lookup so
// a non-admin probing a foreign id learns nothing about its existence.
func (s *UserService) Get(ctx context.Context, caller *domain.User, id string) (*domain.User, error) {
	if !domain.CanViewUser(caller, id) {
		return nil, domain.ErrForbidden
	}
	return s.users.FindByID(ctx, id)
}

// Update applies a partial update: nil fields keep their prior values and a
// supplied password is re-hashed. Role changes require the admin role on
// top of the usual admin-or-self rule.
func (s *UserService) Update(ctx context.Context, caller *domain.User, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if !domain.CanModifyUser(caller, id) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, domain.ErrInvalidRole
		}
		if *in.Role != user.Role && !domain.CanAssignRole(caller) {
			return nil, domain.ErrForbidden
		}
		user.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

// Delete removes an account and cascades to every task it owns. Tasks go
// first so a failure leaves no orphaned rows behind a missing user.
func (s *UserService) Delete(ctx context.Context, caller *domain.User, id string) error {
	if !domain.CanModifyUser(caller, id) {
		return domain.ErrForbidden
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.tasks.DeleteByOwner(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// EnsureAdmin seeds the bootstrap administrator account on first start.
// A concurrent replica winning the insert race is not an error.
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	if err == nil {
		s.log.Info().Str("email", email).Msg("default admin created")
	}
	return err
}
