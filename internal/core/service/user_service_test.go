package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskvault/todo-api/internal/core/domain"
	"github.com/taskvault/todo-api/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func newUserService() (*UserService, *stubUserRepo, *stubTaskRepo) {
	users := newStubUserRepo()
	tasks := newStubTaskRepo()
	return NewUserService(users, tasks, discardLogger), users, tasks
}

func seedUser(repo *stubUserRepo, name, email string, role domain.Role) *domain.User {
	id := repo.seed(domain.User{Name: name, Email: email, PasswordHash: "x", Role: role})
	u := repo.byID[id]
	clone := *u
	return &clone
}

func TestUserService_Register_DefaultsToRegularRole(t *testing.T) {
	svc, users, _ := newUserService()

	created, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Name: "Joe Doe", Email: "joedoe@email.com", Password: "123456",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Role != domain.RoleUser {
		t.Errorf("expected role %q, got %q", domain.RoleUser, created.Role)
	}

	stored := users.byID[created.ID]
	if stored.PasswordHash == "123456" {
		t.Error("password must not be stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("123456")) != nil {
		t.Error("stored hash must match the original password")
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newUserService()

	in := ports.RegisterUserInput{Name: "Joe", Email: "joe@email.com", Password: "123456"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_List_AdminOnly(t *testing.T) {
	svc, users, _ := newUserService()
	adm := seedUser(users, "Admin", "admin@email.com", domain.RoleAdmin)
	reg := seedUser(users, "Reg", "reg@email.com", domain.RoleUser)

	all, err := svc.List(context.Background(), adm)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 users, got %d", len(all))
	}

	if _, err := svc.List(context.Background(), reg); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Get_SelfAndAdmin(t *testing.T) {
	svc, users, _ := newUserService()
	adm := seedUser(users, "Admin", "admin@email.com", domain.RoleAdmin)
	reg := seedUser(users, "Reg", "reg@email.com", domain.RoleUser)

	if _, err := svc.Get(context.Background(), reg, reg.ID); err != nil {
		t.Errorf("self get: %v", err)
	}
	if _, err := svc.Get(context.Background(), adm, reg.ID); err != nil {
		t.Errorf("admin get: %v", err)
	}
	if _, err := svc.Get(context.Background(), reg, adm.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for foreign profile, got %v", err)
	}
	// The policy runs first: probing a nonexistent foreign id must not
	// reveal its absence.
	if _, err := svc.Get(context.Background(), reg, "u999"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden before lookup, got %v", err)
	}
	if _, err := svc.Get(context.Background(), adm, "u999"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for admin, got %v", err)
	}
}

func TestUserService_Update_PartialFields(t *testing.T) {
	svc, users, _ := newUserService()
	reg := seedUser(users, "Reg", "reg@email.com", domain.RoleUser)

	updated, err := svc.Update(context.Background(), reg, reg.ID, ports.UpdateUserInput{
		Name: strPtr("Renamed"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.Email != "reg@email.com" {
		t.Errorf("omitted email must retain prior value, got %q", updated.Email)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	svc, users, _ := newUserService()
	reg := seedUser(users, "Reg", "reg@email.com", domain.RoleUser)

	if _, err := svc.Update(context.Background(), reg, reg.ID, ports.UpdateUserInput{
		Password: strPtr("novasenha"),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stored := users.byID[reg.ID]
	if stored.PasswordHash == "novasenha" {
		t.Error("password must not be stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("novasenha")) != nil {
		t.Error("stored hash must match the new password")
	}
}

func TestUserService_Update_RoleChangeRequiresAdmin(t *testing.T) {
	svc, users, _ := newUserService()
	adm := seedUser(users, "Admin", "admin@email.com", domain.RoleAdmin)
	reg := seedUser(users, "Reg", "reg@email.com", domain.RoleUser)

	promote := domain.RoleAdmin
	if _, err := svc.Update(context.Background(), reg, reg.ID, ports.UpdateUserInput{
		Role: &promote,
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("self-promotion must be forbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), adm, reg.ID, ports.UpdateUserInput{
		Role: &promote,
	})
	if err != nil {
		t.Fatalf("admin promotion: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Errorf("expected promoted role, got %q", updated.Role)
	}
}

func TestUserService_Update_InvalidRole(t *testing.T) {
	svc, users, _ := newUserService()
	adm := seedUser(users, "Admin", "admin@email.com", domain.RoleAdmin)

	bogus := domain.Role("root")
	if _, err := svc.Update(context.Background(), adm, adm.ID, ports.UpdateUserInput{
		Role: &bogus,
	}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Update_ForbiddenForOthers(t *testing.T) {
	svc, users, _ := newUserService()
	reg := seedUser(users, "Reg", "reg@email.com", domain.RoleUser)
	other := seedUser(users, "Other", "other@email.com", domain.RoleUser)

	if _, err := svc.Update(context.Background(), reg, other.ID, ports.UpdateUserInput{
		Name: strPtr("hijack"),
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Delete_CascadesToTasks(t *testing.T) {
	svc, users, tasks := newUserService()
	reg := seedUser(users, "Reg", "reg@email.com", domain.RoleUser)
	other := seedUser(users, "Other", "other@email.com", domain.RoleUser)

	tasks.Create(context.Background(), &domain.Task{Title: "mine", OwnerID: reg.ID})
	tasks.Create(context.Background(), &domain.Task{Title: "mine too", OwnerID: reg.ID})
	kept, _ := tasks.Create(context.Background(), &domain.Task{Title: "theirs", OwnerID: other.ID})

	if err := svc.Delete(context.Background(), reg, reg.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := users.byID[reg.ID]; ok {
		t.Error("user row must be gone")
	}
	if len(tasks.deletedOwners) != 1 || tasks.deletedOwners[0] != reg.ID {
		t.Errorf("expected cascade for %s, got %v", reg.ID, tasks.deletedOwners)
	}
	if len(tasks.byID) != 1 {
		t.Errorf("expected only the foreign task to remain, got %d", len(tasks.byID))
	}
	if _, ok := tasks.byID[kept.ID]; !ok {
		t.Error("foreign task must survive the cascade")
	}
}

func TestUserService_Delete_ForbiddenAndMissing(t *testing.T) {
	svc, users, _ := newUserService()
	adm := seedUser(users, "Admin", "admin@email.com", domain.RoleAdmin)
	reg := seedUser(users, "Reg", "reg@email.com", domain.RoleUser)
	other := seedUser(users, "Other", "other@email.com", domain.RoleUser)

	if err := svc.Delete(context.Background(), reg, other.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), adm, "u999"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_EnsureAdmin(t *testing.T) {
	svc, users, _ := newUserService()

	if err := svc.EnsureAdmin(context.Background(), "Administrador Padrão", "admin@email.com", "admin1234"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}

	admin, err := users.FindByEmail(context.Background(), "admin@email.com")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Errorf("expected admin role, got %q", admin.Role)
	}

	// Second call is a no-op.
	if err := svc.EnsureAdmin(context.Background(), "Administrador Padrão", "admin@email.com", "admin1234"); err != nil {
		t.Fatalf("second ensure admin: %v", err)
	}
	if len(users.byID) != 1 {
		t.Errorf("expected exactly one account, got %d", len(users.byID))
	}
}
