package domain

import (
	"errors"
	"time"
)

// Role gates cross-user visibility. The wire values are the ones the API
// has always spoken, so they stay in Portuguese.
type Role string

const (
	RoleAdmin Role = "administrador"
	RoleUser  Role = "usuário"
)

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidRole        = errors.New("invalid role")
)

// User models an account that owns tasks. PasswordHash never leaves the
// process; the JSON tag guarantees it even when a User is serialized whole.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"nome" bson:"nome"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"senha"`
	Role         Role      `json:"perfil" bson:"perfil"`
	CreatedAt    time.Time `json:"-" bson:"created_at"`
	UpdatedAt    time.Time `json:"-" bson:"updated_at"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
