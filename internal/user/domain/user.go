// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/errors"
)

// Role identifies the access level of a user account.
type Role string

// Supported user roles.
const (
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleArtist Role = "artist"
)

// IsValid reports whether the role is one of the supported values.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleArtist:
		return true
	}
	return false
}

// User represents a user account in the system
type User struct {
	ID              uuid.UUID
	Email           string
	Username        string
	Password        string
	ProfileImageURL string
	Role            Role
	IsPremium       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrEmailAlreadyExists indicates a user with the same email already exists.
	ErrEmailAlreadyExists = errors.Wrap(errors.ErrConflict, "email already registered")

	// ErrUsernameAlreadyExists indicates a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.Wrap(errors.ErrConflict, "username already taken")

	// ErrInvalidCredentials is returned for both unknown email and wrong password
	// so login failures do not reveal which part was wrong.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid email or password")
)
