// Package domain defines the core authentication domain entities and types.
package domain

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/allisson/karaoke/internal/errors"
)

// TokenClaims is the payload carried by an identity token. The subject
// identifier maps to a user record; issued-at and expiry are enforced on
// every decode.
type TokenClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Domain-specific errors for token operations.
var (
	// ErrTokenMalformed indicates the token string cannot be parsed.
	ErrTokenMalformed = errors.Wrap(errors.ErrUnauthorized, "token malformed")

	// ErrTokenSignatureInvalid indicates the token signature does not match
	// the current signing secret.
	ErrTokenSignatureInvalid = errors.Wrap(errors.ErrUnauthorized, "token signature invalid")

	// ErrTokenExpired indicates the token is past its expiry timestamp.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrEmptySubject indicates a token was requested for an empty subject id.
	ErrEmptySubject = errors.Wrap(errors.ErrInvalidInput, "subject id is required")
)
