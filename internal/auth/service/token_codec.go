// Package service implements token issuance and request authentication.
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/allisson/karaoke/internal/auth/domain"
	apperrors "github.com/allisson/karaoke/internal/errors"
)

// TokenCodec produces and consumes signed identity tokens.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec creates a TokenCodec signing with the given secret. Tokens
// expire ttl after issuance. The secret must not be empty; there is no
// fallback value.
func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, fmt.Errorf("token codec: signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token codec: token ttl must be positive")
	}
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a signed token for the given subject id. The payload carries
// the subject id, the issuance timestamp, and an expiry of exactly issued-at
// plus the configured ttl.
func (c *TokenCodec) Issue(subjectID string) (string, error) {
	if subjectID == "" {
		return "", domain.ErrEmptySubject
	}

	now := c.now()
	claims := domain.TokenClaims{
		UserID: subjectID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Decode verifies the signature and expiry of a token string and returns its
// claims. Failures are classified as malformed, signature mismatch, or
// expired; the expiry check is enforced by the JWT library against the
// codec's clock.
func (c *TokenCodec) Decode(tokenString string) (*domain.TokenClaims, error) {
	claims := &domain.TokenClaims{}

	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case apperrors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case apperrors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}

	if claims.UserID == "" {
		return nil, domain.ErrTokenMalformed
	}

	return claims, nil
}
