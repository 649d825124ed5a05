package service

import (
	"net/http"
	"strings"

	"github.com/allisson/karaoke/internal/auth/domain"
)

// bearerPrefix is the fixed prefix of the Authorization header value on
// protected endpoints.
const bearerPrefix = "Bearer "

// TokenDecoder verifies a token string and returns its claims.
type TokenDecoder interface {
	Decode(tokenString string) (*domain.TokenClaims, error)
}

// Authenticator turns one inbound request into an authentication result.
// It is a pure function of the request's Authorization header and the
// decoder's clock; it performs no I/O.
type Authenticator struct {
	decoder TokenDecoder
}

// NewAuthenticator creates an Authenticator backed by the given decoder.
func NewAuthenticator(decoder TokenDecoder) *Authenticator {
	return &Authenticator{decoder: decoder}
}

// Authenticate reads the request's bearer credential and validates it.
// A missing or mis-formatted header and a failed decode produce distinct
// client-visible reasons; all decode failure kinds share one reason.
func (a *Authenticator) Authenticate(r *http.Request) domain.Result {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
		return domain.FailedResult(domain.ReasonMissingHeader)
	}

	tokenString := authHeader[len(bearerPrefix):]

	claims, err := a.decoder.Decode(tokenString)
	if err != nil {
		return domain.FailedResult(domain.ReasonInvalidToken)
	}

	return domain.AuthenticatedResult(claims.UserID)
}
