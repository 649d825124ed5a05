// Package http provides the HTTP middleware guarding protected endpoints.
package http

import (
	"context"
)

// userIDKey is a context key type for storing the authenticated subject id.
type userIDKey struct{}

// WithUserID stores the authenticated subject id in the context.
// Called by the authentication middleware after a successful token check.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID retrieves the authenticated subject id from the context.
// Returns ("", false) if no id was set. Downstream handlers use this instead
// of re-parsing the Authorization header.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok
}
