package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/karaoke/internal/auth/domain"
)

// RequestAuthenticator validates one inbound request's credentials.
type RequestAuthenticator interface {
	Authenticate(r *http.Request) domain.Result
}

// AuthenticationMiddleware guards protected endpoints with bearer-token
// authentication.
//
// Unauthenticated requests are rejected with 401 and a body carrying the
// failure reason under an "error" field; the wrapped handler is never
// invoked. On success the subject id is attached to the request context and
// can be read with GetUserID.
//
// A panic inside the authentication step is a per-request fatal condition:
// it surfaces as 500 with the error text under a "message" field and is not
// retried.
func AuthenticationMiddleware(authenticator RequestAuthenticator, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("authentication middleware panic", slog.Any("error", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "Authentication middleware error",
					"message": fmt.Sprintf("%v", r),
				})
			}
		}()

		result := authenticator.Authenticate(c.Request)
		if !result.Authenticated {
			logger.Debug("authentication failed", slog.String("reason", result.Reason))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": result.Reason})
			return
		}

		ctx := WithUserID(c.Request.Context(), result.UserID)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful", slog.String("user_id", result.UserID))

		c.Next()
	}
}
