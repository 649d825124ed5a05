package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/karaoke/internal/auth/domain"
	authService "github.com/allisson/karaoke/internal/auth/service"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// staticAuthenticator returns a fixed result for every request.
type staticAuthenticator struct {
	result domain.Result
}

func (s *staticAuthenticator) Authenticate(r *http.Request) domain.Result {
	return s.result
}

// panickingAuthenticator simulates an internal defect in the verification step.
type panickingAuthenticator struct{}

func (p *panickingAuthenticator) Authenticate(r *http.Request) domain.Result {
	panic("codec misconfigured")
}

func setupRouter(authenticator RequestAuthenticator, handlerCalls *int) *gin.Engine {
	router := gin.New()
	router.GET("/protected",
		AuthenticationMiddleware(authenticator, createTestLogger()),
		func(c *gin.Context) {
			*handlerCalls++
			userID, ok := GetUserID(c.Request.Context())
			c.JSON(http.StatusOK, gin.H{"user_id": userID, "found": ok})
		},
	)
	return router
}

func TestAuthenticationMiddlewareAdmitsValidRequest(t *testing.T) {
	var handlerCalls int
	router := setupRouter(&staticAuthenticator{result: domain.AuthenticatedResult("u1")}, &handlerCalls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, handlerCalls)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u1", body["user_id"])
	assert.Equal(t, true, body["found"])
}

func TestAuthenticationMiddlewareRejectsWithoutInvokingHandler(t *testing.T) {
	var handlerCalls int
	router := setupRouter(
		&staticAuthenticator{result: domain.FailedResult(domain.ReasonMissingHeader)},
		&handlerCalls,
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, handlerCalls)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Missing or invalid authorization header", body["error"])
}

func TestAuthenticationMiddlewareInternalError(t *testing.T) {
	var handlerCalls int
	router := setupRouter(&panickingAuthenticator{}, &handlerCalls)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, handlerCalls)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "codec misconfigured")
}

func TestAuthenticationMiddlewareEndToEnd(t *testing.T) {
	codec, err := authService.NewTokenCodec("middleware-test-secret", 24*time.Hour)
	require.NoError(t, err)
	authenticator := authService.NewAuthenticator(codec)

	var handlerCalls int
	router := setupRouter(authenticator, &handlerCalls)

	token, err := codec.Issue("u42")
	require.NoError(t, err)

	t.Run("valid token admitted", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "u42")
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired token")
	})
}

func TestGetUserIDWithoutValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	userID, ok := GetUserID(req.Context())
	assert.False(t, ok)
	assert.Empty(t, userID)
}
