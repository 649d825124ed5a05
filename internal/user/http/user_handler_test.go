package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authhttp "github.com/allisson/karaoke/internal/auth/http"
	"github.com/allisson/karaoke/internal/user/domain"
	"github.com/allisson/karaoke/internal/user/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockUserUseCase is a mock implementation of usecase.UseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Signup(ctx context.Context, input usecase.SignupInput) (*domain.User, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockUserUseCase) Login(ctx context.Context, input usecase.LoginInput) (*domain.User, string, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

func (m *MockUserUseCase) GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) (*domain.User, error) {
	args := m.Called(ctx, id, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// stubImageStore records the last saved avatar and returns a fixed URL.
type stubImageStore struct {
	savedUserID   string
	savedFilename string
	url           string
}

func (s *stubImageStore) SaveProfileImage(ctx context.Context, userID, filename string, r io.Reader) (string, error) {
	s.savedUserID = userID
	s.savedFilename = filename
	_, _ = io.Copy(io.Discard, r)
	return s.url, nil
}

// authAs injects the subject id the way the authentication middleware does.
func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(authhttp.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func setupUserRouter(handler *UserHandler, userID string) *gin.Engine {
	router := gin.New()
	auth := router.Group("/api/auth")
	auth.POST("/signup", handler.SignupHandler)
	auth.POST("/login", handler.LoginHandler)
	auth.POST("/logout", handler.LogoutHandler)

	protected := auth.Group("")
	if userID != "" {
		protected.Use(authAs(userID))
	}
	protected.GET("/profile", handler.ProfileHandler)
	protected.POST("/profile/image", handler.UploadProfileImageHandler)
	return router
}

func TestSignupHandler(t *testing.T) {
	useCase := &MockUserUseCase{}
	handler := NewUserHandler(useCase, &stubImageStore{}, createTestLogger())
	router := setupUserRouter(handler, "")

	user := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Email:    "singer@example.com",
		Username: "singer",
		Role:     domain.RoleUser,
	}
	useCase.On("Signup", mock.Anything, usecase.SignupInput{
		Email:    "singer@example.com",
		Username: "singer",
		Password: "secret123",
	}).Return(user, "token-1", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"singer@example.com","username":"singer","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "token-1", body["token"])
	userBody := body["user"].(map[string]any)
	assert.Equal(t, "singer@example.com", userBody["email"])
	assert.NotContains(t, userBody, "password")
}

func TestSignupHandlerValidation(t *testing.T) {
	useCase := &MockUserUseCase{}
	handler := NewUserHandler(useCase, &stubImageStore{}, createTestLogger())
	router := setupUserRouter(handler, "")

	tests := []struct {
		name    string
		payload string
	}{
		{"short password", `{"email":"singer@example.com","username":"singer","password":"12345"}`},
		{"short username", `{"email":"singer@example.com","username":"ab","password":"secret123"}`},
		{"bad email", `{"email":"not-an-email","username":"singer","password":"secret123"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		})
	}
	useCase.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
}

func TestSignupHandlerDuplicateEmail(t *testing.T) {
	useCase := &MockUserUseCase{}
	handler := NewUserHandler(useCase, &stubImageStore{}, createTestLogger())
	router := setupUserRouter(handler, "")

	useCase.On("Signup", mock.Anything, mock.AnythingOfType("usecase.SignupInput")).
		Return(nil, "", domain.ErrEmailAlreadyExists)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"email":"singer@example.com","username":"singer","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestLoginHandler(t *testing.T) {
	useCase := &MockUserUseCase{}
	handler := NewUserHandler(useCase, &stubImageStore{}, createTestLogger())
	router := setupUserRouter(handler, "")

	user := &domain.User{ID: uuid.Must(uuid.NewV7()), Email: "singer@example.com", Username: "singer"}
	useCase.On("Login", mock.Anything, usecase.LoginInput{
		Email:    "singer@example.com",
		Password: "secret123",
	}).Return(user, "token-1", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"singer@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token-1")
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	useCase := &MockUserUseCase{}
	handler := NewUserHandler(useCase, &stubImageStore{}, createTestLogger())
	router := setupUserRouter(handler, "")

	useCase.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(nil, "", domain.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"singer@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid_credentials", body["error"])
	assert.Equal(t, "Invalid email or password", body["message"])
}

func TestProfileHandler(t *testing.T) {
	useCase := &MockUserUseCase{}
	handler := NewUserHandler(useCase, &stubImageStore{}, createTestLogger())

	userID := uuid.Must(uuid.NewV7())
	router := setupUserRouter(handler, userID.String())

	user := &domain.User{ID: userID, Email: "singer@example.com", Username: "singer", IsPremium: true}
	useCase.On("GetProfile", mock.Anything, userID).Return(user, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "singer", body["username"])
	assert.Equal(t, true, body["is_premium"])
}

func TestProfileHandlerWithoutAuthContext(t *testing.T) {
	useCase := &MockUserUseCase{}
	handler := NewUserHandler(useCase, &stubImageStore{}, createTestLogger())
	router := setupUserRouter(handler, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	useCase.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestLogoutHandler(t *testing.T) {
	handler := NewUserHandler(&MockUserUseCase{}, &stubImageStore{}, createTestLogger())
	router := setupUserRouter(handler, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out")
}

func TestUploadProfileImageHandler(t *testing.T) {
	useCase := &MockUserUseCase{}
	store := &stubImageStore{url: "https://cdn.example.com/avatar.png"}
	handler := NewUserHandler(useCase, store, createTestLogger())

	userID := uuid.Must(uuid.NewV7())
	router := setupUserRouter(handler, userID.String())

	updated := &domain.User{ID: userID, ProfileImageURL: store.url}
	useCase.On("UpdateProfileImage", mock.Anything, userID, store.url).Return(updated, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/profile/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), store.savedUserID)
	assert.Equal(t, "avatar.png", store.savedFilename)
	assert.Contains(t, w.Body.String(), store.url)
}

func TestUploadProfileImageHandlerMissingFile(t *testing.T) {
	handler := NewUserHandler(&MockUserUseCase{}, &stubImageStore{}, createTestLogger())

	userID := uuid.Must(uuid.NewV7())
	router := setupUserRouter(handler, userID.String())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/profile/image", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
