// Package http provides HTTP handlers for account and session operations.
package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authhttp "github.com/allisson/karaoke/internal/auth/http"
	apperrors "github.com/allisson/karaoke/internal/errors"
	"github.com/allisson/karaoke/internal/httputil"
	"github.com/allisson/karaoke/internal/user/domain"
	"github.com/allisson/karaoke/internal/user/http/dto"
	"github.com/allisson/karaoke/internal/user/usecase"
)

// maxProfileImageSize caps avatar uploads at 5 MiB.
const maxProfileImageSize = 5 << 20

// ProfileImageStore persists uploaded avatar images and returns their public URL.
type ProfileImageStore interface {
	SaveProfileImage(ctx context.Context, userID string, filename string, r io.Reader) (string, error)
}

// UserHandler handles account and session HTTP requests
type UserHandler struct {
	userUseCase usecase.UseCase
	imageStore  ProfileImageStore
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUseCase usecase.UseCase, imageStore ProfileImageStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		imageStore:  imageStore,
		logger:      logger,
	}
}

// SignupHandler creates a new account.
// POST /api/auth/signup - Returns 201 Created with the user and a session token.
func (h *UserHandler) SignupHandler(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, token, err := h.userUseCase.Signup(c.Request.Context(), dto.ToSignupInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(user, token))
}

// LoginHandler verifies credentials and mints a session token.
// POST /api/auth/login - Returns 200 OK with the user and token.
// Unknown email and wrong password produce the same 401 body.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, token, err := h.userUseCase.Login(c.Request.Context(), dto.ToLoginInput(req))
	if err != nil {
		if apperrors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, httputil.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid email or password",
			})
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(user, token))
}

// ProfileHandler returns the authenticated user's account.
// GET /api/auth/profile - Requires authentication.
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	userID, err := h.authenticatedUserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// LogoutHandler ends the session.
// POST /api/auth/logout - Tokens are stateless so this is a client-side
// operation; the endpoint exists so clients have a uniform call to make.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// UploadProfileImageHandler stores a new avatar for the authenticated user.
// POST /api/auth/profile/image - Requires authentication, multipart form
// with an "image" file field.
func (h *UserHandler) UploadProfileImageHandler(c *gin.Context) {
	userID, err := h.authenticatedUserID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("image file is required: %w", err), h.logger)
		return
	}
	if fileHeader.Size > maxProfileImageSize {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("image exceeds the %d byte limit", maxProfileImageSize), h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	defer file.Close()

	imageURL, err := h.imageStore.SaveProfileImage(c.Request.Context(), userID.String(), fileHeader.Filename, file)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.UpdateProfileImage(c.Request.Context(), userID, imageURL)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// authenticatedUserID extracts and parses the subject id placed in the
// request context by the authentication middleware.
func (h *UserHandler) authenticatedUserID(c *gin.Context) (uuid.UUID, error) {
	subject, ok := authhttp.GetUserID(c.Request.Context())
	if !ok {
		return uuid.Nil, apperrors.Wrap(apperrors.ErrUnauthorized, "missing authenticated user")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, apperrors.Wrap(apperrors.ErrUnauthorized, "invalid authenticated user id")
	}
	return userID, nil
}
