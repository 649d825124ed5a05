// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"

	"github.com/allisson/go-pwdhash"
	"github.com/google/uuid"

	apperrors "github.com/allisson/karaoke/internal/errors"
	"github.com/allisson/karaoke/internal/user/domain"
)

// SignupInput contains the input data for account creation
type SignupInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginInput contains the input data for credential verification
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, input LoginInput) (*domain.User, string, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) (*domain.User, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) error
}

// TokenIssuer mints a signed session token for a subject id.
type TokenIssuer interface {
	Issue(subjectID string) (string, error)
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo       UserRepository
	tokenIssuer    TokenIssuer
	passwordHasher *pwdhash.PasswordHasher
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(userRepo UserRepository, tokenIssuer TokenIssuer) (UseCase, error) {
	// Interactive policy keeps login latency acceptable for web clients
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &UserUseCase{
		userRepo:       userRepo,
		tokenIssuer:    tokenIssuer,
		passwordHasher: hasher,
	}, nil
}

// Signup creates a new account and returns the user with a session token.
// Duplicate email or username surfaces as a conflict from the repository.
func (uc *UserUseCase) Signup(ctx context.Context, input SignupInput) (*domain.User, string, error) {
	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, "", apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Email:    strings.TrimSpace(strings.ToLower(input.Email)),
		Username: strings.TrimSpace(input.Username),
		Password: hashedPassword,
		Role:     domain.RoleUser,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := uc.tokenIssuer.Issue(user.ID.String())
	if err != nil {
		return nil, "", apperrors.Wrap(err, "failed to issue token")
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a session token.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (uc *UserUseCase) Login(ctx context.Context, input LoginInput) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	match, err := uc.passwordHasher.Verify([]byte(input.Password), user.Password)
	if err != nil {
		return nil, "", apperrors.Wrap(err, "failed to verify password")
	}
	if !match {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokenIssuer.Issue(user.ID.String())
	if err != nil {
		return nil, "", apperrors.Wrap(err, "failed to issue token")
	}

	return user, token, nil
}

// GetProfile retrieves the account for the given user id
func (uc *UserUseCase) GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// UpdateProfileImage stores the new profile image URL and returns the updated user
func (uc *UserUseCase) UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) (*domain.User, error) {
	if err := uc.userRepo.UpdateProfileImage(ctx, id, imageURL); err != nil {
		return nil, err
	}
	return uc.userRepo.GetByID(ctx, id)
}
