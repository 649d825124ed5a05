package usecase

import (
	"context"
	"testing"

	"github.com/allisson/go-pwdhash"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/karaoke/internal/errors"
	"github.com/allisson/karaoke/internal/user/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(subjectID string) (string, error) {
	args := m.Called(subjectID)
	return args.String(0), args.Error(1)
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()

	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	require.NoError(t, err)
	hashed, err := hasher.Hash([]byte(plain))
	require.NoError(t, err)
	return hashed
}

func TestNewUserUseCase(t *testing.T) {
	useCase, err := NewUserUseCase(&MockUserRepository{}, &MockTokenIssuer{})
	require.NoError(t, err)
	assert.NotNil(t, useCase)
}

func TestUserUseCase_Signup_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenIssuer := &MockTokenIssuer{}

	useCase, err := NewUserUseCase(userRepo, tokenIssuer)
	require.NoError(t, err)

	ctx := context.Background()
	input := SignupInput{
		Email:    "Singer@Example.com",
		Username: "singer",
		Password: "secret123",
	}

	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
	tokenIssuer.On("Issue", mock.AnythingOfType("string")).Return("token-1", nil)

	user, token, err := useCase.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, "singer@example.com", user.Email)
	assert.Equal(t, "singer", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.False(t, user.IsPremium)
	assert.NotEqual(t, uuid.Nil, user.ID)
	// Stored password is the hash, never the plaintext
	assert.NotEqual(t, "secret123", user.Password)
	assert.NotEmpty(t, user.Password)
	userRepo.AssertExpectations(t)
	tokenIssuer.AssertExpectations(t)
}

func TestUserUseCase_Signup_DuplicateEmail(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenIssuer := &MockTokenIssuer{}

	useCase, err := NewUserUseCase(userRepo, tokenIssuer)
	require.NoError(t, err)

	ctx := context.Background()
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrEmailAlreadyExists)

	user, token, err := useCase.Signup(ctx, SignupInput{
		Email:    "singer@example.com",
		Username: "singer",
		Password: "secret123",
	})

	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	tokenIssuer.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestUserUseCase_Login_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenIssuer := &MockTokenIssuer{}

	useCase, err := NewUserUseCase(userRepo, tokenIssuer)
	require.NoError(t, err)

	ctx := context.Background()
	stored := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Email:    "singer@example.com",
		Username: "singer",
		Password: hashPassword(t, "secret123"),
		Role:     domain.RoleUser,
	}

	userRepo.On("GetByEmail", ctx, "singer@example.com").Return(stored, nil)
	tokenIssuer.On("Issue", stored.ID.String()).Return("token-1", nil)

	user, token, err := useCase.Login(ctx, LoginInput{Email: "Singer@Example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, stored.ID, user.ID)
}

func TestUserUseCase_Login_UnknownEmail(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenIssuer := &MockTokenIssuer{}

	useCase, err := NewUserUseCase(userRepo, tokenIssuer)
	require.NoError(t, err)

	ctx := context.Background()
	userRepo.On("GetByEmail", ctx, "missing@example.com").Return(nil, domain.ErrUserNotFound)

	user, token, err := useCase.Login(ctx, LoginInput{Email: "missing@example.com", Password: "secret123"})

	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
}

func TestUserUseCase_Login_WrongPassword(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenIssuer := &MockTokenIssuer{}

	useCase, err := NewUserUseCase(userRepo, tokenIssuer)
	require.NoError(t, err)

	ctx := context.Background()
	stored := &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Email:    "singer@example.com",
		Username: "singer",
		Password: hashPassword(t, "secret123"),
		Role:     domain.RoleUser,
	}

	userRepo.On("GetByEmail", ctx, "singer@example.com").Return(stored, nil)

	user, token, err := useCase.Login(ctx, LoginInput{Email: "singer@example.com", Password: "wrong-password"})

	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	tokenIssuer.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestUserUseCase_GetProfile(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenIssuer := &MockTokenIssuer{}

	useCase, err := NewUserUseCase(userRepo, tokenIssuer)
	require.NoError(t, err)

	ctx := context.Background()
	stored := &domain.User{ID: uuid.Must(uuid.NewV7()), Email: "singer@example.com"}
	userRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)

	user, err := useCase.GetProfile(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestUserUseCase_UpdateProfileImage(t *testing.T) {
	userRepo := &MockUserRepository{}
	tokenIssuer := &MockTokenIssuer{}

	useCase, err := NewUserUseCase(userRepo, tokenIssuer)
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	updated := &domain.User{ID: id, ProfileImageURL: "https://cdn.example.com/u1.png"}

	userRepo.On("UpdateProfileImage", ctx, id, "https://cdn.example.com/u1.png").Return(nil)
	userRepo.On("GetByID", ctx, id).Return(updated, nil)

	user, err := useCase.UpdateProfileImage(ctx, id, "https://cdn.example.com/u1.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/u1.png", user.ProfileImageURL)
}
