package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/metrics"
	"github.com/allisson/karaoke/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Signup records metrics for account creation operations.
func (u *userUseCaseWithMetrics) Signup(ctx context.Context, input SignupInput) (*domain.User, string, error) {
	start := time.Now()
	user, token, err := u.next.Signup(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "auth", "signup", status)
	u.metrics.RecordDuration(ctx, "auth", "signup", time.Since(start), status)

	return user, token, err
}

// Login records metrics for credential verification operations.
func (u *userUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (*domain.User, string, error) {
	start := time.Now()
	user, token, err := u.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "auth", "login", status)
	u.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return user, token, err
}

// GetProfile records metrics for profile retrieval operations.
func (u *userUseCaseWithMetrics) GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetProfile(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "auth", "profile_get", status)
	u.metrics.RecordDuration(ctx, "auth", "profile_get", time.Since(start), status)

	return user, err
}

// UpdateProfileImage records metrics for avatar update operations.
func (u *userUseCaseWithMetrics) UpdateProfileImage(
	ctx context.Context,
	id uuid.UUID,
	imageURL string,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.UpdateProfileImage(ctx, id, imageURL)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "auth", "profile_image_update", status)
	u.metrics.RecordDuration(ctx, "auth", "profile_image_update", time.Since(start), status)

	return user, err
}
