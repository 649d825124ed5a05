// Package repository provides data persistence implementations for user entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/database"
	"github.com/allisson/karaoke/internal/user/domain"

	apperrors "github.com/allisson/karaoke/internal/errors"
)

const userColumns = `id, email, username, password, profile_image_url, role, is_premium, created_at, updated_at`

// PostgreSQLUserRepository handles user persistence for PostgreSQL
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{
		db: db,
	}
}

// Create inserts a new user
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, email, username, password, profile_image_url, role, is_premium, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		user.ID, user.Email, user.Username, user.Password, user.ProfileImageURL, user.Role, user.IsPremium,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return uniqueViolationError(err)
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Username, &user.Password, &user.ProfileImageURL,
		&user.Role, &user.IsPremium, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	err := querier.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Username, &user.Password, &user.ProfileImageURL,
		&user.Role, &user.IsPremium, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	return &user, nil
}

// UpdateProfileImage sets the profile image URL for a user
func (r *PostgreSQLUserRepository) UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET profile_image_url = $1, updated_at = NOW() WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, imageURL, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update profile image")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}

// uniqueViolationError maps a unique constraint violation to the conflicting
// column based on the index name in the driver error.
func uniqueViolationError(err error) error {
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "username") {
		return domain.ErrUsernameAlreadyExists
	}
	return domain.ErrEmailAlreadyExists
}
