package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/catalog/domain"
	"github.com/allisson/karaoke/internal/database"

	apperrors "github.com/allisson/karaoke/internal/errors"
)

const artistColumns = `id, name, bio, profile_image_url, verified, followers, tracks, albums, created_at, updated_at`

// PostgreSQLArtistRepository handles artist persistence for PostgreSQL
type PostgreSQLArtistRepository struct {
	db *sql.DB
}

// NewPostgreSQLArtistRepository creates a new PostgreSQLArtistRepository
func NewPostgreSQLArtistRepository(db *sql.DB) *PostgreSQLArtistRepository {
	return &PostgreSQLArtistRepository{
		db: db,
	}
}

// Create inserts a new artist
func (r *PostgreSQLArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO artists (id, name, bio, profile_image_url, verified, followers, tracks, albums, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		artist.ID, artist.Name, artist.Bio, artist.ProfileImageURL, artist.Verified,
		artist.Followers, artist.Tracks, artist.Albums,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create artist")
	}
	return nil
}

// GetByID retrieves an artist by ID
func (r *PostgreSQLArtistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	var artist domain.Artist
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&artist.ID, &artist.Name, &artist.Bio, &artist.ProfileImageURL, &artist.Verified,
		&artist.Followers, &artist.Tracks, &artist.Albums, &artist.CreatedAt, &artist.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get artist by id")
	}

	return &artist, nil
}

// List retrieves artists ordered by name
func (r *PostgreSQLArtistRepository) List(ctx context.Context, offset, limit int) ([]*domain.Artist, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list artists")
	}
	defer rows.Close()

	var artists []*domain.Artist
	for rows.Next() {
		var artist domain.Artist
		err := rows.Scan(
			&artist.ID, &artist.Name, &artist.Bio, &artist.ProfileImageURL, &artist.Verified,
			&artist.Followers, &artist.Tracks, &artist.Albums, &artist.CreatedAt, &artist.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan artist")
		}
		artists = append(artists, &artist)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate artists")
	}
	return artists, nil
}

// Update replaces the mutable fields of an artist
func (r *PostgreSQLArtistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE artists SET name = $1, bio = $2, profile_image_url = $3, verified = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := querier.ExecContext(ctx, query,
		artist.Name, artist.Bio, artist.ProfileImageURL, artist.Verified, artist.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update artist")
	}
	return checkAffected(result, domain.ErrArtistNotFound)
}

// Delete removes an artist
func (r *PostgreSQLArtistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete artist")
	}
	return checkAffected(result, domain.ErrArtistNotFound)
}

// IncrementTracks adjusts the track counter for an artist
func (r *PostgreSQLArtistRepository) IncrementTracks(ctx context.Context, id uuid.UUID, delta int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE artists SET tracks = tracks + $1, updated_at = NOW() WHERE id = $2`, delta, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update artist tracks")
	}
	return checkAffected(result, domain.ErrArtistNotFound)
}
