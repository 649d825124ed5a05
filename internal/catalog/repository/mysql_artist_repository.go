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

// MySQLArtistRepository handles artist persistence for MySQL
type MySQLArtistRepository struct {
	db *sql.DB
}

// NewMySQLArtistRepository creates a new MySQLArtistRepository
func NewMySQLArtistRepository(db *sql.DB) *MySQLArtistRepository {
	return &MySQLArtistRepository{
		db: db,
	}
}

// Create inserts a new artist
func (r *MySQLArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO artists (id, name, bio, profile_image_url, verified, followers, tracks, albums, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	idBytes, err := artist.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		idBytes, artist.Name, artist.Bio, artist.ProfileImageURL, artist.Verified,
		artist.Followers, artist.Tracks, artist.Albums,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create artist")
	}
	return nil
}

// GetByID retrieves an artist by ID
func (r *MySQLArtistRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	artist, err := scanMySQLArtist(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get artist by id")
	}
	return artist, nil
}

// List retrieves artists ordered by name
func (r *MySQLArtistRepository) List(ctx context.Context, offset, limit int) ([]*domain.Artist, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY name LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list artists")
	}
	defer rows.Close()

	var artists []*domain.Artist
	for rows.Next() {
		artist, err := scanMySQLArtist(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan artist")
		}
		artists = append(artists, artist)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate artists")
	}
	return artists, nil
}

// Update replaces the mutable fields of an artist
func (r *MySQLArtistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE artists SET name = ?, bio = ?, profile_image_url = ?, verified = ?, updated_at = NOW()
			  WHERE id = ?`

	idBytes, err := artist.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query,
		artist.Name, artist.Bio, artist.ProfileImageURL, artist.Verified, idBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update artist")
	}
	return checkAffected(result, domain.ErrArtistNotFound)
}

// Delete removes an artist
func (r *MySQLArtistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM artists WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete artist")
	}
	return checkAffected(result, domain.ErrArtistNotFound)
}

// IncrementTracks adjusts the track counter for an artist
func (r *MySQLArtistRepository) IncrementTracks(ctx context.Context, id uuid.UUID, delta int64) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx,
		`UPDATE artists SET tracks = tracks + ?, updated_at = NOW() WHERE id = ?`, delta, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to update artist tracks")
	}
	return checkAffected(result, domain.ErrArtistNotFound)
}

func scanMySQLArtist(row rowScanner) (*domain.Artist, error) {
	var artist domain.Artist
	var idBytes []byte

	err := row.Scan(
		&idBytes, &artist.Name, &artist.Bio, &artist.ProfileImageURL, &artist.Verified,
		&artist.Followers, &artist.Tracks, &artist.Albums, &artist.CreatedAt, &artist.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := artist.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return &artist, nil
}
