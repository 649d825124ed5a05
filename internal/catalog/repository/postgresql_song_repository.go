// Package repository provides data persistence implementations for catalog entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/catalog/domain"
	"github.com/allisson/karaoke/internal/database"

	apperrors "github.com/allisson/karaoke/internal/errors"
)

const songColumns = `id, title, artist_name, artist_id, album, duration, genre, lyrics,
	cover_image_url, file_path, plays, likes, language, created_at, updated_at`

// PostgreSQLSongRepository handles song persistence for PostgreSQL
type PostgreSQLSongRepository struct {
	db *sql.DB
}

// NewPostgreSQLSongRepository creates a new PostgreSQLSongRepository
func NewPostgreSQLSongRepository(db *sql.DB) *PostgreSQLSongRepository {
	return &PostgreSQLSongRepository{
		db: db,
	}
}

// Create inserts a new song
func (r *PostgreSQLSongRepository) Create(ctx context.Context, song *domain.Song) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO songs (id, title, artist_name, artist_id, album, duration, genre, lyrics,
			  cover_image_url, file_path, plays, likes, language, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		song.ID, song.Title, song.ArtistName, song.ArtistID, song.Album, song.Duration, song.Genre,
		song.Lyrics, song.CoverImageURL, song.FilePath, song.Plays, song.Likes, song.Language,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create song")
	}
	return nil
}

// GetByID retrieves a song by ID
func (r *PostgreSQLSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + songColumns + ` FROM songs WHERE id = $1`

	song, err := scanSong(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSongNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get song by id")
	}
	return song, nil
}

// List retrieves songs matching the filter, newest first
func (r *PostgreSQLSongRepository) List(ctx context.Context, filter domain.SongFilter) ([]*domain.Song, error) {
	querier := database.GetTx(ctx, r.db)

	var conditions []string
	var args []any

	if filter.Genre != "" {
		args = append(args, filter.Genre)
		conditions = append(conditions, fmt.Sprintf("genre = $%d", len(args)))
	}
	if filter.Language != "" {
		args = append(args, filter.Language)
		conditions = append(conditions, fmt.Sprintf("language = $%d", len(args)))
	}
	if filter.ArtistID != nil {
		args = append(args, *filter.ArtistID)
		conditions = append(conditions, fmt.Sprintf("artist_id = $%d", len(args)))
	}

	query := `SELECT ` + songColumns + ` FROM songs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list songs")
	}
	defer rows.Close()

	var songs []*domain.Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan song")
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate songs")
	}
	return songs, nil
}

// Update replaces the mutable fields of a song
func (r *PostgreSQLSongRepository) Update(ctx context.Context, song *domain.Song) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE songs SET title = $1, artist_name = $2, artist_id = $3, album = $4, duration = $5,
			  genre = $6, lyrics = $7, cover_image_url = $8, file_path = $9, language = $10, updated_at = NOW()
			  WHERE id = $11`

	result, err := querier.ExecContext(ctx, query,
		song.Title, song.ArtistName, song.ArtistID, song.Album, song.Duration, song.Genre,
		song.Lyrics, song.CoverImageURL, song.FilePath, song.Language, song.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update song")
	}
	return checkAffected(result, domain.ErrSongNotFound)
}

// Delete removes a song
func (r *PostgreSQLSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete song")
	}
	return checkAffected(result, domain.ErrSongNotFound)
}

// IncrementPlays bumps the play counter for a song
func (r *PostgreSQLSongRepository) IncrementPlays(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE songs SET plays = plays + 1, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to increment plays")
	}
	return checkAffected(result, domain.ErrSongNotFound)
}

// IncrementLikes bumps the like counter for a song
func (r *PostgreSQLSongRepository) IncrementLikes(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx,
		`UPDATE songs SET likes = likes + 1, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to increment likes")
	}
	return checkAffected(result, domain.ErrSongNotFound)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSong(row rowScanner) (*domain.Song, error) {
	var song domain.Song
	err := row.Scan(
		&song.ID, &song.Title, &song.ArtistName, &song.ArtistID, &song.Album, &song.Duration,
		&song.Genre, &song.Lyrics, &song.CoverImageURL, &song.FilePath, &song.Plays, &song.Likes,
		&song.Language, &song.CreatedAt, &song.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// checkAffected converts a zero-row write into the given not-found error.
func checkAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check affected rows")
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
