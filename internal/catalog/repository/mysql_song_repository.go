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

// MySQLSongRepository handles song persistence for MySQL
type MySQLSongRepository struct {
	db *sql.DB
}

// NewMySQLSongRepository creates a new MySQLSongRepository
func NewMySQLSongRepository(db *sql.DB) *MySQLSongRepository {
	return &MySQLSongRepository{
		db: db,
	}
}

// Create inserts a new song
func (r *MySQLSongRepository) Create(ctx context.Context, song *domain.Song) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO songs (id, title, artist_name, artist_id, album, duration, genre, lyrics,
			  cover_image_url, file_path, plays, likes, language, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	idBytes, err := song.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	artistIDBytes, err := marshalNullableUUID(song.ArtistID)
	if err != nil {
		return err
	}

	_, err = querier.ExecContext(ctx, query,
		idBytes, song.Title, song.ArtistName, artistIDBytes, song.Album, song.Duration, song.Genre,
		song.Lyrics, song.CoverImageURL, song.FilePath, song.Plays, song.Likes, song.Language,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create song")
	}
	return nil
}

// GetByID retrieves a song by ID
func (r *MySQLSongRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + songColumns + ` FROM songs WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	song, err := scanMySQLSong(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSongNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get song by id")
	}
	return song, nil
}

// List retrieves songs matching the filter, newest first
func (r *MySQLSongRepository) List(ctx context.Context, filter domain.SongFilter) ([]*domain.Song, error) {
	querier := database.GetTx(ctx, r.db)

	var conditions []string
	var args []any

	if filter.Genre != "" {
		conditions = append(conditions, "genre = ?")
		args = append(args, filter.Genre)
	}
	if filter.Language != "" {
		conditions = append(conditions, "language = ?")
		args = append(args, filter.Language)
	}
	if filter.ArtistID != nil {
		artistIDBytes, err := filter.ArtistID.MarshalBinary()
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to marshal UUID")
		}
		conditions = append(conditions, "artist_id = ?")
		args = append(args, artistIDBytes)
	}

	query := `SELECT ` + songColumns + ` FROM songs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.Limit, filter.Offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list songs")
	}
	defer rows.Close()

	var songs []*domain.Song
	for rows.Next() {
		song, err := scanMySQLSong(rows)
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
func (r *MySQLSongRepository) Update(ctx context.Context, song *domain.Song) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE songs SET title = ?, artist_name = ?, artist_id = ?, album = ?, duration = ?,
			  genre = ?, lyrics = ?, cover_image_url = ?, file_path = ?, language = ?, updated_at = NOW()
			  WHERE id = ?`

	idBytes, err := song.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	artistIDBytes, err := marshalNullableUUID(song.ArtistID)
	if err != nil {
		return err
	}

	result, err := querier.ExecContext(ctx, query,
		song.Title, song.ArtistName, artistIDBytes, song.Album, song.Duration, song.Genre,
		song.Lyrics, song.CoverImageURL, song.FilePath, song.Language, idBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update song")
	}
	return checkAffected(result, domain.ErrSongNotFound)
}

// Delete removes a song
func (r *MySQLSongRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete song")
	}
	return checkAffected(result, domain.ErrSongNotFound)
}

// IncrementPlays bumps the play counter for a song
func (r *MySQLSongRepository) IncrementPlays(ctx context.Context, id uuid.UUID) error {
	return r.incrementCounter(ctx, id, "plays")
}

// IncrementLikes bumps the like counter for a song
func (r *MySQLSongRepository) IncrementLikes(ctx context.Context, id uuid.UUID) error {
	return r.incrementCounter(ctx, id, "likes")
}

func (r *MySQLSongRepository) incrementCounter(ctx context.Context, id uuid.UUID, column string) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	query := fmt.Sprintf("UPDATE songs SET %s = %s + 1, updated_at = NOW() WHERE id = ?", column, column)
	result, err := querier.ExecContext(ctx, query, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to increment "+column)
	}
	return checkAffected(result, domain.ErrSongNotFound)
}

func scanMySQLSong(row rowScanner) (*domain.Song, error) {
	var song domain.Song
	var idBytes, artistIDBytes []byte

	err := row.Scan(
		&idBytes, &song.Title, &song.ArtistName, &artistIDBytes, &song.Album, &song.Duration,
		&song.Genre, &song.Lyrics, &song.CoverImageURL, &song.FilePath, &song.Plays, &song.Likes,
		&song.Language, &song.CreatedAt, &song.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := song.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if artistIDBytes != nil {
		var artistID uuid.UUID
		if err := artistID.UnmarshalBinary(artistIDBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		song.ArtistID = &artistID
	}
	return &song, nil
}

// marshalNullableUUID converts an optional UUID to BINARY(16) bytes, keeping
// nil as SQL NULL.
func marshalNullableUUID(id *uuid.UUID) ([]byte, error) {
	if id == nil {
		return nil, nil
	}
	bytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}
	return bytes, nil
}
