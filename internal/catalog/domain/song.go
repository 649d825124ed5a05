// Package domain defines the catalog domain entities: songs, artists and
// karaoke locations.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/errors"
)

// Song represents a karaoke track in the catalog
type Song struct {
	ID            uuid.UUID
	Title         string
	ArtistName    string
	ArtistID      *uuid.UUID
	Album         string
	Duration      string
	Genre         string
	Lyrics        string
	CoverImageURL string
	FilePath      string
	Plays         int64
	Likes         int64
	Language      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SongFilter narrows a song listing. Zero values mean no filtering on
// that field.
type SongFilter struct {
	Genre    string
	Language string
	ArtistID *uuid.UUID
	Offset   int
	Limit    int
}

// Domain-specific errors for song operations.
var (
	// ErrSongNotFound indicates the requested song does not exist.
	ErrSongNotFound = errors.Wrap(errors.ErrNotFound, "song not found")
)
