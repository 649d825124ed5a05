package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/errors"
)

// Artist represents a performer whose songs appear in the catalog
type Artist struct {
	ID              uuid.UUID
	Name            string
	Bio             string
	ProfileImageURL string
	Verified        bool
	Followers       int64
	Tracks          int64
	Albums          int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Domain-specific errors for artist operations.
var (
	// ErrArtistNotFound indicates the requested artist does not exist.
	ErrArtistNotFound = errors.Wrap(errors.ErrNotFound, "artist not found")
)
