package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/errors"
)

// Location represents a karaoke venue
type Location struct {
	ID        uuid.UUID
	Name      string
	Address   string
	City      string
	ImageURL  string
	Rooms     int
	OpenHours string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for location operations.
var (
	// ErrLocationNotFound indicates the requested location does not exist.
	ErrLocationNotFound = errors.Wrap(errors.ErrNotFound, "location not found")
)
