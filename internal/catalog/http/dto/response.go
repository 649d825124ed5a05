// Package dto provides data transfer objects for the catalog HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// SongResponse represents the API response for a song
type SongResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	ArtistName    string     `json:"artist_name"`
	ArtistID      *uuid.UUID `json:"artist_id,omitempty"`
	Album         string     `json:"album,omitempty"`
	Duration      string     `json:"duration"`
	Genre         string     `json:"genre,omitempty"`
	Lyrics        string     `json:"lyrics,omitempty"`
	CoverImageURL string     `json:"cover_image_url,omitempty"`
	FilePath      string     `json:"file_path,omitempty"`
	Plays         int64      `json:"plays"`
	Likes         int64      `json:"likes"`
	Language      string     `json:"language,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SongListResponse represents a paginated song listing
type SongListResponse struct {
	Songs  []SongResponse `json:"songs"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}

// ArtistResponse represents the API response for an artist
type ArtistResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Bio             string    `json:"bio,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	Verified        bool      `json:"verified"`
	Followers       int64     `json:"followers"`
	Tracks          int64     `json:"tracks"`
	Albums          int64     `json:"albums"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ArtistListResponse represents a paginated artist listing
type ArtistListResponse struct {
	Artists []ArtistResponse `json:"artists"`
	Offset  int              `json:"offset"`
	Limit   int              `json:"limit"`
}

// LocationResponse represents the API response for a karaoke venue
type LocationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	ImageURL  string    `json:"image_url,omitempty"`
	Rooms     int       `json:"rooms"`
	OpenHours string    `json:"open_hours,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationListResponse represents a paginated location listing
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Offset    int                `json:"offset"`
	Limit     int                `json:"limit"`
}
