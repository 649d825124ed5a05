// Package dto provides data transfer objects for the catalog HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	appValidation "github.com/allisson/karaoke/internal/validation"
)

// SongRequest represents the API request for creating or updating a song
type SongRequest struct {
	Title         string     `json:"title"`
	ArtistName    string     `json:"artist_name"`
	ArtistID      *uuid.UUID `json:"artist_id"`
	Album         string     `json:"album"`
	Duration      string     `json:"duration"`
	Genre         string     `json:"genre"`
	Lyrics        string     `json:"lyrics"`
	CoverImageURL string     `json:"cover_image_url"`
	FilePath      string     `json:"file_path"`
	Language      string     `json:"language"`
}

// Validate validates the SongRequest using the jellydator/validation library
func (r *SongRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&r.ArtistName,
			validation.Required.Error("artist_name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("artist_name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Duration,
			validation.Required.Error("duration is required"),
			appValidation.SongDuration,
		),
		validation.Field(&r.Genre,
			validation.Length(0, 100).Error("genre must be at most 100 characters"),
		),
		validation.Field(&r.Language,
			validation.Length(0, 50).Error("language must be at most 50 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ArtistRequest represents the API request for creating or updating an artist
type ArtistRequest struct {
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`
	Verified        bool   `json:"verified"`
}

// Validate validates the ArtistRequest using the jellydator/validation library
func (r *ArtistRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Bio,
			validation.Length(0, 5000).Error("bio must be at most 5000 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// LocationRequest represents the API request for creating or updating a karaoke venue
type LocationRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ImageURL  string `json:"image_url"`
	Rooms     int    `json:"rooms"`
	OpenHours string `json:"open_hours"`
}

// Validate validates the LocationRequest using the jellydator/validation library
func (r *LocationRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Address,
			validation.Required.Error("address is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.City,
			validation.Required.Error("city is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Rooms,
			validation.Min(0).Error("rooms must not be negative"),
		),
	)
	return appValidation.WrapValidationError(err)
}
