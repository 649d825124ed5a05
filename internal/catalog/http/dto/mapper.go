// Package dto provides data transfer objects for the catalog HTTP layer.
package dto

import (
	"github.com/allisson/karaoke/internal/catalog/domain"
	"github.com/allisson/karaoke/internal/catalog/usecase"
)

// ToSongInput converts a SongRequest DTO to a SongInput use case input
func ToSongInput(req SongRequest) usecase.SongInput {
	return usecase.SongInput{
		Title:         req.Title,
		ArtistName:    req.ArtistName,
		ArtistID:      req.ArtistID,
		Album:         req.Album,
		Duration:      req.Duration,
		Genre:         req.Genre,
		Lyrics:        req.Lyrics,
		CoverImageURL: req.CoverImageURL,
		FilePath:      req.FilePath,
		Language:      req.Language,
	}
}

// ToSongResponse converts a domain Song model to a SongResponse DTO
func ToSongResponse(song *domain.Song) SongResponse {
	return SongResponse{
		ID:            song.ID,
		Title:         song.Title,
		ArtistName:    song.ArtistName,
		ArtistID:      song.ArtistID,
		Album:         song.Album,
		Duration:      song.Duration,
		Genre:         song.Genre,
		Lyrics:        song.Lyrics,
		CoverImageURL: song.CoverImageURL,
		FilePath:      song.FilePath,
		Plays:         song.Plays,
		Likes:         song.Likes,
		Language:      song.Language,
		CreatedAt:     song.CreatedAt,
		UpdatedAt:     song.UpdatedAt,
	}
}

// ToSongListResponse converts a song slice to a SongListResponse DTO
func ToSongListResponse(songs []*domain.Song, offset, limit int) SongListResponse {
	responses := make([]SongResponse, 0, len(songs))
	for _, song := range songs {
		responses = append(responses, ToSongResponse(song))
	}
	return SongListResponse{Songs: responses, Offset: offset, Limit: limit}
}

// ToArtistInput converts an ArtistRequest DTO to an ArtistInput use case input
func ToArtistInput(req ArtistRequest) usecase.ArtistInput {
	return usecase.ArtistInput{
		Name:            req.Name,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		Verified:        req.Verified,
	}
}

// ToArtistResponse converts a domain Artist model to an ArtistResponse DTO
func ToArtistResponse(artist *domain.Artist) ArtistResponse {
	return ArtistResponse{
		ID:              artist.ID,
		Name:            artist.Name,
		Bio:             artist.Bio,
		ProfileImageURL: artist.ProfileImageURL,
		Verified:        artist.Verified,
		Followers:       artist.Followers,
		Tracks:          artist.Tracks,
		Albums:          artist.Albums,
		CreatedAt:       artist.CreatedAt,
		UpdatedAt:       artist.UpdatedAt,
	}
}

// ToArtistListResponse converts an artist slice to an ArtistListResponse DTO
func ToArtistListResponse(artists []*domain.Artist, offset, limit int) ArtistListResponse {
	responses := make([]ArtistResponse, 0, len(artists))
	for _, artist := range artists {
		responses = append(responses, ToArtistResponse(artist))
	}
	return ArtistListResponse{Artists: responses, Offset: offset, Limit: limit}
}

// ToLocationInput converts a LocationRequest DTO to a LocationInput use case input
func ToLocationInput(req LocationRequest) usecase.LocationInput {
	return usecase.LocationInput{
		Name:      req.Name,
		Address:   req.Address,
		City:      req.City,
		ImageURL:  req.ImageURL,
		Rooms:     req.Rooms,
		OpenHours: req.OpenHours,
	}
}

// ToLocationResponse converts a domain Location model to a LocationResponse DTO
func ToLocationResponse(location *domain.Location) LocationResponse {
	return LocationResponse{
		ID:        location.ID,
		Name:      location.Name,
		Address:   location.Address,
		City:      location.City,
		ImageURL:  location.ImageURL,
		Rooms:     location.Rooms,
		OpenHours: location.OpenHours,
		CreatedAt: location.CreatedAt,
		UpdatedAt: location.UpdatedAt,
	}
}

// ToLocationListResponse converts a location slice to a LocationListResponse DTO
func ToLocationListResponse(locations []*domain.Location, offset, limit int) LocationListResponse {
	responses := make([]LocationResponse, 0, len(locations))
	for _, location := range locations {
		responses = append(responses, ToLocationResponse(location))
	}
	return LocationListResponse{Locations: responses, Offset: offset, Limit: limit}
}
