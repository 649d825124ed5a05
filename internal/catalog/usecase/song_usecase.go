// Package usecase implements the catalog business logic.
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/catalog/domain"
	"github.com/allisson/karaoke/internal/database"

	apperrors "github.com/allisson/karaoke/internal/errors"
)

// SongInput contains the input data for creating or updating a song
type SongInput struct {
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

// SongUseCase defines the interface for song business logic operations
type SongUseCase interface {
	Create(ctx context.Context, input SongInput) (*domain.Song, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error)
	List(ctx context.Context, filter domain.SongFilter) ([]*domain.Song, error)
	Update(ctx context.Context, id uuid.UUID, input SongInput) (*domain.Song, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RegisterPlay(ctx context.Context, id uuid.UUID) error
	Like(ctx context.Context, id uuid.UUID) error
}

// SongRepository interface defines song repository operations
type SongRepository interface {
	Create(ctx context.Context, song *domain.Song) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error)
	List(ctx context.Context, filter domain.SongFilter) ([]*domain.Song, error)
	Update(ctx context.Context, song *domain.Song) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementPlays(ctx context.Context, id uuid.UUID) error
	IncrementLikes(ctx context.Context, id uuid.UUID) error
}

// ArtistTrackCounter adjusts an artist's track counter when songs are
// attached to or removed from the artist.
type ArtistTrackCounter interface {
	IncrementTracks(ctx context.Context, id uuid.UUID, delta int64) error
}

// DefaultSongUseCase handles song-related business logic
type DefaultSongUseCase struct {
	txManager  database.TxManager
	songRepo   SongRepository
	artistRepo ArtistTrackCounter
}

// NewSongUseCase creates a new DefaultSongUseCase
func NewSongUseCase(
	txManager database.TxManager,
	songRepo SongRepository,
	artistRepo ArtistTrackCounter,
) *DefaultSongUseCase {
	return &DefaultSongUseCase{
		txManager:  txManager,
		songRepo:   songRepo,
		artistRepo: artistRepo,
	}
}

// Create inserts a song and, when linked to an artist, bumps the artist's
// track counter in the same transaction.
func (uc *DefaultSongUseCase) Create(ctx context.Context, input SongInput) (*domain.Song, error) {
	song := &domain.Song{
		ID:            uuid.Must(uuid.NewV7()),
		Title:         strings.TrimSpace(input.Title),
		ArtistName:    strings.TrimSpace(input.ArtistName),
		ArtistID:      input.ArtistID,
		Album:         input.Album,
		Duration:      input.Duration,
		Genre:         input.Genre,
		Lyrics:        input.Lyrics,
		CoverImageURL: input.CoverImageURL,
		FilePath:      input.FilePath,
		Language:      input.Language,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.songRepo.Create(ctx, song); err != nil {
			return err
		}
		if song.ArtistID != nil {
			if err := uc.artistRepo.IncrementTracks(ctx, *song.ArtistID, 1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return song, nil
}

// GetByID retrieves a song by ID
func (uc *DefaultSongUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	return uc.songRepo.GetByID(ctx, id)
}

// List retrieves songs matching the filter
func (uc *DefaultSongUseCase) List(ctx context.Context, filter domain.SongFilter) ([]*domain.Song, error) {
	return uc.songRepo.List(ctx, filter)
}

// Update replaces the mutable fields of a song, adjusting artist track
// counters when the song moves between artists.
func (uc *DefaultSongUseCase) Update(ctx context.Context, id uuid.UUID, input SongInput) (*domain.Song, error) {
	current, err := uc.songRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := &domain.Song{
		ID:            id,
		Title:         strings.TrimSpace(input.Title),
		ArtistName:    strings.TrimSpace(input.ArtistName),
		ArtistID:      input.ArtistID,
		Album:         input.Album,
		Duration:      input.Duration,
		Genre:         input.Genre,
		Lyrics:        input.Lyrics,
		CoverImageURL: input.CoverImageURL,
		FilePath:      input.FilePath,
		Language:      input.Language,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.songRepo.Update(ctx, updated); err != nil {
			return err
		}
		if !sameArtist(current.ArtistID, updated.ArtistID) {
			if current.ArtistID != nil {
				if err := uc.artistRepo.IncrementTracks(ctx, *current.ArtistID, -1); err != nil {
					return err
				}
			}
			if updated.ArtistID != nil {
				if err := uc.artistRepo.IncrementTracks(ctx, *updated.ArtistID, 1); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.songRepo.GetByID(ctx, id)
}

// Delete removes a song and releases its artist track count.
func (uc *DefaultSongUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	song, err := uc.songRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.songRepo.Delete(ctx, id); err != nil {
			return err
		}
		if song.ArtistID != nil {
			if err := uc.artistRepo.IncrementTracks(ctx, *song.ArtistID, -1); err != nil {
				// The artist may have been removed since; the song delete
				// still stands.
				if !apperrors.Is(err, apperrors.ErrNotFound) {
					return err
				}
			}
		}
		return nil
	})
}

// RegisterPlay bumps the play counter for a song
func (uc *DefaultSongUseCase) RegisterPlay(ctx context.Context, id uuid.UUID) error {
	return uc.songRepo.IncrementPlays(ctx, id)
}

// Like bumps the like counter for a song
func (uc *DefaultSongUseCase) Like(ctx context.Context, id uuid.UUID) error {
	return uc.songRepo.IncrementLikes(ctx, id)
}

func sameArtist(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
