package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/catalog/domain"
)

// ArtistInput contains the input data for creating or updating an artist
type ArtistInput struct {
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`
	Verified        bool   `json:"verified"`
}

// ArtistUseCase defines the interface for artist business logic operations
type ArtistUseCase interface {
	Create(ctx context.Context, input ArtistInput) (*domain.Artist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Artist, error)
	Update(ctx context.Context, id uuid.UUID, input ArtistInput) (*domain.Artist, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ArtistRepository interface defines artist repository operations
type ArtistRepository interface {
	Create(ctx context.Context, artist *domain.Artist) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Artist, error)
	Update(ctx context.Context, artist *domain.Artist) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementTracks(ctx context.Context, id uuid.UUID, delta int64) error
}

// DefaultArtistUseCase handles artist-related business logic
type DefaultArtistUseCase struct {
	artistRepo ArtistRepository
}

// NewArtistUseCase creates a new DefaultArtistUseCase
func NewArtistUseCase(artistRepo ArtistRepository) *DefaultArtistUseCase {
	return &DefaultArtistUseCase{
		artistRepo: artistRepo,
	}
}

// Create inserts a new artist
func (uc *DefaultArtistUseCase) Create(ctx context.Context, input ArtistInput) (*domain.Artist, error) {
	artist := &domain.Artist{
		ID:              uuid.Must(uuid.NewV7()),
		Name:            strings.TrimSpace(input.Name),
		Bio:             input.Bio,
		ProfileImageURL: input.ProfileImageURL,
		Verified:        input.Verified,
	}

	if err := uc.artistRepo.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// GetByID retrieves an artist by ID
func (uc *DefaultArtistUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Artist, error) {
	return uc.artistRepo.GetByID(ctx, id)
}

// List retrieves artists with pagination
func (uc *DefaultArtistUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Artist, error) {
	return uc.artistRepo.List(ctx, offset, limit)
}

// Update replaces the mutable fields of an artist
func (uc *DefaultArtistUseCase) Update(ctx context.Context, id uuid.UUID, input ArtistInput) (*domain.Artist, error) {
	artist := &domain.Artist{
		ID:              id,
		Name:            strings.TrimSpace(input.Name),
		Bio:             input.Bio,
		ProfileImageURL: input.ProfileImageURL,
		Verified:        input.Verified,
	}

	if err := uc.artistRepo.Update(ctx, artist); err != nil {
		return nil, err
	}
	return uc.artistRepo.GetByID(ctx, id)
}

// Delete removes an artist
func (uc *DefaultArtistUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.artistRepo.Delete(ctx, id)
}
