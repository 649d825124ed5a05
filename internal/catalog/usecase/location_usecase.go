package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/catalog/domain"
)

// LocationInput contains the input data for creating or updating a karaoke venue
type LocationInput struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ImageURL  string `json:"image_url"`
	Rooms     int    `json:"rooms"`
	OpenHours string `json:"open_hours"`
}

// LocationUseCase defines the interface for location business logic operations
type LocationUseCase interface {
	Create(ctx context.Context, input LocationInput) (*domain.Location, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Location, error)
	Update(ctx context.Context, id uuid.UUID, input LocationInput) (*domain.Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LocationRepository interface defines location repository operations
type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Location, error)
	Update(ctx context.Context, location *domain.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DefaultLocationUseCase handles location-related business logic
type DefaultLocationUseCase struct {
	locationRepo LocationRepository
}

// NewLocationUseCase creates a new DefaultLocationUseCase
func NewLocationUseCase(locationRepo LocationRepository) *DefaultLocationUseCase {
	return &DefaultLocationUseCase{
		locationRepo: locationRepo,
	}
}

// Create inserts a new location
func (uc *DefaultLocationUseCase) Create(ctx context.Context, input LocationInput) (*domain.Location, error) {
	location := &domain.Location{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      strings.TrimSpace(input.Name),
		Address:   input.Address,
		City:      input.City,
		ImageURL:  input.ImageURL,
		Rooms:     input.Rooms,
		OpenHours: input.OpenHours,
	}

	if err := uc.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetByID retrieves a location by ID
func (uc *DefaultLocationUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	return uc.locationRepo.GetByID(ctx, id)
}

// List retrieves locations with pagination
func (uc *DefaultLocationUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Location, error) {
	return uc.locationRepo.List(ctx, offset, limit)
}

// Update replaces the mutable fields of a location
func (uc *DefaultLocationUseCase) Update(ctx context.Context, id uuid.UUID, input LocationInput) (*domain.Location, error) {
	location := &domain.Location{
		ID:        id,
		Name:      strings.TrimSpace(input.Name),
		Address:   input.Address,
		City:      input.City,
		ImageURL:  input.ImageURL,
		Rooms:     input.Rooms,
		OpenHours: input.OpenHours,
	}

	if err := uc.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return uc.locationRepo.GetByID(ctx, id)
}

// Delete removes a location
func (uc *DefaultLocationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.locationRepo.Delete(ctx, id)
}
