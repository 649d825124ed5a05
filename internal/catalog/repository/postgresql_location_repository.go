package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/karaoke/internal/catalog/domain"
	"github.com/allisson/karaoke/internal/database"

	apperrors "github.com/allisson/karaoke/internal/errors"
)

const locationColumns = `id, name, address, city, image_url, rooms, open_hours, created_at, updated_at`

// PostgreSQLLocationRepository handles karaoke venue persistence for PostgreSQL
type PostgreSQLLocationRepository struct {
	db *sql.DB
}

// NewPostgreSQLLocationRepository creates a new PostgreSQLLocationRepository
func NewPostgreSQLLocationRepository(db *sql.DB) *PostgreSQLLocationRepository {
	return &PostgreSQLLocationRepository{
		db: db,
	}
}

// Create inserts a new location
func (r *PostgreSQLLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO locations (id, name, address, city, image_url, rooms, open_hours, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		location.ID, location.Name, location.Address, location.City, location.ImageURL,
		location.Rooms, location.OpenHours,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create location")
	}
	return nil
}

// GetByID retrieves a location by ID
func (r *PostgreSQLLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	var location domain.Location
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&location.ID, &location.Name, &location.Address, &location.City, &location.ImageURL,
		&location.Rooms, &location.OpenHours, &location.CreatedAt, &location.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get location by id")
	}

	return &location, nil
}

// List retrieves locations ordered by name
func (r *PostgreSQLLocationRepository) List(ctx context.Context, offset, limit int) ([]*domain.Location, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list locations")
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		var location domain.Location
		err := rows.Scan(
			&location.ID, &location.Name, &location.Address, &location.City, &location.ImageURL,
			&location.Rooms, &location.OpenHours, &location.CreatedAt, &location.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan location")
		}
		locations = append(locations, &location)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate locations")
	}
	return locations, nil
}

// Update replaces the mutable fields of a location
func (r *PostgreSQLLocationRepository) Update(ctx context.Context, location *domain.Location) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE locations SET name = $1, address = $2, city = $3, image_url = $4, rooms = $5,
			  open_hours = $6, updated_at = NOW() WHERE id = $7`

	result, err := querier.ExecContext(ctx, query,
		location.Name, location.Address, location.City, location.ImageURL,
		location.Rooms, location.OpenHours, location.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update location")
	}
	return checkAffected(result, domain.ErrLocationNotFound)
}

// Delete removes a location
func (r *PostgreSQLLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete location")
	}
	return checkAffected(result, domain.ErrLocationNotFound)
}
