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

// MySQLLocationRepository handles karaoke venue persistence for MySQL
type MySQLLocationRepository struct {
	db *sql.DB
}

// NewMySQLLocationRepository creates a new MySQLLocationRepository
func NewMySQLLocationRepository(db *sql.DB) *MySQLLocationRepository {
	return &MySQLLocationRepository{
		db: db,
	}
}

// Create inserts a new location
func (r *MySQLLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO locations (id, name, address, city, image_url, rooms, open_hours, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	idBytes, err := location.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		idBytes, location.Name, location.Address, location.City, location.ImageURL,
		location.Rooms, location.OpenHours,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create location")
	}
	return nil
}

// GetByID retrieves a location by ID
func (r *MySQLLocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	location, err := scanMySQLLocation(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get location by id")
	}
	return location, nil
}

// List retrieves locations ordered by name
func (r *MySQLLocationRepository) List(ctx context.Context, offset, limit int) ([]*domain.Location, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY name LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list locations")
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		location, err := scanMySQLLocation(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan location")
		}
		locations = append(locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate locations")
	}
	return locations, nil
}

// Update replaces the mutable fields of a location
func (r *MySQLLocationRepository) Update(ctx context.Context, location *domain.Location) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE locations SET name = ?, address = ?, city = ?, image_url = ?, rooms = ?,
			  open_hours = ?, updated_at = NOW() WHERE id = ?`

	idBytes, err := location.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query,
		location.Name, location.Address, location.City, location.ImageURL,
		location.Rooms, location.OpenHours, idBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update location")
	}
	return checkAffected(result, domain.ErrLocationNotFound)
}

// Delete removes a location
func (r *MySQLLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete location")
	}
	return checkAffected(result, domain.ErrLocationNotFound)
}

func scanMySQLLocation(row rowScanner) (*domain.Location, error) {
	var location domain.Location
	var idBytes []byte

	err := row.Scan(
		&idBytes, &location.Name, &location.Address, &location.City, &location.ImageURL,
		&location.Rooms, &location.OpenHours, &location.CreatedAt, &location.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := location.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return &location, nil
}
