package app

import (
	"fmt"

	catalogRepository "github.com/allisson/karaoke/internal/catalog/repository"
	catalogUsecase "github.com/allisson/karaoke/internal/catalog/usecase"
	userRepository "github.com/allisson/karaoke/internal/user/repository"
	userUsecase "github.com/allisson/karaoke/internal/user/usecase"
)

// Repositories are cheap stateless wrappers over *sql.DB, so they are built
// on demand instead of cached behind a sync.Once.

// userRepository creates the user repository for the configured database driver.
func (c *Container) userRepository() (userUsecase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// songRepository creates the song repository for the configured database driver.
func (c *Container) songRepository() (catalogUsecase.SongRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for song repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return catalogRepository.NewMySQLSongRepository(db), nil
	case "postgres":
		return catalogRepository.NewPostgreSQLSongRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// artistRepository creates the artist repository for the configured database driver.
func (c *Container) artistRepository() (catalogUsecase.ArtistRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for artist repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return catalogRepository.NewMySQLArtistRepository(db), nil
	case "postgres":
		return catalogRepository.NewPostgreSQLArtistRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// locationRepository creates the location repository for the configured database driver.
func (c *Container) locationRepository() (catalogUsecase.LocationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for location repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return catalogRepository.NewMySQLLocationRepository(db), nil
	case "postgres":
		return catalogRepository.NewPostgreSQLLocationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}
