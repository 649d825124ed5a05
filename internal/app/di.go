// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/karaoke/internal/auth/service"
	catalogUsecase "github.com/allisson/karaoke/internal/catalog/usecase"
	"github.com/allisson/karaoke/internal/config"
	"github.com/allisson/karaoke/internal/database"
	"github.com/allisson/karaoke/internal/http"
	"github.com/allisson/karaoke/internal/media"
	"github.com/allisson/karaoke/internal/metrics"
	userUsecase "github.com/allisson/karaoke/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// rootCtx bounds background work owned by the container (currently the
	// login rate limiter cleanup); rootCancel fires on Shutdown.
	rootCtx    context.Context
	rootCancel context.CancelFunc

	// Infrastructure
	logger       *slog.Logger
	db           *sql.DB
	txManager    database.TxManager
	mediaStorage *media.Storage

	// Auth
	tokenCodec    *service.TokenCodec
	authenticator *service.Authenticator

	// Use Cases
	userUseCase     userUsecase.UseCase
	songUseCase     catalogUsecase.SongUseCase
	artistUseCase   catalogUsecase.ArtistUseCase
	locationUseCase catalogUsecase.LocationUseCase

	// Metrics
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Servers
	apiServer     *http.Server
	gatewayServer *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	mediaStorageInit    sync.Once
	tokenCodecInit      sync.Once
	authenticatorInit   sync.Once
	userUseCaseInit     sync.Once
	songUseCaseInit     sync.Once
	artistUseCaseInit   sync.Once
	locationUseCaseInit sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	apiServerInit       sync.Once
	gatewayServerInit   sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	rootCtx, rootCancel := context.WithCancel(context.Background())
	return &Container{
		config:     cfg,
		rootCtx:    rootCtx,
		rootCancel: rootCancel,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MediaStorage returns the blob-backed media storage.
func (c *Container) MediaStorage() (*media.Storage, error) {
	var err error
	c.mediaStorageInit.Do(func() {
		c.mediaStorage, err = c.initMediaStorage()
		if err != nil {
			c.initErrors["mediaStorage"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["mediaStorage"]; exists {
		return nil, storedErr
	}
	return c.mediaStorage, nil
}

// TokenCodec returns the identity token codec.
// It fails when the signing secret is not configured.
func (c *Container) TokenCodec() (*service.TokenCodec, error) {
	var err error
	c.tokenCodecInit.Do(func() {
		c.tokenCodec, err = c.initTokenCodec()
		if err != nil {
			c.initErrors["tokenCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// Authenticator returns the request authenticator.
func (c *Container) Authenticator() (*service.Authenticator, error) {
	var err error
	c.authenticatorInit.Do(func() {
		c.authenticator, err = c.initAuthenticator()
		if err != nil {
			c.initErrors["authenticator"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authenticator"]; exists {
		return nil, storedErr
	}
	return c.authenticator, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// SongUseCase returns the song use case instance.
func (c *Container) SongUseCase() (catalogUsecase.SongUseCase, error) {
	var err error
	c.songUseCaseInit.Do(func() {
		c.songUseCase, err = c.initSongUseCase()
		if err != nil {
			c.initErrors["songUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["songUseCase"]; exists {
		return nil, storedErr
	}
	return c.songUseCase, nil
}

// ArtistUseCase returns the artist use case instance.
func (c *Container) ArtistUseCase() (catalogUsecase.ArtistUseCase, error) {
	var err error
	c.artistUseCaseInit.Do(func() {
		c.artistUseCase, err = c.initArtistUseCase()
		if err != nil {
			c.initErrors["artistUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["artistUseCase"]; exists {
		return nil, storedErr
	}
	return c.artistUseCase, nil
}

// LocationUseCase returns the location use case instance.
func (c *Container) LocationUseCase() (catalogUsecase.LocationUseCase, error) {
	var err error
	c.locationUseCaseInit.Do(func() {
		c.locationUseCase, err = c.initLocationUseCase()
		if err != nil {
			c.initErrors["locationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["locationUseCase"]; exists {
		return nil, storedErr
	}
	return c.locationUseCase, nil
}

// MetricsProvider returns the OpenTelemetry metrics provider.
// Returns nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// Returns a no-op implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// APIServer returns the resource API HTTP server instance.
func (c *Container) APIServer() (*http.Server, error) {
	var err error
	c.apiServerInit.Do(func() {
		c.apiServer, err = c.initAPIServer()
		if err != nil {
			c.initErrors["apiServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["apiServer"]; exists {
		return nil, storedErr
	}
	return c.apiServer, nil
}

// GatewayServer returns the edge gateway HTTP server instance.
func (c *Container) GatewayServer() (*http.Server, error) {
	var err error
	c.gatewayServerInit.Do(func() {
		c.gatewayServer, err = c.initGatewayServer()
		if err != nil {
			c.initErrors["gatewayServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["gatewayServer"]; exists {
		return nil, storedErr
	}
	return c.gatewayServer, nil
}

// MetricsServer returns the Prometheus metrics HTTP server instance.
// Returns nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Stop container-owned background goroutines.
	c.rootCancel()

	var shutdownErrors []error

	if c.apiServer != nil {
		if err := c.apiServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("api server shutdown: %w", err))
		}
	}

	if c.gatewayServer != nil {
		if err := c.gatewayServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("gateway server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.mediaStorage != nil {
		if err := c.mediaStorage.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("media storage close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initMediaStorage opens the configured media bucket.
func (c *Container) initMediaStorage() (*media.Storage, error) {
	storage, err := media.OpenStorage(context.Background(), c.config.MediaBucketURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open media storage: %w", err)
	}
	return storage, nil
}

// initTokenCodec creates the token codec from the configured signing secret.
func (c *Container) initTokenCodec() (*service.TokenCodec, error) {
	if err := c.config.ValidateAuth(); err != nil {
		return nil, err
	}

	codec, err := service.NewTokenCodec(c.config.JWTSecret, c.config.AuthTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}
	return codec, nil
}

// initAuthenticator creates the request authenticator backed by the token codec.
func (c *Container) initAuthenticator() (*service.Authenticator, error) {
	codec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for authenticator: %w", err)
	}
	return service.NewAuthenticator(codec), nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUsecase.UseCase, error) {
	userRepo, err := c.userRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	codec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for user use case: %w", err)
	}

	useCase, err := userUsecase.NewUserUseCase(userRepo, codec)
	if err != nil {
		return nil, fmt.Errorf("failed to create user use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
	}

	return userUsecase.NewUserUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initSongUseCase creates the song use case with all its dependencies.
func (c *Container) initSongUseCase() (catalogUsecase.SongUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for song use case: %w", err)
	}

	songRepo, err := c.songRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get song repository for song use case: %w", err)
	}

	artistRepo, err := c.artistRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get artist repository for song use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for song use case: %w", err)
	}

	useCase := catalogUsecase.NewSongUseCase(txManager, songRepo, artistRepo)

	return catalogUsecase.NewSongUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initArtistUseCase creates the artist use case with all its dependencies.
func (c *Container) initArtistUseCase() (catalogUsecase.ArtistUseCase, error) {
	artistRepo, err := c.artistRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get artist repository for artist use case: %w", err)
	}
	return catalogUsecase.NewArtistUseCase(artistRepo), nil
}

// initLocationUseCase creates the location use case with all its dependencies.
func (c *Container) initLocationUseCase() (catalogUsecase.LocationUseCase, error) {
	locationRepo, err := c.locationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get location repository for location use case: %w", err)
	}
	return catalogUsecase.NewLocationUseCase(locationRepo), nil
}
