package app

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/karaoke/internal/auth/http"
	catalogHTTP "github.com/allisson/karaoke/internal/catalog/http"
	"github.com/allisson/karaoke/internal/gateway"
	"github.com/allisson/karaoke/internal/http"
	"github.com/allisson/karaoke/internal/metrics"
	userHTTP "github.com/allisson/karaoke/internal/user/http"
)

// initAPIServer creates the resource API server with the assembled router.
func (c *Container) initAPIServer() (*http.Server, error) {
	router, err := c.buildAPIRouter()
	if err != nil {
		return nil, err
	}

	return http.NewServer(
		"api",
		c.config.ServerHost,
		c.config.ServerPort,
		router,
		c.Logger(),
	), nil
}

// buildAPIRouter assembles the gin router for the resource API: shared
// middleware, the health endpoint, the public auth endpoints, and the
// token-guarded account and catalog endpoints.
func (c *Container) buildAPIRouter() (*gin.Engine, error) {
	logger := c.Logger()

	userUseCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for api router: %w", err)
	}

	songUseCase, err := c.SongUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get song use case for api router: %w", err)
	}

	artistUseCase, err := c.ArtistUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get artist use case for api router: %w", err)
	}

	locationUseCase, err := c.LocationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get location use case for api router: %w", err)
	}

	authenticator, err := c.Authenticator()
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticator for api router: %w", err)
	}

	mediaStorage, err := c.MediaStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to get media storage for api router: %w", err)
	}

	userHandler := userHTTP.NewUserHandler(userUseCase, mediaStorage, logger)
	songHandler := catalogHTTP.NewSongHandler(songUseCase, logger)
	artistHandler := catalogHTTP.NewArtistHandler(artistUseCase, logger)
	locationHandler := catalogHTTP.NewLocationHandler(locationUseCase, logger)

	gin.SetMode(c.config.GetGinMode())
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())

	if corsMiddleware := http.CORSMiddleware(c.config.CORSEnabled, c.config.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.Use(http.CustomLoggerMiddleware(logger))

	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for api router: %w", err)
		}
		router.Use(metrics.HTTPMetricsMiddleware(provider.MeterProvider(), c.config.MetricsNamespace))
	}

	router.GET("/health", http.HealthHandler)

	api := router.Group("/api")

	// Public auth endpoints, rate limited per client IP.
	auth := api.Group("/auth")
	if c.config.RateLimitLoginEnabled {
		auth.Use(authHTTP.LoginRateLimitMiddleware(
			c.rootCtx,
			c.config.RateLimitLoginRequestsPerSec,
			c.config.RateLimitLoginBurst,
			logger,
		))
	}
	auth.POST("/signup", userHandler.SignupHandler)
	auth.POST("/login", userHandler.LoginHandler)

	// Everything else requires a valid bearer token.
	protected := api.Group("")
	protected.Use(authHTTP.AuthenticationMiddleware(authenticator, logger))

	protected.POST("/auth/logout", userHandler.LogoutHandler)
	protected.GET("/auth/profile", userHandler.ProfileHandler)
	protected.POST("/auth/profile/image", userHandler.UploadProfileImageHandler)

	protected.GET("/songs", songHandler.ListHandler)
	protected.POST("/song", songHandler.CreateHandler)
	protected.GET("/song/:id", songHandler.GetHandler)
	protected.PUT("/song/:id", songHandler.UpdateHandler)
	protected.DELETE("/song/:id", songHandler.DeleteHandler)
	protected.POST("/song/:id/play", songHandler.PlayHandler)
	protected.POST("/song/:id/like", songHandler.LikeHandler)

	protected.GET("/artists", artistHandler.ListHandler)
	protected.POST("/artist", artistHandler.CreateHandler)
	protected.GET("/artist/:id", artistHandler.GetHandler)
	protected.PUT("/artist/:id", artistHandler.UpdateHandler)
	protected.DELETE("/artist/:id", artistHandler.DeleteHandler)

	protected.GET("/locations", locationHandler.ListHandler)
	protected.POST("/location", locationHandler.CreateHandler)
	protected.GET("/location/:id", locationHandler.GetHandler)
	protected.PUT("/location/:id", locationHandler.UpdateHandler)
	protected.DELETE("/location/:id", locationHandler.DeleteHandler)

	return router, nil
}

// initGatewayServer creates the edge gateway server that relays /api requests
// to the API upstream.
func (c *Container) initGatewayServer() (*http.Server, error) {
	logger := c.Logger()

	forwarder, err := gateway.NewForwarder(c.config.UpstreamBaseURL, c.config.UpstreamTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway forwarder: %w", err)
	}

	gin.SetMode(c.config.GetGinMode())
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(http.CustomLoggerMiddleware(logger))
	router.GET("/health", http.HealthHandler)
	router.Any("/api/*path", forwarder.Handler())

	return http.NewServer(
		"gateway",
		c.config.GatewayHost,
		c.config.GatewayPort,
		router,
		logger,
	), nil
}

// initMetricsServer creates the metrics server exposing the Prometheus endpoint.
func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return http.NewMetricsServer(
		c.config.ServerHost,
		c.config.MetricsPort,
		c.Logger(),
		provider,
	), nil
}
