// Package http provides the HTTP server wrapper and shared gin middleware.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Server wraps an http.Server with graceful shutdown and request timeouts.
// The handler is assembled by the caller (api router or gateway router).
type Server struct {
	server *http.Server
	logger *slog.Logger
	name   string
}

// NewServer creates a new HTTP server for the given handler
func NewServer(
	name string,
	host string,
	port int,
	handler http.Handler,
	logger *slog.Logger,
) *Server {
	return &Server{
		name:   name,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server",
		slog.String("name", s.name),
		slog.String("addr", s.server.Addr),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start %s server: %w", s.name, err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server", slog.String("name", s.name))
	return s.server.Shutdown(ctx)
}
