package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/karaoke/internal/app"
	"github.com/allisson/karaoke/internal/config"
)

// shutdowner is anything that can be gracefully stopped.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// namedShutdowner pairs a shutdowner with a label for error reporting.
type namedShutdowner struct {
	name   string
	target shutdowner
}

// starter is anything that can serve until its context is cancelled.
type starter interface {
	Start(ctx context.Context) error
}

// RunServer starts the resource API server with graceful shutdown support.
// Loads configuration, initializes the DI container, and starts the API and
// metrics servers. Blocks until receiving SIGINT/SIGTERM or encountering a
// fatal error.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()

	if err := cfg.ValidateAuth(); err != nil {
		return err
	}

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting api server", slog.String("version", version))

	defer closeContainer(container, logger)

	server, err := container.APIServer()
	if err != nil {
		return fmt.Errorf("failed to initialize api server: %w", err)
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	servers := []namedShutdowner{{"api server", server}}
	starters := []starter{server}

	if metricsServer != nil {
		servers = append(servers, namedShutdowner{"metrics server", metricsServer})
		starters = append(starters, metricsServer)
	}

	return runUntilSignal(ctx, cfg, logger, starters, servers)
}

// runUntilSignal serves until SIGINT/SIGTERM arrives or a server fails, then
// gracefully stops every server within the configured timeout.
func runUntilSignal(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	starters []starter,
	servers []namedShutdowner,
) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	for _, s := range starters {
		g.Go(func() error {
			return s.Start(gctx)
		})
	}

	// Shutdown goroutine: fires on signal or on the first server error.
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		var shutdownErrors []error
		for _, s := range servers {
			if err := s.target.Shutdown(shutdownCtx); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("%s shutdown: %w", s.name, err))
			}
		}
		return errors.Join(shutdownErrors...)
	})

	return g.Wait()
}
