package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/karaoke/internal/app"
	"github.com/allisson/karaoke/internal/config"
)

// RunGateway starts the edge gateway server that relays /api requests to the
// configured upstream. The gateway carries no database or auth state, so only
// the forwarder and logger are initialized.
func RunGateway(ctx context.Context, version string) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting gateway server",
		slog.String("version", version),
		slog.String("upstream", cfg.UpstreamBaseURL),
	)

	defer closeContainer(container, logger)

	server, err := container.GatewayServer()
	if err != nil {
		return fmt.Errorf("failed to initialize gateway server: %w", err)
	}

	return runUntilSignal(
		ctx,
		cfg,
		logger,
		[]starter{server},
		[]namedShutdowner{{"gateway server", server}},
	)
}
