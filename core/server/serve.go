package server

import (
	"context"
	"net"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Serve runs app on ln until ctx is cancelled or the listener fails.
// Cancellation triggers a graceful shutdown and a nil return.
func Serve(ctx context.Context, app *fiber.App, ln net.Listener, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			return err
		}
		return <-errCh
	}
}
