package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mocklet/core/config"
	"mocklet/core/loader"
	"mocklet/core/logger"
	"mocklet/core/middleware/rayid"
	"mocklet/core/middleware/requestlog"
	"mocklet/core/server"
	"mocklet/core/storage"
	"mocklet/feature/mock"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd creates the mocklet command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mocklet",
		Short: "Single-route mock API server",
		Long: `Mocklet serves one endpoint with a fixed response for local development and testing.
The response is literal text, literal JSON, or the path of a .json, .txt or .html file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".", cmd.Flags())
	if err != nil {
		return err
	}

	// 2. Validate before anything is bound
	if err := cfg.Mock.Validate(); err != nil {
		return err
	}
	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	// 3. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logg.Sync() }()

	// 4. Response resolution, optionally backed by object storage
	resolver, err := newResolver(cmd.Context(), cfg.Storage, logg)
	if err != nil {
		return err
	}

	// 5. HTTP app with the mock feature
	app, err := newApp(cfg, resolver, logg)
	if err != nil {
		return err
	}

	// 6. Bind
	ln, err := server.Listen(cfg.Server)
	if err != nil {
		return err
	}
	announce(cmd.OutOrStdout(), cfg.Server.PublicURL(cfg.Mock.Endpoint))
	logg.Info("Mock server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("endpoint", cfg.Mock.Endpoint),
		zap.Int("status", cfg.Mock.StatusCode()),
	)

	// 7. Serve until interrupted
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.Serve(ctx, app, ln, logg)
}

func newResolver(ctx context.Context, cfg storage.Config, logg *zap.Logger) (*mock.Resolver, error) {
	if !cfg.Enabled {
		return mock.NewResolver(nil, ""), nil
	}

	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	// A missing bucket is not fatal: s3:// specifiers then fall back to literals or fail per request.
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if exists, err := client.BucketExists(checkCtx, cfg.Bucket); err != nil {
		logg.Warn("Storage bucket check failed", zap.String("bucket", cfg.Bucket), zap.Error(err))
	} else if !exists {
		logg.Warn("Storage bucket does not exist", zap.String("bucket", cfg.Bucket))
	} else {
		logg.Info("Object storage enabled", zap.String("bucket", cfg.Bucket))
	}

	return mock.NewResolver(client, cfg.Bucket), nil
}

func newApp(cfg *config.Config, resolver *mock.Resolver, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "mocklet",
	})

	app.Use(rayid.New())
	app.Use(requestlog.New(logg))
	if cfg.Server.CORS {
		app.Use(cors.New())
	}

	mgr := loader.NewManager(logg)
	mgr.Register(mock.NewFeature(cfg.Mock, resolver, logg))
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func announce(w io.Writer, url string) {
	color.New(color.FgGreen).Fprintf(w, "Mock API is running at %s\n", url)
}

// describe renders a fatal error as the message shown to the user.
func describe(err error) string {
	var bindErr *server.BindError
	switch {
	case errors.Is(err, mock.ErrInvalidEndpoint):
		return `Error: The API endpoint must start with "/".`
	case errors.As(err, &bindErr) && errors.Is(err, server.ErrPortInUse):
		return fmt.Sprintf("Error: Port %d is already in use.", bindErr.Port)
	case errors.As(err, &bindErr):
		return fmt.Sprintf("Server error: %v", bindErr.Unwrap())
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
