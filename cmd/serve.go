package cmd

import (
	"fmt"

	"wiring-guard/core/loader"
	"wiring-guard/core/logger"
	"wiring-guard/core/middleware/auth"
	"wiring-guard/core/middleware/rayid"
	"wiring-guard/feature/drift"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "wiring-guard/docs/swagger"
)

// @title wiring-guard API
// @version 1.0
// @description Reports templates and static files that are not wired into the server source.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve drift checks over HTTP",
	Long:  `Starts an HTTP server that runs the drift check on every request to /drift.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// 1. Configuration and logger
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logg.Sync() }()
		zap.ReplaceGlobals(logg)

		// 2. Fiber app
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 3. Features
		mgr := loader.NewManager()
		mgr.Register(drift.NewFeature(afero.NewOsFs(), logg))

		// 4. Middleware: RayID first so everything after it is traceable
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !cfg.Server.AuthEnabled() {
			logg.Warn("API key not configured, drift endpoints are unauthenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}

		// 5. Start server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			errCh <- app.Listen(cfg.Server.Addr())
		}()

		// 6. Graceful shutdown
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
