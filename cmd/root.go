package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wiring-guard/core/config"
	"wiring-guard/core/logger"
	"wiring-guard/feature/drift"
	"wiring-guard/feature/drift/checks"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd checks the repository in the working directory when called without subcommands.
var RootCmd = &cobra.Command{
	Use:   "wiring-guard",
	Short: "Check that every template and static file is wired into the server",
	Long: `wiring-guard verifies that src/main.rs references every templates/*.tera
file as "../templates/<name>" and every static/* file as "../static/<name>".
Run it from the repository root. It prints one line per unreferenced asset and
exits with status 1 if there is any.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	// Diagnostics are already on stdout.
	if errors.Is(err, drift.ErrDriftDetected) {
		os.Exit(1)
	}

	// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
	cfg := &logger.Config{
		Level:  "debug",
		Format: "console",
	}

	l, logErr := logger.New(cfg)
	if logErr == nil {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

// bootstrap loads configuration from the working directory and builds the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logg, nil
}

// checkLogger builds the logger for the zero-argument check. A broken .env or
// environment only affects logging here, never the check result.
func checkLogger() *zap.Logger {
	_, logg, err := bootstrap()
	if err == nil {
		return logg
	}

	logg, logErr := logger.New(&logger.Config{Level: "info", Format: "console"})
	if logErr != nil {
		return zap.NewNop()
	}
	logg.Warn("Ignoring configuration, using default logger", zap.Error(err))
	return logg
}

func runCheck(cmd *cobra.Command, args []string) error {
	logg := checkLogger()
	defer func() { _ = logg.Sync() }()

	svc := drift.NewService(afero.NewOsFs(), checks.DefaultLayout(), logg)
	report, err := svc.Check(cmd.Context())
	if err != nil {
		return fmt.Errorf("drift check failed: %w", err)
	}

	if err := drift.WriteDiagnostics(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}
	if !report.OK() {
		return drift.ErrDriftDetected
	}
	return nil
}
