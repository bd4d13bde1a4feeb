package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/riskibarqy/player-stats-etl/internal/config"
	"github.com/riskibarqy/player-stats-etl/internal/observability"
	"github.com/riskibarqy/player-stats-etl/internal/platform/logging"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var rootCmd = &cobra.Command{
	Use:           "player-stats-etl",
	Short:         "player-stats-etl scrapes fbref squad pages and appends player statistics to Postgres.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupRuntime(cmd.Context())
	},
}

// runtime holds process wide dependencies shared by every subcommand.
type runtime struct {
	cfg      config.Config
	logger   *logging.Logger
	shutdown func(context.Context) error
}

var current *runtime

func setupRuntime(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)

	shutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}

	current = &runtime{cfg: cfg, logger: logger, shutdown: shutdown}
	return nil
}

func teardownRuntime() {
	if current == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := current.shutdown(ctx); err != nil {
		current.logger.Warn("uptrace shutdown failed", "error", err)
	}
	_ = current.logger.Sync()
	current = nil
}

// ExecuteContext runs the selected subcommand and releases runtime resources. The
// error is already reported on stderr when returned.
func ExecuteContext(ctx context.Context) error {
	defer teardownRuntime()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if current != nil {
			current.logger.Error("command failed", "command", commandName(), "error", err)
		}
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func commandName() string {
	cmd, _, err := rootCmd.Find(os.Args[1:])
	if err != nil || cmd == nil {
		return rootCmd.Name()
	}
	return cmd.Name()
}
