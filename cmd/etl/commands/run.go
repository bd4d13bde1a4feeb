package commands

import (
	"fmt"

	"github.com/riskibarqy/player-stats-etl/internal/app"
	"github.com/spf13/cobra"
)

var (
	runDryRun bool
	runFormat string
)

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Load into memory and print the normalized records instead of writing to Postgres.")
	runCmd.Flags().StringVar(&runFormat, "format", formatTable, "Output format for --dry-run records (table|json).")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--dry-run] [--format table|json]",
	Short: "Extracts every configured squad page, normalizes the players and loads them into player_data.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFormat(runFormat); err != nil {
			return err
		}

		ctx := cmd.Context()
		pipeline, err := app.NewPipeline(ctx, current.cfg, current.logger, app.PipelineOptions{DryRun: runDryRun})
		if err != nil {
			return fmt.Errorf("build pipeline: %w", err)
		}
		defer pipeline.Close()

		summary, err := pipeline.Service.Run(ctx)
		if err != nil {
			return fmt.Errorf("etl run: %w", err)
		}

		if pipeline.Sink != nil {
			return writeRecords(cmd.OutOrStdout(), runFormat, pipeline.Sink.Records())
		}
		return writeSummary(cmd.OutOrStdout(), summary)
	},
}
