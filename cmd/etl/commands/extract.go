package commands

import (
	"fmt"

	"github.com/riskibarqy/player-stats-etl/internal/app"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Fetches and parses the squad pages and writes the raw records to stdout as JSON.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pipeline, err := app.NewPipeline(ctx, current.cfg, current.logger, app.PipelineOptions{DryRun: true})
		if err != nil {
			return fmt.Errorf("build pipeline: %w", err)
		}
		defer pipeline.Close()

		raws, err := pipeline.Service.Extract(ctx)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), raws)
	},
}
