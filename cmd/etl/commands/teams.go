package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(teamsCmd)
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Lists the squad pages a run will scrape.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		writeTeams(cmd.OutOrStdout(), current.cfg.Teams)
		return nil
	},
}
