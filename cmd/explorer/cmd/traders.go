package cmd

import (
	"os"

	"polymarket_explorer/internal/cli"

	"github.com/spf13/cobra"
)

var tradersCmd = &cobra.Command{
	Use:   "traders",
	Short: "Rank locally indexed traders by ROI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := boot.Analyzer.Leaderboard(cmd.Context())
		if err != nil {
			return err
		}
		return cli.NewPrinter(os.Stdout).Leaderboard(board)
	},
}
