package cmd

import (
	"os"

	"polymarket_explorer/internal/cli"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <group-slug> <market-slug>",
	Short: "Fetch one market and run the full analysis report",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupSlug, marketSlug := args[0], args[1]

		market, err := boot.Markets.GetMarket(cmd.Context(), groupSlug, marketSlug)
		if err != nil {
			return err
		}

		report, err := boot.Analyzer.AnalyzeMarket(cmd.Context(), market)
		if err != nil {
			return err
		}

		return cli.NewPrinter(os.Stdout).MarketReport(report)
	},
}
