package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"polymarket_explorer/internal/infra/clob"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <group-slug> <market-slug>",
	Short: "Stream live price updates for one market over the CLOB websocket",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupSlug, marketSlug := args[0], args[1]

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		market, err := boot.Markets.GetMarket(ctx, groupSlug, marketSlug)
		if err != nil {
			return err
		}

		watcher := clob.NewWatcher(boot.Config.API.Clob.WSURL, func(update clob.PriceUpdate) {
			side := "NO"
			if update.AssetID == market.YesTokenID {
				side = "YES"
			}
			fmt.Printf("  %s  %s  %s  %s\n", market.Slug, side, update.EventType, update.Price)
		})

		return watcher.Watch(ctx, []string{market.YesTokenID, market.NoTokenID})
	},
}
