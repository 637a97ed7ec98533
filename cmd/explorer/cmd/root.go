// Package cmd - explorer CLI commands
package cmd

import (
	"fmt"
	"os"

	"polymarket_explorer/internal/app"
	"polymarket_explorer/internal/cli"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	boot = app.NewBootstrap()
)

var rootCmd = &cobra.Command{
	Use:   "explorer",
	Short: "Polymarket market data explorer",
	Long: `Polymarket market data explorer

Fetches market groups from the Gamma API, normalizes them into a
canonical schema, and runs position and trader analyses over the
locally indexed on-chain data.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return boot.Initialize(cfgFile)
	},
}

// Execute runs the root command. Pipeline failures are rendered with
// their stage tip and terminate the process with a non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.Report(os.Stderr, err)
		os.Exit(cli.ExitCode)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "configs/config.yaml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(tradersCmd)
	rootCmd.AddCommand(watchCmd)
}

// initConfig loads .env before the YAML config so POLY_* overrides apply.
func initConfig() error {
	if err := godotenv.Load(); err != nil {
		if verbose {
			fmt.Println("Warning: .env file not found, using environment variables")
		}
	}
	return nil
}
