// Package app wires configuration, logging, storage and data sources
// together for the command layer.
package app

import (
	"log/slog"

	"polymarket_explorer/internal/infra"
	"polymarket_explorer/internal/infra/gamma"
	"polymarket_explorer/internal/infra/localdb"
	"polymarket_explorer/internal/service"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config   *infra.Config
	Store    *localdb.Store
	Markets  *gamma.Source
	Analyzer *service.Analyzer
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize performs core system initialization.
func (b *Bootstrap) Initialize(configPath string) error {
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err // Let main handle the error
	}
	b.Config = cfg

	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)
	slog.Info("starting", slog.String("app", cfg.App.Name), slog.String("version", cfg.App.Version))

	store, err := localdb.Open(cfg.LocalDB.Path)
	if err != nil {
		return err
	}
	b.Store = store
	slog.Info("local database ready", slog.String("path", cfg.LocalDB.Path))

	b.Markets = gamma.NewSource(cfg)
	b.Analyzer = service.NewAnalyzer(cfg, store, store, store)

	return nil
}
