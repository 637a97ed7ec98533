// Package localdb serves trader stats, positions and transactions from a
// local SQLite database previously populated by the indexing pipeline.
package localdb

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"polymarket_explorer/internal/apperr"
	"polymarket_explorer/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TraderRecord mirrors one row of the traders table.
type TraderRecord struct {
	TraderAddress        string  `gorm:"column:trader_address;primaryKey"`
	TotalMarketsEntered  uint32  `gorm:"column:total_markets_entered"`
	TotalMarketsResolved uint32  `gorm:"column:total_markets_resolved"`
	TotalWins            uint32  `gorm:"column:total_wins"`
	Accuracy             float64 `gorm:"column:accuracy"`
	TotalInvested        float64 `gorm:"column:total_invested"`
	TotalReturned        float64 `gorm:"column:total_returned"`
	ROI                  float64 `gorm:"column:roi"`
}

func (TraderRecord) TableName() string { return "traders" }

// PositionRecord mirrors one row of the positions table.
type PositionRecord struct {
	ID              uint    `gorm:"primaryKey;autoIncrement"`
	TraderAddress   string  `gorm:"column:trader_address;index"`
	TokenID         string  `gorm:"column:token_id"`
	MarketID        string  `gorm:"column:market_id;index"`
	Side            string  `gorm:"column:side"`
	SharesHeld      float64 `gorm:"column:shares_held"`
	AvgEntryPrice   float64 `gorm:"column:avg_entry_price"`
	FirstEntryBlock *uint64 `gorm:"column:first_entry_block"`
}

func (PositionRecord) TableName() string { return "positions" }

// TransactionRecord mirrors one row of the transactions table.
type TransactionRecord struct {
	ID              uint    `gorm:"primaryKey;autoIncrement"`
	BlockNumber     uint64  `gorm:"column:block_number;index"`
	TransactionHash string  `gorm:"column:transaction_hash"`
	TraderAddress   string  `gorm:"column:trader_address;index"`
	TokenID         string  `gorm:"column:token_id"`
	Side            string  `gorm:"column:side"`
	Action          string  `gorm:"column:action"`
	Shares          float64 `gorm:"column:shares"`
	USDCAmount      float64 `gorm:"column:usdc_amount"`
	MarketID        string  `gorm:"column:market_id;index"`
}

func (TransactionRecord) TableName() string { return "transactions" }

// Store is the SQLite-backed data source for trader stats, positions and
// transactions. Read failures surface as data-source failures; row-level
// anomalies surface as parse failures.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

var (
	_ domain.TraderStatsProvider = (*Store)(nil)
	_ domain.PositionProvider    = (*Store)(nil)
	_ domain.TransactionProvider = (*Store)(nil)
)

// Open opens (or creates) the local database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create DB directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&TraderRecord{}, &PositionRecord{}, &TransactionRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{
		db:     db,
		logger: slog.Default().With("module", "localdb"),
	}, nil
}

// GetTraders returns all traders with at least minResolvedMarkets resolved.
func (s *Store) GetTraders(ctx context.Context, minResolvedMarkets uint32) ([]domain.Trader, error) {
	var records []TraderRecord
	err := s.db.WithContext(ctx).
		Where("total_markets_resolved >= ?", minResolvedMarkets).
		Find(&records).Error
	if err != nil {
		return nil, s.unavailable(err)
	}
	return standardizeTraders(records)
}

// GetTradersByAddresses returns the traders matching the given addresses.
func (s *Store) GetTradersByAddresses(ctx context.Context, addresses []string) ([]domain.Trader, error) {
	if len(addresses) == 0 {
		return nil, nil
	}

	var records []TraderRecord
	err := s.db.WithContext(ctx).
		Where("trader_address IN ?", addresses).
		Find(&records).Error
	if err != nil {
		return nil, s.unavailable(err)
	}
	return standardizeTraders(records)
}

// GetPositions returns all open positions for a market's condition id.
func (s *Store) GetPositions(ctx context.Context, conditionID string) ([]domain.Position, error) {
	var records []PositionRecord
	err := s.db.WithContext(ctx).
		Where("market_id = ?", conditionID).
		Find(&records).Error
	if err != nil {
		return nil, s.unavailable(err)
	}
	return standardizePositions(records)
}

// GetRecentTransactions returns transactions for a market's condition id.
// TODO: filter by daysBack once block timestamps are indexed.
func (s *Store) GetRecentTransactions(ctx context.Context, conditionID string, daysBack uint32) ([]domain.Transaction, error) {
	var records []TransactionRecord
	err := s.db.WithContext(ctx).
		Where("market_id = ?", conditionID).
		Order("block_number DESC").
		Find(&records).Error
	if err != nil {
		return nil, s.unavailable(err)
	}
	return standardizeTransactions(records)
}

// SaveTraders upserts trader stat rows (used by the import pipeline).
func (s *Store) SaveTraders(ctx context.Context, records []TraderRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Save(&records).Error; err != nil {
		return s.unavailable(err)
	}
	return nil
}

// SavePositions inserts position rows.
func (s *Store) SavePositions(ctx context.Context, records []PositionRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&records).Error; err != nil {
		return s.unavailable(err)
	}
	return nil
}

// SaveTransactions inserts transaction rows.
func (s *Store) SaveTransactions(ctx context.Context, records []TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&records).Error; err != nil {
		return s.unavailable(err)
	}
	return nil
}

func (s *Store) unavailable(err error) error {
	s.logger.Warn("local database query failed", slog.Any("error", err))
	return apperr.DataSource(&apperr.APIUnavailable{
		Service: "Local database",
		Reason:  err.Error(),
	})
}
