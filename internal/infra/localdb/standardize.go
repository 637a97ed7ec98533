package localdb

import (
	"polymarket_explorer/internal/apperr"
	"polymarket_explorer/internal/domain"

	"github.com/shopspring/decimal"
)

// Row-to-domain conversion. Structural anomalies (rows the indexer should
// never have written) are raised as parse failures; the analyzer applies
// its own semantic checks later.

func standardizeTraders(records []TraderRecord) ([]domain.Trader, error) {
	traders := make([]domain.Trader, 0, len(records))
	for i := range records {
		rec := &records[i]
		if rec.TraderAddress == "" {
			return nil, apperr.Parse(&apperr.MissingField{
				FieldName:  "trader_address",
				ParentType: "traders row",
			})
		}
		traders = append(traders, domain.Trader{
			Address:              rec.TraderAddress,
			TotalMarketsEntered:  rec.TotalMarketsEntered,
			TotalMarketsResolved: rec.TotalMarketsResolved,
			TotalWins:            rec.TotalWins,
			Accuracy:             decimal.NewFromFloat(rec.Accuracy),
			TotalInvested:        decimal.NewFromFloat(rec.TotalInvested),
			TotalReturned:        decimal.NewFromFloat(rec.TotalReturned),
			ROI:                  decimal.NewFromFloat(rec.ROI),
		})
	}
	return traders, nil
}

func standardizePositions(records []PositionRecord) ([]domain.Position, error) {
	positions := make([]domain.Position, 0, len(records))
	for i := range records {
		rec := &records[i]
		if rec.TraderAddress == "" {
			return nil, apperr.Parse(&apperr.MissingField{
				FieldName:  "trader_address",
				ParentType: "positions row",
			})
		}
		if rec.TokenID == "" {
			return nil, apperr.Parse(&apperr.MissingField{
				FieldName:  "token_id",
				ParentType: "positions row",
			})
		}
		positions = append(positions, domain.Position{
			TraderAddress:   rec.TraderAddress,
			TokenID:         rec.TokenID,
			MarketID:        rec.MarketID,
			Side:            rec.Side,
			SharesHeld:      decimal.NewFromFloat(rec.SharesHeld),
			AvgEntryPrice:   decimal.NewFromFloat(rec.AvgEntryPrice),
			FirstEntryBlock: rec.FirstEntryBlock,
		})
	}
	return positions, nil
}

func standardizeTransactions(records []TransactionRecord) ([]domain.Transaction, error) {
	transactions := make([]domain.Transaction, 0, len(records))
	for i := range records {
		rec := &records[i]
		if rec.TransactionHash == "" {
			return nil, apperr.Parse(&apperr.MissingField{
				FieldName:  "transaction_hash",
				ParentType: "transactions row",
			})
		}
		transactions = append(transactions, domain.Transaction{
			BlockNumber:     rec.BlockNumber,
			TransactionHash: rec.TransactionHash,
			TraderAddress:   rec.TraderAddress,
			TokenID:         rec.TokenID,
			Side:            rec.Side,
			Action:          rec.Action,
			Shares:          decimal.NewFromFloat(rec.Shares),
			USDCAmount:      decimal.NewFromFloat(rec.USDCAmount),
			MarketID:        rec.MarketID,
		})
	}
	return transactions, nil
}
