package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Outcome sides for binary markets.
const (
	SideYes = "YES"
	SideNo  = "NO"
)

// Market is the canonical market shape every data source is normalized
// into. Prices are probabilities in [0, 1].
type Market struct {
	Slug        string `json:"slug"`
	Question    string `json:"question"`
	ConditionID string `json:"condition_id"`
	YesTokenID  string `json:"yes_token_id"`
	NoTokenID   string `json:"no_token_id"`
	Active      bool   `json:"active"`
	Closed      bool   `json:"closed"`

	YesPrice       decimal.Decimal `json:"yes_price"`
	NoPrice        decimal.Decimal `json:"no_price"`
	LastTradePrice decimal.Decimal `json:"last_trade_price"`
	BestBid        decimal.Decimal `json:"best_bid"`
	BestAsk        decimal.Decimal `json:"best_ask"`

	Volume    decimal.Decimal `json:"volume"`
	Volume24h decimal.Decimal `json:"volume_24h"`
	Volume1w  decimal.Decimal `json:"volume_1w"`
	Volume1m  decimal.Decimal `json:"volume_1m"`
	Volume1y  decimal.Decimal `json:"volume_1y"`
	Liquidity decimal.Decimal `json:"liquidity"`

	// UpdatedAt is zero when the source did not report a timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// MarketGroup is a set of related markets published under one event slug.
// Volume and liquidity are totals across the group's markets.
type MarketGroup struct {
	Slug      string          `json:"slug"`
	Title     string          `json:"title"`
	Active    bool            `json:"active"`
	Closed    bool            `json:"closed"`
	Volume    decimal.Decimal `json:"volume"`
	Liquidity decimal.Decimal `json:"liquidity"`
	Markets   []Market        `json:"markets"`
}

// Spread returns the bid/ask spread, or zero when quotes are missing.
func (m *Market) Spread() decimal.Decimal {
	if m.BestAsk.IsZero() && m.BestBid.IsZero() {
		return decimal.Zero
	}
	return m.BestAsk.Sub(m.BestBid)
}

// ImpliedProbability returns the market-implied probability of YES.
func (m *Market) ImpliedProbability() decimal.Decimal {
	return m.YesPrice
}

// Tradable reports whether the market is open for trading.
func (m *Market) Tradable() bool {
	return m.Active && !m.Closed
}

// FindMarket returns the market with the given slug, or nil.
func (g *MarketGroup) FindMarket(slug string) *Market {
	for i := range g.Markets {
		if g.Markets[i].Slug == slug {
			return &g.Markets[i]
		}
	}
	return nil
}
