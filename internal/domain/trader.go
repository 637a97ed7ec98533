package domain

import "github.com/shopspring/decimal"

// Trade actions.
const (
	ActionBuy  = "BUY"
	ActionSell = "SELL"
)

// Trader holds aggregate performance stats for one wallet.
type Trader struct {
	Address              string          `json:"trader_address"`
	TotalMarketsEntered  uint32          `json:"total_markets_entered"`
	TotalMarketsResolved uint32          `json:"total_markets_resolved"`
	TotalWins            uint32          `json:"total_wins"`
	Accuracy             decimal.Decimal `json:"accuracy"`
	TotalInvested        decimal.Decimal `json:"total_invested"`
	TotalReturned        decimal.Decimal `json:"total_returned"`
	ROI                  decimal.Decimal `json:"roi"`
}

// Position is an open holding of one outcome token by one trader.
type Position struct {
	TraderAddress   string          `json:"trader_address"`
	TokenID         string          `json:"token_id"`
	MarketID        string          `json:"market_id"`
	Side            string          `json:"side"` // SideYes or SideNo
	SharesHeld      decimal.Decimal `json:"shares_held"`
	AvgEntryPrice   decimal.Decimal `json:"avg_entry_price"`
	FirstEntryBlock *uint64         `json:"first_entry_block,omitempty"`
}

// ID returns a stable identifier for the position.
func (p *Position) ID() string {
	return p.TraderAddress + "/" + p.TokenID
}

// CostBasis returns shares * average entry price.
func (p *Position) CostBasis() decimal.Decimal {
	return p.SharesHeld.Mul(p.AvgEntryPrice)
}

// Transaction is a single on-chain trade.
type Transaction struct {
	BlockNumber     uint64          `json:"block_number"`
	TransactionHash string          `json:"transaction_hash"`
	TraderAddress   string          `json:"trader_address"`
	TokenID         string          `json:"token_id"`
	Side            string          `json:"side"`   // SideYes or SideNo
	Action          string          `json:"action"` // ActionBuy or ActionSell
	Shares          decimal.Decimal `json:"shares"`
	USDCAmount      decimal.Decimal `json:"usdc_amount"`
	MarketID        string          `json:"market_id"`
}

// MarketResolution records the settled outcome of a market.
type MarketResolution struct {
	ConditionID     string `json:"condition_id"`
	Outcome         string `json:"outcome"`
	ResolutionBlock uint64 `json:"resolution_block"`
	YesTokenID      string `json:"yes_token_id"`
	NoTokenID       string `json:"no_token_id"`
}
