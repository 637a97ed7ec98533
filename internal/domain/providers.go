package domain

import "context"

// MarketProvider serves market metadata from a remote source.
type MarketProvider interface {
	// GetMarketGroup fetches a market group (event) by slug.
	GetMarketGroup(ctx context.Context, slug string) (*MarketGroup, error)
	// GetMarket fetches a single market within a group.
	GetMarket(ctx context.Context, groupSlug, marketSlug string) (*Market, error)
}

// TraderStatsProvider serves aggregate trader performance stats.
type TraderStatsProvider interface {
	GetTraders(ctx context.Context, minResolvedMarkets uint32) ([]Trader, error)
	GetTradersByAddresses(ctx context.Context, addresses []string) ([]Trader, error)
}

// PositionProvider serves open positions for a market.
type PositionProvider interface {
	GetPositions(ctx context.Context, conditionID string) ([]Position, error)
}

// TransactionProvider serves recent trades for a market.
type TransactionProvider interface {
	GetRecentTransactions(ctx context.Context, conditionID string, daysBack uint32) ([]Transaction, error)
}
