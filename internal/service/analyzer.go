package service

import (
	"context"
	"math"
	"strconv"
	"time"

	"polymarket_explorer/internal/apperr"
	"polymarket_explorer/internal/domain"
	"polymarket_explorer/internal/infra"

	"github.com/shopspring/decimal"
)

// PositionBreakdown summarizes the open interest in one market.
type PositionBreakdown struct {
	TotalPositions int
	YesShares      decimal.Decimal
	NoShares       decimal.Decimal
	YesHolders     int
	NoHolders      int
	// Concentration is the largest position's share of total cost basis.
	Concentration   decimal.Decimal
	LargestPosition domain.Position
}

// TradeStats summarizes recent trading activity in one market.
type TradeStats struct {
	Transactions int
	Buys         int
	Sells        int
	// VWAP is the volume-weighted average price across the window.
	VWAP decimal.Decimal
}

// MarketReport is the full analysis output for one market.
type MarketReport struct {
	Market    *domain.Market
	Spread    decimal.Decimal
	Implied   decimal.Decimal
	Positions *PositionBreakdown
	Trades    *TradeStats
}

// TraderLeaderboard ranks traders by ROI with distribution stats.
type TraderLeaderboard struct {
	Traders        []domain.Trader
	MeanAccuracy   decimal.Decimal
	AccuracyStdDev decimal.Decimal
}

// Analyzer runs market, position and trader analyses over the configured
// providers. Every anomaly it detects is raised as an analysis failure,
// promoted before it leaves this package.
type Analyzer struct {
	positions  domain.PositionProvider
	traders    domain.TraderStatsProvider
	txs        domain.TransactionProvider
	maxDataAge time.Duration
	minResolve uint32
	topTraders int
	now        func() time.Time
}

// NewAnalyzer creates an analyzer over the given providers.
func NewAnalyzer(cfg *infra.Config, positions domain.PositionProvider, traders domain.TraderStatsProvider, txs domain.TransactionProvider) *Analyzer {
	return &Analyzer{
		positions:  positions,
		traders:    traders,
		txs:        txs,
		maxDataAge: time.Duration(cfg.Analysis.MaxDataAgeMin) * time.Minute,
		minResolve: uint32(cfg.Analysis.MinResolvedMarkets),
		topTraders: cfg.Analysis.TopTraders,
		now:        time.Now,
	}
}

// AnalyzeMarket builds the full report for one market.
func (a *Analyzer) AnalyzeMarket(ctx context.Context, market *domain.Market) (*MarketReport, error) {
	if !market.UpdatedAt.IsZero() {
		age := a.now().Sub(market.UpdatedAt)
		if age > a.maxDataAge {
			return nil, apperr.Analysis(&apperr.StaleData{
				AnalysisType: "market",
				Age:          age.Truncate(time.Second),
				MaxAge:       a.maxDataAge,
			})
		}
	}

	positions, err := a.positions.GetPositions(ctx, market.ConditionID)
	if err != nil {
		return nil, err
	}

	breakdown, err := a.breakdownPositions(market, positions)
	if err != nil {
		return nil, err
	}

	transactions, err := a.txs.GetRecentTransactions(ctx, market.ConditionID, 7)
	if err != nil {
		return nil, err
	}

	trades, err := tradeStats(transactions)
	if err != nil {
		return nil, err
	}

	return &MarketReport{
		Market:    market,
		Spread:    market.Spread(),
		Implied:   market.ImpliedProbability(),
		Positions: breakdown,
		Trades:    trades,
	}, nil
}

// breakdownPositions validates and aggregates the open positions.
func (a *Analyzer) breakdownPositions(market *domain.Market, positions []domain.Position) (*PositionBreakdown, error) {
	if len(positions) == 0 {
		return nil, apperr.Analysis(&apperr.InsufficientData{
			AnalysisType: "position",
			Reason:       "no open positions for market '" + market.Slug + "'",
		})
	}

	breakdown := &PositionBreakdown{TotalPositions: len(positions)}
	totalCost := decimal.Zero
	largestCost := decimal.Zero

	for i := range positions {
		pos := &positions[i]

		if !pos.SharesHeld.IsPositive() {
			return nil, apperr.Analysis(&apperr.InvalidPosition{
				PositionID: pos.ID(),
				Reason:     "shares held must be positive, got " + pos.SharesHeld.String(),
			})
		}
		if pos.AvgEntryPrice.IsNegative() || pos.AvgEntryPrice.GreaterThan(decimal.NewFromInt(1)) {
			return nil, apperr.Analysis(&apperr.InvalidPosition{
				PositionID: pos.ID(),
				Reason:     "entry price " + pos.AvgEntryPrice.String() + " outside [0, 1]",
			})
		}

		switch pos.Side {
		case domain.SideYes:
			breakdown.YesShares = breakdown.YesShares.Add(pos.SharesHeld)
			breakdown.YesHolders++
		case domain.SideNo:
			breakdown.NoShares = breakdown.NoShares.Add(pos.SharesHeld)
			breakdown.NoHolders++
		default:
			return nil, apperr.Analysis(&apperr.InvalidPosition{
				PositionID: pos.ID(),
				Reason:     "unknown side '" + pos.Side + "'",
			})
		}

		cost := pos.CostBasis()
		totalCost = totalCost.Add(cost)
		if cost.GreaterThan(largestCost) {
			largestCost = cost
			breakdown.LargestPosition = *pos
		}
	}

	if totalCost.IsZero() {
		return nil, apperr.Analysis(&apperr.CalculationFailed{
			AnalysisType: "concentration",
			Reason:       "total cost basis is zero",
		})
	}
	breakdown.Concentration = largestCost.Div(totalCost)

	return breakdown, nil
}

// tradeStats aggregates recent transactions into summary stats.
func tradeStats(transactions []domain.Transaction) (*TradeStats, error) {
	stats := &TradeStats{Transactions: len(transactions)}
	if len(transactions) == 0 {
		return stats, nil
	}

	totalShares := decimal.Zero
	totalUSDC := decimal.Zero
	for i := range transactions {
		tx := &transactions[i]
		switch tx.Action {
		case domain.ActionBuy:
			stats.Buys++
		case domain.ActionSell:
			stats.Sells++
		}
		totalShares = totalShares.Add(tx.Shares)
		totalUSDC = totalUSDC.Add(tx.USDCAmount)
	}

	if totalShares.IsZero() {
		return nil, apperr.Analysis(&apperr.CalculationFailed{
			AnalysisType: "vwap",
			Reason:       "transactions present but total shares is zero",
		})
	}
	stats.VWAP = totalUSDC.Div(totalShares).Round(6)

	return stats, nil
}

// Leaderboard ranks qualifying traders by ROI.
func (a *Analyzer) Leaderboard(ctx context.Context) (*TraderLeaderboard, error) {
	traders, err := a.traders.GetTraders(ctx, a.minResolve)
	if err != nil {
		return nil, err
	}

	if len(traders) < 2 {
		return nil, apperr.Analysis(&apperr.InsufficientData{
			AnalysisType: "trader",
			Reason:       "need at least 2 qualifying traders, got " + strconv.Itoa(len(traders)),
		})
	}

	mean, stddev := accuracyDistribution(traders)
	if stddev.IsZero() {
		return nil, apperr.Analysis(&apperr.StatisticalError{
			AnalysisType: "trader accuracy",
			Reason:       "zero variance across " + strconv.Itoa(len(traders)) + " traders",
		})
	}

	sortByROI(traders)
	if len(traders) > a.topTraders {
		traders = traders[:a.topTraders]
	}

	return &TraderLeaderboard{
		Traders:        traders,
		MeanAccuracy:   mean,
		AccuracyStdDev: stddev,
	}, nil
}

// accuracyDistribution returns mean and standard deviation of accuracy.
func accuracyDistribution(traders []domain.Trader) (decimal.Decimal, decimal.Decimal) {
	sum := decimal.Zero
	for i := range traders {
		sum = sum.Add(traders[i].Accuracy)
	}
	n := decimal.NewFromInt(int64(len(traders)))
	mean := sum.Div(n)

	variance := 0.0
	meanF, _ := mean.Float64()
	for i := range traders {
		accF, _ := traders[i].Accuracy.Float64()
		diff := accF - meanF
		variance += diff * diff
	}
	variance /= float64(len(traders))

	return mean.Round(6), decimal.NewFromFloat(math.Sqrt(variance)).Round(6)
}

// sortByROI sorts traders descending by ROI (stable on address for ties).
func sortByROI(traders []domain.Trader) {
	for i := 1; i < len(traders); i++ {
		for j := i; j > 0; j-- {
			a, b := &traders[j-1], &traders[j]
			if b.ROI.GreaterThan(a.ROI) || (b.ROI.Equal(a.ROI) && b.Address < a.Address) {
				traders[j-1], traders[j] = traders[j], traders[j-1]
			} else {
				break
			}
		}
	}
}
