package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"polymarket_explorer/internal/apperr"
	"polymarket_explorer/internal/domain"
	"polymarket_explorer/internal/service"
)

const headerWidth = 67

// Printer renders reports to a terminal-ish writer. Write failures are
// raised as promoted output failures so the caller can report them like
// any other pipeline failure.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) writef(target, format string, args ...any) error {
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		return apperr.Output(&apperr.WriteFailed{Target: target, Reason: err.Error()})
	}
	return nil
}

// Header prints a section header between rules.
func (p *Printer) Header(title string) error {
	rule := strings.Repeat("=", headerWidth)
	return p.writef("header", "\n%s\n%s\n%s\n", rule, title, rule)
}

// MarketInfo prints the identity block for one market.
func (p *Printer) MarketInfo(market *domain.Market) error {
	if err := p.Header("MARKET INFORMATION"); err != nil {
		return err
	}
	return p.writef("market info",
		"  Slug:          %s\n"+
			"  YES Token:     %s\n"+
			"  NO Token:      %s\n"+
			"  Active:        %t\n"+
			"  Closed:        %t\n\n",
		market.Slug, market.YesTokenID, market.NoTokenID, market.Active, market.Closed)
}

// MarketReport prints the full analysis report for one market.
func (p *Printer) MarketReport(report *service.MarketReport) error {
	if err := p.MarketInfo(report.Market); err != nil {
		return err
	}

	if err := p.Header("MARKET ANALYSIS"); err != nil {
		return err
	}
	if err := p.writef("market analysis",
		"  YES Price:     %s\n"+
			"  NO Price:      %s\n"+
			"  Spread:        %s\n"+
			"  Implied P:     %s\n"+
			"  Volume 24h:    %s\n\n",
		report.Market.YesPrice, report.Market.NoPrice,
		report.Spread, report.Implied, report.Market.Volume24h); err != nil {
		return err
	}

	if err := p.Header("POSITIONS"); err != nil {
		return err
	}
	b := report.Positions
	if err := p.writef("positions",
		"  Total:         %d\n"+
			"  YES shares:    %s (%d holders)\n"+
			"  NO shares:     %s (%d holders)\n"+
			"  Concentration: %s\n"+
			"  Largest:       %s\n\n",
		b.TotalPositions,
		b.YesShares, b.YesHolders,
		b.NoShares, b.NoHolders,
		b.Concentration.Round(4),
		b.LargestPosition.ID()); err != nil {
		return err
	}

	if err := p.Header("RECENT TRADES"); err != nil {
		return err
	}
	t := report.Trades
	return p.writef("trades",
		"  Transactions:  %d (%d buys, %d sells)\n"+
			"  VWAP:          %s\n\n",
		t.Transactions, t.Buys, t.Sells, t.VWAP)
}

// Leaderboard prints the trader leaderboard as an aligned table.
func (p *Printer) Leaderboard(board *service.TraderLeaderboard) error {
	if err := p.Header("TOP TRADERS"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  RANK\tADDRESS\tROI\tACCURACY\tRESOLVED\tWINS")
	for i := range board.Traders {
		trader := &board.Traders[i]
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%d\t%d\n",
			i+1, trader.Address, trader.ROI, trader.Accuracy,
			trader.TotalMarketsResolved, trader.TotalWins)
	}
	if err := tw.Flush(); err != nil {
		return apperr.Output(&apperr.WriteFailed{Target: "leaderboard", Reason: err.Error()})
	}

	return p.writef("leaderboard",
		"\n  Mean accuracy: %s (stddev %s)\n\n",
		board.MeanAccuracy, board.AccuracyStdDev)
}
