package gamma

import (
	"context"

	"polymarket_explorer/internal/apperr"
	"polymarket_explorer/internal/domain"
	"polymarket_explorer/internal/infra"
)

// Source exposes the Gamma API as a domain.MarketProvider: raw fetch
// through the client, then standardization into the canonical schema.
type Source struct {
	client       *Client
	standardizer *Standardizer
}

var _ domain.MarketProvider = (*Source)(nil)

// NewSource creates a Gamma-backed market provider.
func NewSource(cfg *infra.Config) *Source {
	return &Source{
		client:       NewClient(cfg),
		standardizer: NewStandardizer(cfg.Display.SnippetMaxLen),
	}
}

// GetMarketGroup fetches and standardizes a market group by slug.
func (s *Source) GetMarketGroup(ctx context.Context, slug string) (*domain.MarketGroup, error) {
	raw, err := s.client.FetchMarketGroup(ctx, slug)
	if err != nil {
		return nil, err
	}

	group, err := s.standardizer.Group(raw)
	if err != nil {
		return nil, err
	}

	infra.GlobalMetrics.RecordMarketFetched()
	return group, nil
}

// GetMarket fetches a single market within a group.
func (s *Source) GetMarket(ctx context.Context, groupSlug, marketSlug string) (*domain.Market, error) {
	group, err := s.GetMarketGroup(ctx, groupSlug)
	if err != nil {
		return nil, err
	}

	market := group.FindMarket(marketSlug)
	if market == nil {
		return nil, apperr.DataSource(&apperr.MarketNotFound{
			GroupSlug:  groupSlug,
			MarketSlug: marketSlug,
		})
	}

	return market, nil
}
