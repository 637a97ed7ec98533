package gamma

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"polymarket_explorer/internal/apperr"
	"polymarket_explorer/internal/domain"

	"github.com/shopspring/decimal"
)

// Prices are probabilities; the YES/NO pair should sum to 1. Gamma data is
// occasionally a tick off, so allow a small tolerance before rejecting.
var (
	priceSumTolerance = decimal.NewFromFloat(0.05)
	one               = decimal.NewFromInt(1)
)

// Standardizer converts raw Gamma payloads into the canonical schema.
// Anomalies are raised as parse or normalization failures, already
// promoted, with snippets bounded to snippetMax.
type Standardizer struct {
	snippetMax int
}

// NewStandardizer creates a standardizer with the given snippet bound.
func NewStandardizer(snippetMax int) *Standardizer {
	return &Standardizer{snippetMax: snippetMax}
}

// Group converts a raw event payload into a canonical market group.
func (s *Standardizer) Group(raw *MarketGroupResponse) (*domain.MarketGroup, error) {
	if raw.Slug == "" {
		return nil, apperr.Parse(&apperr.MissingField{FieldName: "slug", ParentType: "MarketGroupResponse"})
	}

	group := &domain.MarketGroup{
		Slug:      raw.Slug,
		Title:     raw.Title,
		Active:    raw.Active,
		Closed:    raw.Closed,
		Volume:    decimal.NewFromFloat(raw.Volume),
		Liquidity: decimal.NewFromFloat(raw.Liquidity),
		Markets:   make([]domain.Market, 0, len(raw.Markets)),
	}

	for i := range raw.Markets {
		market, err := s.Market(&raw.Markets[i])
		if err != nil {
			return nil, err
		}
		group.Markets = append(group.Markets, *market)
	}

	return group, nil
}

// Market converts one raw market into the canonical schema.
func (s *Standardizer) Market(raw *MarketResponse) (*domain.Market, error) {
	if raw.Slug == "" {
		return nil, apperr.Parse(&apperr.MissingField{FieldName: "slug", ParentType: "MarketResponse"})
	}
	if raw.ConditionID == "" {
		return nil, apperr.Normalization(&apperr.EmptyRequiredField{
			MarketSlug: raw.Slug,
			FieldName:  "conditionId",
		})
	}

	outcomes, err := s.decodeStringArray("outcomes", raw.Outcomes)
	if err != nil {
		return nil, err
	}
	if len(outcomes) != 2 {
		return nil, apperr.Parse(&apperr.InvalidArrayLength{
			FieldName: "outcomes",
			Expected:  2,
			Actual:    len(outcomes),
		})
	}

	yesIdx, noIdx, ok := mapOutcomes(outcomes)
	if !ok {
		return nil, apperr.Normalization(&apperr.OutcomeMappingFailed{
			MarketSlug: raw.Slug,
			Outcomes:   outcomes,
			Reason:     "expected a YES/NO outcome pair",
		})
	}

	rawPrices, err := s.decodeStringArray("outcomePrices", raw.OutcomePrices)
	if err != nil {
		return nil, err
	}
	if len(rawPrices) != 2 {
		return nil, apperr.Parse(&apperr.InvalidArrayLength{
			FieldName: "outcomePrices",
			Expected:  2,
			Actual:    len(rawPrices),
		})
	}

	prices := make([]decimal.Decimal, 2)
	for i, rawPrice := range rawPrices {
		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			return nil, apperr.Parse(&apperr.InvalidNumber{
				FieldName: "outcomePrices",
				RawValue:  apperr.TruncateForDisplay(rawPrice, s.snippetMax),
				Reason:    err.Error(),
			})
		}
		if price.IsNegative() || price.GreaterThan(one) {
			return nil, apperr.Normalization(&apperr.InvalidPriceData{
				MarketSlug: raw.Slug,
				FieldName:  "outcomePrices",
				Reason:     "price " + price.String() + " outside [0, 1]",
			})
		}
		prices[i] = price
	}

	tokens, err := s.extractTokenIDs(raw)
	if err != nil {
		return nil, err
	}

	var updatedAt time.Time
	if raw.UpdatedAt != "" {
		updatedAt, err = time.Parse(time.RFC3339, raw.UpdatedAt)
		if err != nil {
			return nil, apperr.Parse(&apperr.InvalidFieldFormat{
				FieldName:      "updatedAt",
				ExpectedFormat: "RFC3339 timestamp",
				Actual:         apperr.TruncateForDisplay(raw.UpdatedAt, s.snippetMax),
			})
		}
	}

	for _, check := range []struct {
		field string
		value float64
	}{
		{"volumeNum", raw.VolumeNum},
		{"volume24hr", raw.Volume24h},
		{"volume1wk", raw.Volume1w},
		{"volume1mo", raw.Volume1m},
		{"volume1yr", raw.Volume1y},
		{"liquidityNum", raw.LiquidityNum},
	} {
		if check.value < 0 {
			return nil, apperr.Normalization(&apperr.InvalidVolumeData{
				MarketSlug: raw.Slug,
				FieldName:  check.field,
				Reason:     "negative value",
			})
		}
	}

	sum := prices[0].Add(prices[1])
	if sum.Sub(one).Abs().GreaterThan(priceSumTolerance) {
		return nil, apperr.Normalization(&apperr.ValidationFailed{
			MarketSlug: raw.Slug,
			Reason:     "outcome prices sum to " + sum.String() + ", expected ~1",
		})
	}

	return &domain.Market{
		Slug:           raw.Slug,
		Question:       raw.Question,
		ConditionID:    raw.ConditionID,
		YesTokenID:     tokens[yesIdx],
		NoTokenID:      tokens[noIdx],
		Active:         raw.Active,
		Closed:         raw.Closed,
		YesPrice:       prices[yesIdx],
		NoPrice:        prices[noIdx],
		LastTradePrice: decimal.NewFromFloat(raw.LastTradePrice),
		BestBid:        decimal.NewFromFloat(raw.BestBid),
		BestAsk:        decimal.NewFromFloat(raw.BestAsk),
		Volume:         decimal.NewFromFloat(raw.VolumeNum),
		Volume24h:      decimal.NewFromFloat(raw.Volume24h),
		Volume1w:       decimal.NewFromFloat(raw.Volume1w),
		Volume1m:       decimal.NewFromFloat(raw.Volume1m),
		Volume1y:       decimal.NewFromFloat(raw.Volume1y),
		Liquidity:      decimal.NewFromFloat(raw.LiquidityNum),
		UpdatedAt:      updatedAt,
	}, nil
}

// decodeStringArray decodes one of Gamma's JSON-encoded string-array fields.
func (s *Standardizer) decodeStringArray(fieldName, raw string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, apperr.Parse(&apperr.JSONDeserializationFailed{
			FieldName:    fieldName,
			ExpectedType: "list of text",
			JSONSnippet:  apperr.JSONErrorSnippet(raw, s.snippetMax),
			Reason:       err.Error(),
		})
	}
	return values, nil
}

// extractTokenIDs pulls the YES/NO token id pair out of clobTokenIds.
func (s *Standardizer) extractTokenIDs(raw *MarketResponse) ([]string, error) {
	if strings.TrimSpace(raw.ClobTokenIDs) == "" {
		return nil, apperr.Normalization(&apperr.TokenIDExtractionFailed{
			MarketSlug: raw.Slug,
			Reason:     "clobTokenIds is empty",
		})
	}

	var tokens []string
	if err := json.Unmarshal([]byte(raw.ClobTokenIDs), &tokens); err != nil {
		return nil, apperr.Normalization(&apperr.TokenIDExtractionFailed{
			MarketSlug: raw.Slug,
			Reason:     "clobTokenIds did not decode: " + err.Error(),
		})
	}
	if len(tokens) != 2 {
		return nil, apperr.Normalization(&apperr.TokenIDExtractionFailed{
			MarketSlug: raw.Slug,
			Reason:     "expected 2 token ids, got " + strconv.Itoa(len(tokens)),
		})
	}
	for _, token := range tokens {
		if token == "" {
			return nil, apperr.Normalization(&apperr.TokenIDExtractionFailed{
				MarketSlug: raw.Slug,
				Reason:     "token id is empty",
			})
		}
	}
	return tokens, nil
}

// mapOutcomes finds the YES and NO indexes in an outcome pair.
func mapOutcomes(outcomes []string) (yesIdx, noIdx int, ok bool) {
	yesIdx, noIdx = -1, -1
	for i, outcome := range outcomes {
		switch strings.ToUpper(strings.TrimSpace(outcome)) {
		case domain.SideYes:
			yesIdx = i
		case domain.SideNo:
			noIdx = i
		}
	}
	return yesIdx, noIdx, yesIdx >= 0 && noIdx >= 0
}
