package gamma

import (
	"errors"
	"strings"
	"testing"

	"polymarket_explorer/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMarketResponse() *MarketResponse {
	return &MarketResponse{
		Question:       "Will X win?",
		ConditionID:    "0xabc",
		Slug:           "will-x-win",
		Outcomes:       `["Yes", "No"]`,
		OutcomePrices:  `["0.62", "0.38"]`,
		ClobTokenIDs:   `["111", "222"]`,
		Active:         true,
		Closed:         false,
		VolumeNum:      500,
		Volume24h:      50,
		Volume1w:       100,
		Volume1m:       300,
		Volume1y:       500,
		LiquidityNum:   80,
		LastTradePrice: 0.61,
		BestBid:        0.60,
		BestAsk:        0.63,
	}
}

func TestStandardizeMarket(t *testing.T) {
	s := NewStandardizer(200)

	market, err := s.Market(validMarketResponse())
	require.NoError(t, err)

	assert.Equal(t, "will-x-win", market.Slug)
	assert.Equal(t, "111", market.YesTokenID)
	assert.Equal(t, "222", market.NoTokenID)
	assert.Equal(t, "0.62", market.YesPrice.String())
	assert.Equal(t, "0.38", market.NoPrice.String())
	assert.True(t, market.Tradable())
}

func TestStandardizeMarketReversedOutcomes(t *testing.T) {
	s := NewStandardizer(200)

	raw := validMarketResponse()
	raw.Outcomes = `["No", "Yes"]`
	raw.OutcomePrices = `["0.38", "0.62"]`

	market, err := s.Market(raw)
	require.NoError(t, err)

	assert.Equal(t, "0.62", market.YesPrice.String())
	assert.Equal(t, "222", market.YesTokenID)
	assert.Equal(t, "111", market.NoTokenID)
}

func TestStandardizeMarketBadOutcomesJSON(t *testing.T) {
	s := NewStandardizer(200)

	raw := validMarketResponse()
	raw.Outcomes = `["Yes", "No"` // unterminated

	_, err := s.Market(raw)
	var deser *apperr.JSONDeserializationFailed
	require.True(t, errors.As(err, &deser), "got %v", err)
	assert.Equal(t, "outcomes", deser.FieldName)
	assert.LessOrEqual(t, len(deser.JSONSnippet), 200+len(apperr.TruncationMarker))
}

func TestStandardizeMarketWrongOutcomeCount(t *testing.T) {
	s := NewStandardizer(200)

	raw := validMarketResponse()
	raw.Outcomes = `["Yes", "No", "Maybe"]`

	_, err := s.Market(raw)
	var length *apperr.InvalidArrayLength
	require.True(t, errors.As(err, &length), "got %v", err)
	assert.Equal(t, 2, length.Expected)
	assert.Equal(t, 3, length.Actual)
}

func TestStandardizeMarketUnmappableOutcomes(t *testing.T) {
	s := NewStandardizer(200)

	raw := validMarketResponse()
	raw.Outcomes = `["Over", "Under"]`

	_, err := s.Market(raw)
	var mapping *apperr.OutcomeMappingFailed
	require.True(t, errors.As(err, &mapping), "got %v", err)
	assert.Equal(t, "will-x-win", mapping.MarketSlug)
	assert.Contains(t, err.Error(), "will-x-win")
}

func TestStandardizeMarketBadPrice(t *testing.T) {
	s := NewStandardizer(200)

	t.Run("unparseable", func(t *testing.T) {
		raw := validMarketResponse()
		raw.OutcomePrices = `["sixty-two", "0.38"]`

		_, err := s.Market(raw)
		var number *apperr.InvalidNumber
		require.True(t, errors.As(err, &number), "got %v", err)
		assert.Equal(t, "outcomePrices", number.FieldName)
	})

	t.Run("out of range", func(t *testing.T) {
		raw := validMarketResponse()
		raw.OutcomePrices = `["1.62", "0.38"]`

		_, err := s.Market(raw)
		var price *apperr.InvalidPriceData
		require.True(t, errors.As(err, &price), "got %v", err)
		assert.Equal(t, "will-x-win", price.MarketSlug)
	})

	t.Run("inconsistent pair", func(t *testing.T) {
		raw := validMarketResponse()
		raw.OutcomePrices = `["0.40", "0.40"]`

		_, err := s.Market(raw)
		var validation *apperr.ValidationFailed
		require.True(t, errors.As(err, &validation), "got %v", err)
		assert.Contains(t, validation.Error(), "will-x-win")
	})
}

func TestStandardizeMarketUpdatedAt(t *testing.T) {
	s := NewStandardizer(200)

	t.Run("valid timestamp", func(t *testing.T) {
		raw := validMarketResponse()
		raw.UpdatedAt = "2026-08-20T10:30:00Z"

		market, err := s.Market(raw)
		require.NoError(t, err)
		assert.Equal(t, 2026, market.UpdatedAt.Year())
	})

	t.Run("absent timestamp", func(t *testing.T) {
		market, err := s.Market(validMarketResponse())
		require.NoError(t, err)
		assert.True(t, market.UpdatedAt.IsZero())
	})

	t.Run("bad format", func(t *testing.T) {
		raw := validMarketResponse()
		raw.UpdatedAt = "20/08/2026"

		_, err := s.Market(raw)
		var format *apperr.InvalidFieldFormat
		require.True(t, errors.As(err, &format), "got %v", err)
		assert.Equal(t, "updatedAt", format.FieldName)
	})
}

func TestStandardizeMarketNegativeVolume(t *testing.T) {
	s := NewStandardizer(200)

	raw := validMarketResponse()
	raw.Volume24h = -1

	_, err := s.Market(raw)
	var volume *apperr.InvalidVolumeData
	require.True(t, errors.As(err, &volume), "got %v", err)
	assert.Equal(t, "volume24hr", volume.FieldName)
	assert.Equal(t, "will-x-win", volume.MarketSlug)
}

func TestStandardizeMarketMissingIdentifiers(t *testing.T) {
	s := NewStandardizer(200)

	t.Run("no slug", func(t *testing.T) {
		raw := validMarketResponse()
		raw.Slug = ""

		_, err := s.Market(raw)
		var missing *apperr.MissingField
		require.True(t, errors.As(err, &missing), "got %v", err)
		assert.Equal(t, "slug", missing.FieldName)
	})

	t.Run("no condition id", func(t *testing.T) {
		raw := validMarketResponse()
		raw.ConditionID = ""

		_, err := s.Market(raw)
		var empty *apperr.EmptyRequiredField
		require.True(t, errors.As(err, &empty), "got %v", err)
		assert.Equal(t, "conditionId", empty.FieldName)
		assert.Equal(t, "will-x-win", empty.MarketSlug)
	})
}

func TestStandardizeMarketTokenExtraction(t *testing.T) {
	s := NewStandardizer(200)

	cases := []struct {
		name   string
		tokens string
	}{
		{"empty", ""},
		{"not json", "111,222"},
		{"wrong count", `["111"]`},
		{"blank token", `["111", ""]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validMarketResponse()
			raw.ClobTokenIDs = tc.tokens

			_, err := s.Market(raw)
			var extraction *apperr.TokenIDExtractionFailed
			require.True(t, errors.As(err, &extraction), "got %v", err)
			assert.Equal(t, "will-x-win", extraction.MarketSlug)
		})
	}
}

func TestStandardizeGroup(t *testing.T) {
	s := NewStandardizer(200)

	t.Run("valid", func(t *testing.T) {
		group, err := s.Group(&MarketGroupResponse{
			Slug:    "us-election",
			Title:   "US Election",
			Active:  true,
			Volume:  1000,
			Markets: []MarketResponse{*validMarketResponse()},
		})
		require.NoError(t, err)
		assert.Len(t, group.Markets, 1)
		assert.NotNil(t, group.FindMarket("will-x-win"))
	})

	t.Run("missing slug", func(t *testing.T) {
		_, err := s.Group(&MarketGroupResponse{})
		var missing *apperr.MissingField
		require.True(t, errors.As(err, &missing), "got %v", err)
	})

	t.Run("first bad market fails the group", func(t *testing.T) {
		bad := *validMarketResponse()
		bad.Outcomes = `[]`

		_, err := s.Group(&MarketGroupResponse{
			Slug:    "g",
			Markets: []MarketResponse{bad},
		})
		require.Error(t, err)

		var appErr *apperr.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperr.StageParse, appErr.Stage())
	})
}

func TestStandardizerFailuresArePromoted(t *testing.T) {
	s := NewStandardizer(200)

	raw := validMarketResponse()
	raw.Outcomes = `["Over", "Under"]`

	_, err := s.Market(raw)
	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr), "standardizer must return promoted failures")
	assert.Equal(t, apperr.StageNormalization, appErr.Stage())
	assert.True(t, strings.HasPrefix(appErr.Error(), "Normalization Error: "))
}

func TestStandardizeMarketStateFlags(t *testing.T) {
	s := NewStandardizer(200)

	raw := validMarketResponse()
	raw.Closed = true

	market, err := s.Market(raw)
	require.NoError(t, err)
	assert.True(t, market.Closed)
	assert.False(t, market.Tradable())
}
