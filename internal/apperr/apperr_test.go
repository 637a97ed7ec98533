package apperr

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestPromotionRoundTrip(t *testing.T) {
	t.Run("http", func(t *testing.T) {
		orig := &Timeout{URL: "https://gamma-api.polymarket.com/events", Duration: 30 * time.Second}
		wrapped := HTTP(orig)

		if wrapped.Stage() != StageHTTP {
			t.Errorf("Stage() = %v, want StageHTTP", wrapped.Stage())
		}

		var got *Timeout
		if !errors.As(wrapped, &got) {
			t.Fatal("expected errors.As to recover *Timeout")
		}
		if got != orig {
			t.Error("round trip lost the original failure value")
		}
	})

	t.Run("data source", func(t *testing.T) {
		orig := &MarketNotFound{GroupSlug: "us-election", MarketSlug: "will-x-win"}
		wrapped := DataSource(orig)

		var got *MarketNotFound
		if !errors.As(wrapped, &got) {
			t.Fatal("expected errors.As to recover *MarketNotFound")
		}
		if got.GroupSlug != "us-election" || got.MarketSlug != "will-x-win" {
			t.Errorf("fields lost in promotion: %+v", got)
		}
	})

	t.Run("parse", func(t *testing.T) {
		orig := &InvalidArrayLength{FieldName: "outcomes", Expected: 2, Actual: 3}
		var got *InvalidArrayLength
		if !errors.As(Parse(orig), &got) || got != orig {
			t.Error("parse failure did not survive promotion intact")
		}
	})

	t.Run("normalization", func(t *testing.T) {
		orig := &InvalidPriceData{MarketSlug: "btc-100k", FieldName: "outcomePrices", Reason: "negative"}
		var got *InvalidPriceData
		if !errors.As(Normalization(orig), &got) || got != orig {
			t.Error("normalization failure did not survive promotion intact")
		}
	})

	t.Run("analysis", func(t *testing.T) {
		orig := &StaleData{AnalysisType: "position", Age: 2 * time.Hour, MaxAge: time.Hour}
		var got *StaleData
		if !errors.As(Analysis(orig), &got) || got != orig {
			t.Error("analysis failure did not survive promotion intact")
		}
	})

	t.Run("output", func(t *testing.T) {
		orig := &WriteFailed{Target: "stdout", Reason: "broken pipe"}
		var got *WriteFailed
		if !errors.As(Output(orig), &got) || got != orig {
			t.Error("output failure did not survive promotion intact")
		}
	})
}

func TestStageTagDeterminesStoredType(t *testing.T) {
	cases := []struct {
		name  string
		err   *AppError
		stage Stage
	}{
		{"http", HTTP(&ConnectionFailed{URL: "https://x", Reason: "refused"}), StageHTTP},
		{"data source", DataSource(&AuthenticationFailed{Reason: "bad key"}), StageDataSource},
		{"parse", Parse(&MissingField{FieldName: "slug", ParentType: "GammaMarket"}), StageParse},
		{"normalization", Normalization(&ValidationFailed{MarketSlug: "m", Reason: "r"}), StageNormalization},
		{"analysis", Analysis(&InsufficientData{AnalysisType: "trader", Reason: "no rows"}), StageAnalysis},
		{"output", Output(&FormattingFailed{DataType: "table", Reason: "nil data"}), StageOutput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Stage() != tc.stage {
				t.Errorf("Stage() = %v, want %v", tc.err.Stage(), tc.stage)
			}
			if tc.err.Unwrap() == nil {
				t.Error("Unwrap() returned nil, wrapped failure lost")
			}
		})
	}
}

func TestMarketGroupNotFoundMessage(t *testing.T) {
	err := DataSource(&MarketGroupNotFound{Slug: "non-existent-market"})

	msg := err.Error()
	if !strings.Contains(msg, "non-existent-market") {
		t.Errorf("message %q does not contain the slug", msg)
	}
	if !strings.Contains(msg, "not found") {
		t.Errorf("message %q does not indicate absence", msg)
	}
}

func TestJSONDeserializationMessage(t *testing.T) {
	snippet := JSONErrorSnippet(`["YES", "NO"`, 200)
	if len(snippet) > 200 {
		t.Fatalf("snippet length %d exceeds 200", len(snippet))
	}

	err := &JSONDeserializationFailed{
		FieldName:    "outcomes",
		ExpectedType: "list of text",
		JSONSnippet:  snippet,
		Reason:       "unexpected end of input",
	}

	msg := err.Error()
	for _, want := range []string{"outcomes", "list of text", "unexpected end of input"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestJSONDeserializationWholePayload(t *testing.T) {
	err := &JSONDeserializationFailed{
		ExpectedType: "GammaMarketGroup",
		JSONSnippet:  "{",
		Reason:       "unexpected EOF",
	}
	if strings.Contains(err.Error(), "for field") {
		t.Errorf("whole-payload message should not reference a field: %q", err.Error())
	}
}

func TestNormalizationMessagesCarrySlug(t *testing.T) {
	const slug = "will-btc-close-above-100k"

	variants := []NormalizationError{
		&TokenIDExtractionFailed{MarketSlug: slug, Reason: "empty clobTokenIds"},
		&OutcomeMappingFailed{MarketSlug: slug, Outcomes: []string{"Maybe"}, Reason: "not YES/NO"},
		&InvalidPriceData{MarketSlug: slug, FieldName: "outcomePrices", Reason: "above 1"},
		&InvalidVolumeData{MarketSlug: slug, FieldName: "volumeNum", Reason: "negative"},
		&ValidationFailed{MarketSlug: slug, Reason: "prices do not sum to 1"},
		&EmptyRequiredField{MarketSlug: slug, FieldName: "conditionId"},
	}

	for _, v := range variants {
		if !strings.Contains(v.Error(), slug) {
			t.Errorf("%T message %q missing market slug", v, v.Error())
		}
		if !strings.Contains(Normalization(v).Error(), slug) {
			t.Errorf("%T promoted message missing market slug", v)
		}
	}
}

func TestRateLimitMessage(t *testing.T) {
	t.Run("with retry after", func(t *testing.T) {
		err := &RateLimitExceeded{RetryAfter: 12 * time.Second}
		if !strings.Contains(err.Error(), "12s") {
			t.Errorf("message %q missing retry duration", err.Error())
		}
	})

	t.Run("without retry after", func(t *testing.T) {
		err := &RateLimitExceeded{}
		if strings.Contains(err.Error(), "Retry after") {
			t.Errorf("message %q should not mention retry when unknown", err.Error())
		}
	})
}

func TestTimeoutMessage(t *testing.T) {
	err := HTTP(&Timeout{URL: "https://gamma-api.polymarket.com/events/slug/x", Duration: 30 * time.Second})

	msg := err.Error()
	if !strings.Contains(msg, "30s") {
		t.Errorf("message %q missing timeout duration", msg)
	}
	if !strings.Contains(msg, "https://gamma-api.polymarket.com/events/slug/x") {
		t.Errorf("message %q missing the attempted URL", msg)
	}
	if !strings.HasPrefix(msg, "HTTP Error: ") {
		t.Errorf("message %q missing stage label prefix", msg)
	}
}

func TestRenderingIdempotent(t *testing.T) {
	errs := []error{
		HTTP(&RequestFailed{Status: 502, URL: "https://x", Body: "bad gateway"}),
		DataSource(&APIUnavailable{Service: "Gamma", Reason: "maintenance"}),
		Analysis(&StaleData{AnalysisType: "spread", Age: 90 * time.Minute, MaxAge: time.Hour}),
	}

	for _, err := range errs {
		first := err.Error()
		second := err.Error()
		if first != second {
			t.Errorf("rendering not idempotent: %q vs %q", first, second)
		}
	}
}

func TestStageString(t *testing.T) {
	want := map[Stage]string{
		StageHTTP:          "http",
		StageDataSource:    "data_source",
		StageParse:         "parse",
		StageNormalization: "normalization",
		StageAnalysis:      "analysis",
		StageOutput:        "output",
	}
	for stage, name := range want {
		if stage.String() != name {
			t.Errorf("Stage(%d).String() = %q, want %q", stage, stage.String(), name)
		}
	}
}
