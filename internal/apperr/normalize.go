package apperr

import "fmt"

// NormalizationError is the closed set of failures raised when
// standardizing source data into the canonical schema. Every variant
// carries the slug of the market being normalized; there is no
// market-agnostic normalization failure.
type NormalizationError interface {
	error
	normalizationError()
}

var (
	_ NormalizationError = (*TokenIDExtractionFailed)(nil)
	_ NormalizationError = (*OutcomeMappingFailed)(nil)
	_ NormalizationError = (*InvalidPriceData)(nil)
	_ NormalizationError = (*InvalidVolumeData)(nil)
	_ NormalizationError = (*ValidationFailed)(nil)
	_ NormalizationError = (*EmptyRequiredField)(nil)
)

// TokenIDExtractionFailed reports a market whose outcome token IDs could
// not be extracted from the raw payload.
type TokenIDExtractionFailed struct {
	MarketSlug string
	Reason     string
}

func (e *TokenIDExtractionFailed) Error() string {
	return fmt.Sprintf("Failed to extract token IDs for market '%s': %s", e.MarketSlug, e.Reason)
}

func (e *TokenIDExtractionFailed) normalizationError() {}

// OutcomeMappingFailed reports outcome labels that could not be mapped
// onto the canonical YES/NO pair.
type OutcomeMappingFailed struct {
	MarketSlug string
	Outcomes   []string
	Reason     string
}

func (e *OutcomeMappingFailed) Error() string {
	return fmt.Sprintf("Failed to map outcomes for market '%s' (outcomes: %q): %s",
		e.MarketSlug, e.Outcomes, e.Reason)
}

func (e *OutcomeMappingFailed) normalizationError() {}

// InvalidPriceData reports inconsistent or out-of-range price data.
type InvalidPriceData struct {
	MarketSlug string
	FieldName  string
	Reason     string
}

func (e *InvalidPriceData) Error() string {
	return fmt.Sprintf("Invalid price data in market '%s' for field '%s': %s",
		e.MarketSlug, e.FieldName, e.Reason)
}

func (e *InvalidPriceData) normalizationError() {}

// InvalidVolumeData reports inconsistent or out-of-range volume data.
type InvalidVolumeData struct {
	MarketSlug string
	FieldName  string
	Reason     string
}

func (e *InvalidVolumeData) Error() string {
	return fmt.Sprintf("Invalid volume data in market '%s' for field '%s': %s",
		e.MarketSlug, e.FieldName, e.Reason)
}

func (e *InvalidVolumeData) normalizationError() {}

// ValidationFailed reports a market that failed a final consistency check
// after all individual fields normalized cleanly.
type ValidationFailed struct {
	MarketSlug string
	Reason     string
}

func (e *ValidationFailed) Error() string {
	return fmt.Sprintf("Validation failed for market '%s': %s", e.MarketSlug, e.Reason)
}

func (e *ValidationFailed) normalizationError() {}

// EmptyRequiredField reports a field that is empty after normalization.
type EmptyRequiredField struct {
	MarketSlug string
	FieldName  string
}

func (e *EmptyRequiredField) Error() string {
	return fmt.Sprintf("Required field '%s' is empty in market '%s'", e.FieldName, e.MarketSlug)
}

func (e *EmptyRequiredField) normalizationError() {}
