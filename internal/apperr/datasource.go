package apperr

import (
	"fmt"
	"time"
)

// DataSourceError is the closed set of failures raised when interpreting a
// remote API's domain-level response. "Not found" variants carry only the
// identifiers that were absent, never raw response bodies.
type DataSourceError interface {
	error
	dataSourceError()
}

var (
	_ DataSourceError = (*MarketGroupNotFound)(nil)
	_ DataSourceError = (*MarketNotFound)(nil)
	_ DataSourceError = (*InvalidAPIResponse)(nil)
	_ DataSourceError = (*RateLimitExceeded)(nil)
	_ DataSourceError = (*AuthenticationFailed)(nil)
	_ DataSourceError = (*APIUnavailable)(nil)
)

// MarketGroupNotFound reports a market group slug absent at the source.
type MarketGroupNotFound struct {
	Slug string
}

func (e *MarketGroupNotFound) Error() string {
	return fmt.Sprintf("Market group '%s' not found", e.Slug)
}

func (e *MarketGroupNotFound) dataSourceError() {}

// MarketNotFound reports a market slug absent within an existing group.
type MarketNotFound struct {
	GroupSlug  string
	MarketSlug string
}

func (e *MarketNotFound) Error() string {
	return fmt.Sprintf("Market '%s' not found in group '%s'", e.MarketSlug, e.GroupSlug)
}

func (e *MarketNotFound) dataSourceError() {}

// InvalidAPIResponse reports a response whose structure the source layer
// could not interpret. RawSnippet must be bounded by JSONErrorSnippet or
// TruncateForDisplay before construction.
type InvalidAPIResponse struct {
	Endpoint   string
	Reason     string
	RawSnippet string
}

func (e *InvalidAPIResponse) Error() string {
	return fmt.Sprintf("API endpoint '%s' returned invalid response: %s\nRaw: %s", e.Endpoint, e.Reason, e.RawSnippet)
}

func (e *InvalidAPIResponse) dataSourceError() {}

// RateLimitExceeded reports a rate-limited request. RetryAfter is zero when
// the source did not say how long to wait.
type RateLimitExceeded struct {
	RetryAfter time.Duration
}

func (e *RateLimitExceeded) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("API rate limit exceeded. Retry after %s", e.RetryAfter)
	}
	return "API rate limit exceeded"
}

func (e *RateLimitExceeded) dataSourceError() {}

// AuthenticationFailed reports rejected credentials.
type AuthenticationFailed struct {
	Reason string
}

func (e *AuthenticationFailed) Error() string {
	return fmt.Sprintf("API authentication failed: %s", e.Reason)
}

func (e *AuthenticationFailed) dataSourceError() {}

// APIUnavailable reports a source that is down or unreachable at the
// domain level (5xx, maintenance, unusable local database).
type APIUnavailable struct {
	Service string
	Reason  string
}

func (e *APIUnavailable) Error() string {
	return fmt.Sprintf("%s API is unavailable: %s", e.Service, e.Reason)
}

func (e *APIUnavailable) dataSourceError() {}
