package apperr

import (
	"fmt"
	"time"
)

// HTTPError is the closed set of transport-stage failures. Every variant
// carries the exact URL that was attempted; it is the minimum actionable
// context for a transport failure.
type HTTPError interface {
	error
	httpError()
}

// Compile-time check that the variant set is exactly as documented.
var (
	_ HTTPError = (*RequestFailed)(nil)
	_ HTTPError = (*ConnectionFailed)(nil)
	_ HTTPError = (*Timeout)(nil)
	_ HTTPError = (*InvalidURL)(nil)
	_ HTTPError = (*ResponseReadError)(nil)
)

// RequestFailed reports a request that completed with a non-success status.
type RequestFailed struct {
	Status int
	URL    string
	Body   string
}

func (e *RequestFailed) Error() string {
	return fmt.Sprintf("HTTP request failed with status %d: %s\nResponse: %s", e.Status, e.URL, e.Body)
}

func (e *RequestFailed) httpError() {}

// ConnectionFailed reports a request that never reached the server.
type ConnectionFailed struct {
	URL    string
	Reason string
}

func (e *ConnectionFailed) Error() string {
	return fmt.Sprintf("Failed to connect to %s: %s", e.URL, e.Reason)
}

func (e *ConnectionFailed) httpError() {}

// Timeout reports a request that exceeded its deadline.
type Timeout struct {
	URL      string
	Duration time.Duration
}

func (e *Timeout) Error() string {
	return fmt.Sprintf("Request to %s timed out after %s", e.URL, e.Duration)
}

func (e *Timeout) httpError() {}

// InvalidURL reports a URL that could not be parsed or used.
type InvalidURL struct {
	URL    string
	Reason string
}

func (e *InvalidURL) Error() string {
	return fmt.Sprintf("Invalid URL '%s': %s", e.URL, e.Reason)
}

func (e *InvalidURL) httpError() {}

// ResponseReadError reports a response body that could not be read.
type ResponseReadError struct {
	URL    string
	Reason string
}

func (e *ResponseReadError) Error() string {
	return fmt.Sprintf("Failed to read response from %s: %s", e.URL, e.Reason)
}

func (e *ResponseReadError) httpError() {}
