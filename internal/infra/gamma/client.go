package gamma

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"polymarket_explorer/internal/apperr"
	"polymarket_explorer/internal/infra"

	"github.com/google/uuid"
)

// Client is the Gamma REST API client (boundary layer). Every anomaly it
// detects is raised as the matching stage failure and promoted before it
// leaves this package.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	snippetMax int
	logger     *slog.Logger
}

// NewClient creates a new Gamma API client.
func NewClient(cfg *infra.Config) *Client {
	timeout := time.Duration(cfg.API.Gamma.TimeoutSec) * time.Second

	return &Client{
		baseURL: cfg.API.Gamma.BaseURL,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 30 * time.Second,
			},
		},
		snippetMax: cfg.Display.SnippetMaxLen,
		logger:     slog.Default().With("module", "gamma_client"),
	}
}

// FetchMarketGroup fetches the raw event payload for a group slug.
func (c *Client) FetchMarketGroup(ctx context.Context, slug string) (*MarketGroupResponse, error) {
	reqURL := c.baseURL + "/events/slug/" + url.PathEscape(slug)

	status, header, body, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		return nil, apperr.DataSource(&apperr.MarketGroupNotFound{Slug: slug})
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, apperr.DataSource(&apperr.AuthenticationFailed{
			Reason: "status " + strconv.Itoa(status) + " from " + reqURL,
		})
	case status == http.StatusTooManyRequests:
		return nil, apperr.DataSource(&apperr.RateLimitExceeded{RetryAfter: retryAfter(header)})
	case status >= 500:
		return nil, apperr.DataSource(&apperr.APIUnavailable{
			Service: "Gamma",
			Reason:  "status " + strconv.Itoa(status),
		})
	case status != http.StatusOK:
		return nil, apperr.HTTP(&apperr.RequestFailed{
			Status: status,
			URL:    reqURL,
			Body:   apperr.TruncateForDisplay(string(body), c.snippetMax),
		})
	}

	var group MarketGroupResponse
	if err := json.Unmarshal(body, &group); err != nil {
		return nil, apperr.Parse(&apperr.JSONDeserializationFailed{
			ExpectedType: "MarketGroupResponse",
			JSONSnippet:  apperr.JSONErrorSnippet(string(body), c.snippetMax),
			Reason:       err.Error(),
		})
	}

	if group.Slug == "" {
		return nil, apperr.DataSource(&apperr.InvalidAPIResponse{
			Endpoint:   reqURL,
			Reason:     "event payload has no slug",
			RawSnippet: apperr.JSONErrorSnippet(string(body), c.snippetMax),
		})
	}

	return &group, nil
}

// get performs one GET request and maps transport-level anomalies onto the
// transport failure set. It returns the status, headers and raw body for
// the caller to interpret at the source level.
func (c *Client) get(ctx context.Context, reqURL string) (int, http.Header, []byte, error) {
	if _, err := url.ParseRequestURI(reqURL); err != nil {
		return 0, nil, nil, apperr.HTTP(&apperr.InvalidURL{URL: reqURL, Reason: err.Error()})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, nil, nil, apperr.HTTP(&apperr.InvalidURL{URL: reqURL, Reason: err.Error()})
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "polymarket-explorer")
	req.Header.Set("X-Request-ID", uuid.NewString())

	c.logger.Debug("GET", "url", reqURL)
	infra.GlobalMetrics.RecordRequest()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return 0, nil, nil, apperr.HTTP(&apperr.Timeout{URL: reqURL, Duration: c.timeout})
		}
		return 0, nil, nil, apperr.HTTP(&apperr.ConnectionFailed{URL: reqURL, Reason: err.Error()})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, apperr.HTTP(&apperr.ResponseReadError{URL: reqURL, Reason: err.Error()})
	}

	return resp.StatusCode, resp.Header, body, nil
}

// retryAfter parses a Retry-After header value in seconds, 0 when absent.
func retryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
