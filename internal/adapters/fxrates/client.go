// Package fxrates implements the rate provider against the fxratesapi.com HTTP API.
package fxrates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	"github.com/SscSPs/travel_budget_app/internal/core/ports/providers"
	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of an error response is copied into an error message.
const maxErrorBody = 512

// Config configures the provider client.
type Config struct {
	BaseURL           string // e.g. https://api.fxratesapi.com
	HTTPTimeout       time.Duration
	RequestsPerSecond float64
}

// Client talks to the /latest endpoint. Outbound calls are paced by a token bucket so a
// burst of manual refreshes and key validations cannot hammer the provider.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// latestResponse is the body of GET /latest.
// Example: {"success":true,"base":"USD","timestamp":1760000000,"rates":{"EUR":0.92,...}}
type latestResponse struct {
	Success     bool               `json:"success"`
	Base        string             `json:"base"`
	Timestamp   int64              `json:"timestamp"`
	Rates       map[string]float64 `json:"rates"`
	Error       string             `json:"error,omitempty"`
	Description string             `json:"description,omitempty"`
}

// NewClient creates a provider client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

var _ providers.RateProvider = (*Client)(nil)

// FetchRates returns the latest table. The base currency is added with rate 1 when the
// provider leaves it out.
func (c *Client) FetchRates(ctx context.Context, apiKey string) (domain.RateTable, error) {
	status, body, err := c.getLatest(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d: %s", status, truncate(body))
	}

	var resp latestResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("rate provider reported failure: %s", firstNonEmpty(resp.Description, resp.Error, "success=false"))
	}
	if len(resp.Rates) == 0 {
		return nil, fmt.Errorf("rate provider returned no rates")
	}

	if resp.Base != "" {
		if _, ok := resp.Rates[resp.Base]; !ok {
			resp.Rates[resp.Base] = 1
		}
	}

	table, err := domain.RateTableFromFloats(resp.Rates)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Fetched exchange rates", slog.String("base", resp.Base), slog.Int("count", len(table)))
	return table, nil
}

// ValidateKey reports whether the provider accepts apiKey. Server errors, transport
// failures and unreadable bodies return an error and count as invalid.
func (c *Client) ValidateKey(ctx context.Context, apiKey string) (bool, error) {
	status, body, err := c.getLatest(ctx, apiKey)
	if err != nil {
		return false, err
	}
	if status >= 500 && status < 600 {
		return false, fmt.Errorf("rate provider returned status %d", status)
	}

	var resp latestResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("failed to decode validation response: %w", err)
	}
	return resp.Success, nil
}

func (c *Client) getLatest(ctx context.Context, apiKey string) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/latest?api_key=%s", c.baseURL, url.QueryEscape(apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the key; keep it out of the error.
		return 0, nil, fmt.Errorf("failed to reach rate provider: %w", unwrapURLError(err))
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read rate response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func unwrapURLError(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
