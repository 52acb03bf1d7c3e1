package ratefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	"github.com/SscSPs/instant_transfer/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Client fetches live exchange rates from the exchangerate-api.com v6 API.
// Endpoint shape: GET {baseURL}/{apiKey}/latest/{BASE}.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a rate feed client with the given request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ensure implementation matches interface
var _ ports.RateFeedProvider = (*Client)(nil)

// latestResponse mirrors the provider's JSON envelope. Rates are decoded as
// json.Number so they can be re-parsed exactly, never through float64.
type latestResponse struct {
	Result          string                 `json:"result"`
	ErrorType       string                 `json:"error-type"`
	BaseCode        string                 `json:"base_code"`
	ConversionRates map[string]json.Number `json:"conversion_rates"`
}

// FetchRates retrieves the full rate table quoted against base.
func (c *Client) FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, strings.ToUpper(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate feed request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate feed request failed: %w", apperrors.ErrRateFeedUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate feed returned status %d: %w", resp.StatusCode, apperrors.ErrRateFeedUnavailable)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	var payload latestResponse
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rate feed response: %w", apperrors.ErrRateFeedUnavailable)
	}
	if payload.Result != "success" {
		if payload.ErrorType == "unsupported-code" {
			return nil, apperrors.ErrUnknownCurrency
		}
		return nil, fmt.Errorf("rate feed error %q: %w", payload.ErrorType, apperrors.ErrRateFeedUnavailable)
	}

	rates := make(map[string]decimal.Decimal, len(payload.ConversionRates))
	for code, num := range payload.ConversionRates {
		rate, err := decimal.NewFromString(num.String())
		if err != nil {
			return nil, fmt.Errorf("rate feed returned malformed rate for %s: %w", code, apperrors.ErrRateFeedUnavailable)
		}
		rates[strings.ToUpper(code)] = rate
	}
	return rates, nil
}

// FetchRate retrieves a single pairwise rate.
// Returns apperrors.ErrUnknownCurrency when either code is not quoted.
func (c *Client) FetchRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	rates, err := c.FetchRates(ctx, from)
	if err != nil {
		return decimal.Zero, err
	}
	rate, ok := rates[strings.ToUpper(to)]
	if !ok {
		return decimal.Zero, apperrors.ErrUnknownCurrency
	}
	return rate, nil
}
