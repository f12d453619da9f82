package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Yahoo Finance's unauthenticated chart endpoint. One request per suffixed
// symbol (e.g. RELIANCE.NS); the venue suffix strategy lives in the pricing
// service, not here.
const defaultBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// ErrQuoteNotFound is returned when the venue has no usable price for the
// requested symbol. Callers typically try the next venue.
var ErrQuoteNotFound = errors.New("quote not found")

// Client is an HTTP client for the Yahoo Finance chart API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Yahoo Finance client
func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

// NewClientWithBaseURL creates a new client with a custom base URL (for testing)
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetQuote fetches the current market price for one exchange-suffixed
// symbol. A symbol the venue doesn't know, or one quoted at zero, returns
// ErrQuoteNotFound.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*ParsedQuote, error) {
	reqURL := c.baseURL + "/" + url.PathEscape(symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; dripfolio/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrQuoteNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if chart.Chart.Error != nil {
		return nil, ErrQuoteNotFound
	}
	if len(chart.Chart.Result) == 0 || chart.Chart.Result[0].Meta.RegularMarketPrice == 0 {
		return nil, ErrQuoteNotFound
	}

	meta := chart.Chart.Result[0].Meta
	return &ParsedQuote{
		Symbol:   meta.Symbol,
		Price:    meta.RegularMarketPrice,
		Currency: meta.Currency,
	}, nil
}
