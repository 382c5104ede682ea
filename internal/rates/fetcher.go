// Package rates fetches the base/display currency exchange rate from a
// public endpoint. The fetch happens once at startup, has a hard deadline,
// and degrades silently to a fallback constant on any failure.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"zenfinance/internal/logger"
)

// Fetcher performs a one-shot lookup of how many base-currency units one
// display-currency unit is worth.
type Fetcher struct {
	httpClient      *http.Client
	baseURL         string // overridable for tests
	baseCurrency    string
	displayCurrency string
	fallback        float64
	timeout         time.Duration
}

// NewFetcher creates a Fetcher for the given currency pair.
func NewFetcher(httpClient *http.Client, baseURL, baseCurrency, displayCurrency string, fallback float64, timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient:      httpClient,
		baseURL:         strings.TrimRight(baseURL, "/"),
		baseCurrency:    strings.ToUpper(baseCurrency),
		displayCurrency: strings.ToUpper(displayCurrency),
		fallback:        fallback,
		timeout:         timeout,
	}
}

// Fallback returns the rate applied when the endpoint cannot be reached.
func (f *Fetcher) Fallback() float64 { return f.fallback }

// Fetch returns the current exchange rate, or the fallback if the request
// times out, fails, or the response is missing the base currency. The
// returned value is always usable; errors are logged, never propagated.
func (f *Fetcher) Fetch(ctx context.Context) float64 {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	rate, err := f.fetchRate(ctx)
	if err != nil {
		logger.Get().Warnw("exchange rate fetch failed, using fallback",
			"error", err.Error(),
			"fallback", f.fallback,
		)
		return f.fallback
	}
	return rate
}

// fetchRate queries the endpoint for rates quoted against the display
// currency and extracts the base-currency entry.
func (f *Fetcher) fetchRate(ctx context.Context) (float64, error) {
	url := f.baseURL + "/" + f.displayCurrency

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building rate request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("rate http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate request: unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding rate response: %w", err)
	}

	rate, ok := body.Rates[f.baseCurrency]
	if !ok {
		return 0, fmt.Errorf("rate response missing %s", f.baseCurrency)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("invalid rate for %s: %f", f.baseCurrency, rate)
	}

	return rate, nil
}
