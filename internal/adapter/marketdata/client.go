// Package marketdata implements domain.PriceProvider against a
// CoinGecko-compatible simple-price endpoint.
package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

// Client fetches market quotes over HTTP
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a new market-data client
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log.With().Str("component", "marketdata").Logger(),
	}
}

// quote mirrors the provider's simple-price JSON for one asset.
// Prices decode straight into decimals; change percentages are display
// data and stay floats.
type quote struct {
	USD       decimal.Decimal `json:"usd"`
	EUR       decimal.Decimal `json:"eur"`
	BTC       decimal.Decimal `json:"btc"`
	Change24h float64         `json:"usd_24h_change"`
	Change7d  float64         `json:"usd_7d_change"`
	Change30d float64         `json:"usd_30d_change"`
}

// FetchQuotes implements domain.PriceProvider. Ticker lookup is
// case-insensitive; the returned map is keyed by the requested tickers.
func (c *Client) FetchQuotes(ctx context.Context, tickers []string) (map[string]domain.MarketQuote, error) {
	if len(tickers) == 0 {
		return map[string]domain.MarketQuote{}, nil
	}

	ids := make([]string, len(tickers))
	for i, t := range tickers {
		ids[i] = strings.ToLower(t)
	}

	endpoint := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd,eur,btc&include_24hr_change=true",
		c.baseURL, url.QueryEscape(strings.Join(ids, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote request returned status %d", resp.StatusCode)
	}

	var payload map[string]quote
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}

	quotes := make(map[string]domain.MarketQuote, len(tickers))
	for _, ticker := range tickers {
		q, ok := payload[strings.ToLower(ticker)]
		if !ok {
			c.log.Warn().Str("ticker", ticker).Msg("No quote in provider response")
			continue
		}
		quotes[ticker] = domain.MarketQuote{
			Prices: domain.Prices{USD: q.USD, EUR: q.EUR, BTC: q.BTC},
			Changes: domain.PriceChanges{
				Change24h: q.Change24h,
				Change7d:  q.Change7d,
				Change30d: q.Change30d,
			},
		}
	}
	return quotes, nil
}
