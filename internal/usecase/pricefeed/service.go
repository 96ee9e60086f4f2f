// Package pricefeed refreshes cached market data for tracked assets.
// Each asset is refreshed no more often than once per cooldown window,
// and each cycle touches at most MaxBatch assets.
package pricefeed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

// Service drives one refresh cycle against the market-data provider
type Service struct {
	CryptoRepo domain.CryptoRepository
	Provider   domain.PriceProvider
	Cooldown   time.Duration
	MaxBatch   int

	log zerolog.Logger
	now func() time.Time
}

// NewService creates a new pricefeed Service instance
func NewService(
	cryptoRepo domain.CryptoRepository,
	provider domain.PriceProvider,
	cooldown time.Duration,
	maxBatch int,
	log zerolog.Logger,
) *Service {
	return &Service{
		CryptoRepo: cryptoRepo,
		Provider:   provider,
		Cooldown:   cooldown,
		MaxBatch:   maxBatch,
		log:        log.With().Str("component", "pricefeed").Logger(),
		now:        time.Now,
	}
}

// RefreshStale fetches quotes for the assets whose cached market data is
// older than the cooldown window, oldest first, capped at MaxBatch.
// Returns the number of assets refreshed. An asset missing from the
// provider response is skipped, not failed: its stale data stands until
// the next cycle.
func (s *Service) RefreshStale(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.Cooldown)

	stale, err := s.CryptoRepo.ListStale(ctx, cutoff, s.MaxBatch)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale cryptos: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	tickers := make([]string, len(stale))
	for i, c := range stale {
		tickers[i] = c.Ticker
	}

	quotes, err := s.Provider.FetchQuotes(ctx, tickers)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	refreshed := 0
	fetchedAt := s.now()
	for _, c := range stale {
		quote, ok := quotes[c.Ticker]
		if !ok {
			s.log.Warn().Str("ticker", c.Ticker).Msg("Provider returned no quote")
			continue
		}
		if err := s.CryptoRepo.UpdateMarketData(ctx, c.ID, quote.Prices, quote.Changes, fetchedAt); err != nil {
			return refreshed, fmt.Errorf("failed to store quote for %s: %w", c.Ticker, err)
		}
		refreshed++
	}

	s.log.Debug().Int("refreshed", refreshed).Int("stale", len(stale)).Msg("Refresh cycle done")
	return refreshed, nil
}
