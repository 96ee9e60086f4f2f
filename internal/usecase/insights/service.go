package insights

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

// Query carries the ranking and pagination parameters of one report request
type Query struct {
	Page     int // 0-based
	PageSize int // DefaultPageSize when zero
	SortBy   SortKey
	Order    SortOrder
}

// Service loads a user's holdings and shapes them into ranked, paginated
// reports
type Service struct {
	HoldingRepo  domain.HoldingRepository
	CryptoRepo   domain.CryptoRepository
	PlatformRepo domain.PlatformRepository
}

// NewService creates a new insights Service instance
func NewService(
	holdingRepo domain.HoldingRepository,
	cryptoRepo domain.CryptoRepository,
	platformRepo domain.PlatformRepository,
) *Service {
	return &Service{
		HoldingRepo:  holdingRepo,
		CryptoRepo:   cryptoRepo,
		PlatformRepo: platformRepo,
	}
}

// CryptoInsights returns one ranked row per asset the user holds
func (s *Service) CryptoInsights(ctx context.Context, userID uuid.UUID, q Query) (*Page, error) {
	holdings, err := s.HoldingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	cryptos, err := s.cryptoIndex(ctx)
	if err != nil {
		return nil, err
	}

	rows := PerCrypto(holdings, cryptos)
	SortRows(rows, q.SortBy, q.Order)
	page := Paginate(rows, q.Page, q.PageSize)
	return &page, nil
}

// PlatformInsights returns one ranked row per platform the user holds on
func (s *Service) PlatformInsights(ctx context.Context, userID uuid.UUID, q Query) (*Page, error) {
	holdings, err := s.HoldingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	cryptos, err := s.cryptoIndex(ctx)
	if err != nil {
		return nil, err
	}

	platforms, err := s.platformIndex(ctx)
	if err != nil {
		return nil, err
	}

	rows := PerPlatform(holdings, cryptos, platforms)
	SortRows(rows, q.SortBy, q.Order)
	page := Paginate(rows, q.Page, q.PageSize)
	return &page, nil
}

// CryptoPlatforms drills one asset down to its per-platform breakdown
func (s *Service) CryptoPlatforms(ctx context.Context, userID, cryptoID uuid.UUID, q Query) (*Page, error) {
	crypto, err := s.CryptoRepo.GetByID(ctx, cryptoID)
	if err != nil {
		return nil, err
	}

	holdings, err := s.HoldingRepo.ListByUserAndCrypto(ctx, userID, cryptoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	platforms, err := s.platformIndex(ctx)
	if err != nil {
		return nil, err
	}

	rows := CryptoPerPlatform(holdings, crypto, platforms)
	SortRows(rows, q.SortBy, q.Order)
	page := Paginate(rows, q.Page, q.PageSize)
	return &page, nil
}

// PlatformCryptos drills one platform down to its per-asset breakdown
func (s *Service) PlatformCryptos(ctx context.Context, userID, platformID uuid.UUID, q Query) (*Page, error) {
	if _, err := s.PlatformRepo.GetByID(ctx, platformID); err != nil {
		return nil, err
	}

	holdings, err := s.HoldingRepo.ListByUserAndPlatform(ctx, userID, platformID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	cryptos, err := s.cryptoIndex(ctx)
	if err != nil {
		return nil, err
	}

	rows := PlatformPerCrypto(holdings, cryptos)
	SortRows(rows, q.SortBy, q.Order)
	page := Paginate(rows, q.Page, q.PageSize)
	return &page, nil
}

// Total returns the user's aggregate balances across every holding
func (s *Service) Total(ctx context.Context, userID uuid.UUID) (domain.Balances, error) {
	holdings, err := s.HoldingRepo.ListByUser(ctx, userID)
	if err != nil {
		return domain.Balances{}, fmt.Errorf("failed to list holdings: %w", err)
	}

	cryptos, err := s.cryptoIndex(ctx)
	if err != nil {
		return domain.Balances{}, err
	}

	return TotalBalances(holdings, cryptos), nil
}

func (s *Service) cryptoIndex(ctx context.Context) (map[uuid.UUID]*domain.Crypto, error) {
	cryptos, err := s.CryptoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cryptos: %w", err)
	}
	index := make(map[uuid.UUID]*domain.Crypto, len(cryptos))
	for _, c := range cryptos {
		index[c.ID] = c
	}
	return index, nil
}

func (s *Service) platformIndex(ctx context.Context) (map[uuid.UUID]*domain.Platform, error) {
	platforms, err := s.PlatformRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	index := make(map[uuid.UUID]*domain.Platform, len(platforms))
	for _, p := range platforms {
		index[p.ID] = p
	}
	return index, nil
}
