package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

// GoalReport pairs a stored goal with its computed progress
type GoalReport struct {
	Goal         *domain.Goal
	CryptoName   string
	CryptoTicker string
	GoalProgress
}

// TargetReport pairs a stored price target with its computed distance
type TargetReport struct {
	PriceTarget  *domain.PriceTarget
	CryptoName   string
	CryptoTicker string
	TargetProgress
}

// Service resolves stored goals and price targets against current
// holdings and market data
type Service struct {
	GoalRepo    domain.GoalRepository
	TargetRepo  domain.PriceTargetRepository
	CryptoRepo  domain.CryptoRepository
	HoldingRepo domain.HoldingRepository
}

// NewService creates a new progress Service instance
func NewService(
	goalRepo domain.GoalRepository,
	targetRepo domain.PriceTargetRepository,
	cryptoRepo domain.CryptoRepository,
	holdingRepo domain.HoldingRepository,
) *Service {
	return &Service{
		GoalRepo:    goalRepo,
		TargetRepo:  targetRepo,
		CryptoRepo:  cryptoRepo,
		HoldingRepo: holdingRepo,
	}
}

// GoalProgress computes the progress of one goal. The actual quantity is
// the sum of the user's holdings of the goal's asset across all platforms.
func (s *Service) GoalProgress(ctx context.Context, goalID uuid.UUID) (*GoalReport, error) {
	goal, err := s.GoalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	crypto, err := s.CryptoRepo.GetByID(ctx, goal.CryptoID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve goal crypto: %w", err)
	}

	holdings, err := s.HoldingRepo.ListByUserAndCrypto(ctx, goal.UserID, goal.CryptoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings for goal: %w", err)
	}

	actual := decimal.Zero
	for _, h := range holdings {
		actual = actual.Add(h.Quantity)
	}

	return &GoalReport{
		Goal:         goal,
		CryptoName:   crypto.Name,
		CryptoTicker: crypto.Ticker,
		GoalProgress: CalculateGoalProgress(goal.GoalQuantity, actual, crypto.Prices.USD),
	}, nil
}

// TargetProgress computes the distance to one price target
func (s *Service) TargetProgress(ctx context.Context, targetID uuid.UUID) (*TargetReport, error) {
	target, err := s.TargetRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	crypto, err := s.CryptoRepo.GetByID(ctx, target.CryptoID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target crypto: %w", err)
	}

	return &TargetReport{
		PriceTarget:  target,
		CryptoName:   crypto.Name,
		CryptoTicker: crypto.Ticker,
		TargetProgress: TargetProgress{
			Target:       target.Target,
			CurrentPrice: crypto.Prices.USD,
			ChangeNeeded: CalculateChangeNeeded(target.Target, crypto.Prices.USD),
		},
	}, nil
}
