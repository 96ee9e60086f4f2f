// Package history saves daily balance snapshots and computes deltas
// between them.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
	"github.com/cryptofolio/cryptofolio-backend/internal/domain/money"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/insights"
)

// Report is a user's snapshot series plus the change over the window
type Report struct {
	Snapshots []*domain.DateBalance
	ChangeUSD string
	ChangeEUR string
	ChangeBTC string
}

// Service persists and reads daily balance snapshots
type Service struct {
	HoldingRepo     domain.HoldingRepository
	DateBalanceRepo domain.DateBalanceRepository
	Insights        *insights.Service

	now func() time.Time
}

// NewService creates a new history Service instance
func NewService(
	holdingRepo domain.HoldingRepository,
	dateBalanceRepo domain.DateBalanceRepository,
	insightsService *insights.Service,
) *Service {
	return &Service{
		HoldingRepo:     holdingRepo,
		DateBalanceRepo: dateBalanceRepo,
		Insights:        insightsService,
		now:             time.Now,
	}
}

// SnapshotUser stores today's total balances for one user, overwriting an
// earlier snapshot taken the same day
func (s *Service) SnapshotUser(ctx context.Context, userID uuid.UUID) (*domain.DateBalance, error) {
	total, err := s.Insights.Total(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.DateBalance{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     truncateDay(s.now()),
		Balances: total,
	}
	if err := s.DateBalanceRepo.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to save balance snapshot: %w", err)
	}
	return snapshot, nil
}

// SnapshotAll stores today's snapshot for every user that owns holdings
func (s *Service) SnapshotAll(ctx context.Context) error {
	userIDs, err := s.HoldingRepo.ListUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	for _, id := range userIDs {
		if _, err := s.SnapshotUser(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Report returns the user's snapshots for the last days calendar days and
// the balance change between the oldest and newest snapshot in the window
func (s *Service) Report(ctx context.Context, userID uuid.UUID, days int) (*Report, error) {
	if days <= 0 {
		days = 7
	}
	to := truncateDay(s.now())
	from := to.AddDate(0, 0, -days)

	snapshots, err := s.DateBalanceRepo.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	report := &Report{Snapshots: snapshots, ChangeUSD: "0", ChangeEUR: "0", ChangeBTC: "0"}
	if len(snapshots) < 2 {
		return report, nil
	}

	oldest, newest := snapshots[0].Balances, snapshots[len(snapshots)-1].Balances
	report.ChangeUSD, err = balanceDelta(oldest.USD, newest.USD, money.FiatString)
	if err != nil {
		return nil, err
	}
	report.ChangeEUR, err = balanceDelta(oldest.EUR, newest.EUR, money.FiatString)
	if err != nil {
		return nil, err
	}
	report.ChangeBTC, err = balanceDelta(oldest.BTC, newest.BTC, money.CryptoString)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func balanceDelta(oldest, newest string, render func(decimal.Decimal) string) (string, error) {
	a, err := decimal.NewFromString(oldest)
	if err != nil {
		return "", fmt.Errorf("corrupt snapshot balance %q: %w", oldest, err)
	}
	b, err := decimal.NewFromString(newest)
	if err != nil {
		return "", fmt.Errorf("corrupt snapshot balance %q: %w", newest, err)
	}
	return render(b.Sub(a)), nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
