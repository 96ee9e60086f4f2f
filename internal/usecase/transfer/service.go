package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

// Input describes one requested cross-platform transfer
type Input struct {
	UserID           uuid.UUID
	CryptoID         uuid.UUID
	FromPlatformID   uuid.UUID
	ToPlatformID     uuid.UUID
	Quantity         decimal.Decimal
	NetworkFee       decimal.Decimal
	SendFullQuantity bool
}

// Result is the persisted outcome of one transfer
type Result struct {
	Outcome
	FromPlatform string
	ToPlatform   string
}

// Service loads the holding snapshot, runs the engine and persists the new
// quantities. The call is all-or-nothing: nothing is written when the
// engine rejects the plan.
type Service struct {
	HoldingRepo  domain.HoldingRepository
	PlatformRepo domain.PlatformRepository
}

// NewService creates a new transfer Service instance
func NewService(holdingRepo domain.HoldingRepository, platformRepo domain.PlatformRepository) *Service {
	return &Service{
		HoldingRepo:  holdingRepo,
		PlatformRepo: platformRepo,
	}
}

// Transfer executes a transfer between two platforms
func (s *Service) Transfer(ctx context.Context, input Input) (*Result, error) {
	if input.FromPlatformID == input.ToPlatformID {
		return nil, fmt.Errorf("%w: source and destination platforms must differ", domain.ErrInvalidRequest)
	}
	if input.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transfer quantity must be positive", domain.ErrInvalidRequest)
	}
	if input.NetworkFee.IsNegative() {
		return nil, fmt.Errorf("%w: network fee cannot be negative", domain.ErrInvalidRequest)
	}

	fromPlatform, err := s.PlatformRepo.GetByID(ctx, input.FromPlatformID)
	if err != nil {
		return nil, err
	}
	toPlatform, err := s.PlatformRepo.GetByID(ctx, input.ToPlatformID)
	if err != nil {
		return nil, err
	}

	source, err := s.HoldingRepo.Find(ctx, input.UserID, input.CryptoID, input.FromPlatformID)
	if err != nil {
		return nil, err
	}

	destQuantity := decimal.Zero
	dest, err := s.HoldingRepo.Find(ctx, input.UserID, input.CryptoID, input.ToPlatformID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if dest != nil {
		destQuantity = dest.Quantity
	}

	outcome, err := Execute(Plan{
		AvailableQuantity:   source.Quantity,
		DestinationQuantity: destQuantity,
		QuantityToTransfer:  input.Quantity,
		NetworkFee:          input.NetworkFee,
		SendFullQuantity:    input.SendFullQuantity,
	})
	if err != nil {
		return nil, err
	}

	// A source emptied to zero is logically deleted
	if outcome.RemainingSourceQuantity.IsZero() {
		if err := s.HoldingRepo.Delete(ctx, source.ID); err != nil {
			return nil, fmt.Errorf("failed to delete emptied source holding: %w", err)
		}
	} else {
		source.Quantity = outcome.RemainingSourceQuantity
		if err := s.HoldingRepo.Save(ctx, source); err != nil {
			return nil, fmt.Errorf("failed to update source holding: %w", err)
		}
	}

	if dest == nil {
		dest = &domain.Holding{
			ID:         uuid.New(),
			UserID:     input.UserID,
			CryptoID:   input.CryptoID,
			PlatformID: input.ToPlatformID,
		}
	}
	dest.Quantity = outcome.DestinationNewQuantity
	if err := s.HoldingRepo.Save(ctx, dest); err != nil {
		return nil, fmt.Errorf("failed to update destination holding: %w", err)
	}

	return &Result{
		Outcome:      *outcome,
		FromPlatform: fromPlatform.Name,
		ToPlatform:   toPlatform.Name,
	}, nil
}
