package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a target quantity of one asset the user wants to
// accumulate across all platforms.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CryptoID     uuid.UUID
	GoalQuantity decimal.Decimal
}

// Validate ensures the goal adheres to domain rules.
// A non-positive goal quantity would make progress undefined.
func (g *Goal) Validate() error {
	if g.GoalQuantity.LessThanOrEqual(decimal.Zero) {
		return errors.New("goal quantity must be positive")
	}
	return nil
}

// PriceTarget represents a unit price the user is watching for one asset
type PriceTarget struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	CryptoID uuid.UUID
	Target   decimal.Decimal
}

// Validate ensures the price target adheres to domain rules
func (t *PriceTarget) Validate() error {
	if t.Target.LessThanOrEqual(decimal.Zero) {
		return errors.New("price target must be positive")
	}
	return nil
}
