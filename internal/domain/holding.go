package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Holding represents the user's position of one asset on one platform.
// Quantity is strictly positive while the holding exists; a holding whose
// quantity reaches zero is logically deleted by the owning service.
type Holding struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CryptoID   uuid.UUID
	PlatformID uuid.UUID
	Quantity   decimal.Decimal
}

// Validate ensures the holding adheres to domain rules
func (h *Holding) Validate() error {
	if h.Quantity.LessThanOrEqual(decimal.Zero) {
		return errors.New("holding quantity must be positive")
	}
	return nil
}
