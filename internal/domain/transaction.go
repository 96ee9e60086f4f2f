package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the side of a manually logged trade
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "BUY"
	TransactionTypeSell TransactionType = "SELL"
)

// Transaction represents one manually logged trade. Transactions are a
// journal only; they never mutate holdings retroactively.
type Transaction struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Ticker   string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Type     TransactionType
	Platform string
	Date     time.Time
}

// Validate ensures the transaction adheres to domain rules
func (t *Transaction) Validate() error {
	if !ValidTicker(t.Ticker) {
		return errors.New("ticker must be 1-15 letters or digits")
	}
	if t.Quantity.LessThanOrEqual(decimal.Zero) {
		return errors.New("transaction quantity must be positive")
	}
	if t.Price.LessThanOrEqual(decimal.Zero) {
		return errors.New("transaction price must be positive")
	}
	if t.Type != TransactionTypeBuy && t.Type != TransactionTypeSell {
		return errors.New("transaction type must be BUY or SELL")
	}
	return nil
}
