package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Prices holds the unit price of one asset in each supported denomination.
// Prices are always positive whenever they are used as a divisor.
type Prices struct {
	USD decimal.Decimal
	EUR decimal.Decimal
	BTC decimal.Decimal
}

// PriceChanges holds the market price change percentages for the standard
// lookback windows. These come straight from the market-data provider and
// are only used for ranking, so float64 is sufficient.
type PriceChanges struct {
	Change24h float64
	Change7d  float64
	Change30d float64
}

// Crypto represents a tracked asset together with its last fetched market
// data. Price freshness is tracked so the refresh cycle can honor the
// cooldown window.
type Crypto struct {
	ID                 uuid.UUID
	Name               string
	Ticker             string
	Prices             Prices
	Changes            PriceChanges
	LastPriceUpdatedAt time.Time
}

// Validate ensures the crypto adheres to domain rules
func (c *Crypto) Validate() error {
	if !ValidCryptoName(c.Name) {
		return errors.New("crypto name must be 1-64 letters, digits, spaces, dots or hyphens")
	}
	if !ValidTicker(c.Ticker) {
		return errors.New("ticker must be 1-15 letters or digits")
	}
	return nil
}
