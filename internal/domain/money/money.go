// Package money provides the fixed-point arithmetic helpers used by every
// calculation in the engine. All amounts are shopspring decimals; binary
// floats are never used for money. Each helper performs exactly one
// documented rounding step — nothing in this package truncates silently.
package money

import (
	"github.com/shopspring/decimal"
)

const (
	// FiatScale is the display precision for USD/EUR amounts
	FiatScale int32 = 2

	// CryptoScale is the display precision for BTC amounts
	CryptoScale int32 = 8

	// PercentScale is the minimum intermediate precision for share-of-total
	// divisions before casting to float64
	PercentScale int32 = 4
)

// DivRound divides a by b at the given scale, rounding half up.
// The engine never divides without an explicit scale.
func DivRound(a, b decimal.Decimal, scale int32) decimal.Decimal {
	return a.DivRound(b, scale)
}

// RoundFiat rounds to 2 decimal places, half up
func RoundFiat(d decimal.Decimal) decimal.Decimal {
	return d.Round(FiatScale)
}

// RoundCrypto rounds to 8 decimal places using banker's rounding (half even)
func RoundCrypto(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(CryptoScale)
}

// FiatString renders a fiat amount with exactly 2 fraction digits ("3.01")
func FiatString(d decimal.Decimal) string {
	return RoundFiat(d).StringFixed(FiatScale)
}

// CryptoString renders a BTC amount at 8 decimal places with trailing
// zeros stripped ("0.015", never "0.01500000")
func CryptoString(d decimal.Decimal) string {
	return RoundCrypto(d).String()
}

// FloorZero clamps a negative amount to zero. Quantities are never
// negative after any engine operation.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// StripZeros normalizes the internal representation so that the value
// renders without trailing fraction zeros
func StripZeros(d decimal.Decimal) decimal.Decimal {
	return decimal.RequireFromString(d.String())
}
