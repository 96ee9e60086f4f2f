// Package valuation turns raw asset quantities and unit prices into
// rendered balances and share-of-total percentages. Every function here is
// pure: no I/O, no state, safe for concurrent use.
package valuation

import (
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
	"github.com/cryptofolio/cryptofolio-backend/internal/domain/money"
)

// Convert renders a quantity at the given unit prices.
// Rounding contract:
//   - USD/EUR: quantity x price rounded to 2 decimals, half up
//   - BTC: quantity x price rounded to 8 decimals, half even, trailing
//     zeros stripped
//
// A zero quantity yields EmptyBalances.
func Convert(quantity decimal.Decimal, prices domain.Prices) domain.Balances {
	if quantity.IsZero() {
		return domain.EmptyBalances
	}
	return domain.Balances{
		USD: money.FiatString(quantity.Mul(prices.USD)),
		EUR: money.FiatString(quantity.Mul(prices.EUR)),
		BTC: money.CryptoString(quantity.Mul(prices.BTC)),
	}
}

// PercentOf returns part's share of whole as a percentage.
// A zero whole yields 0 rather than an error; callers aggregate empty
// collections and a divide-by-zero there is not an exceptional state.
// The division happens on decimals at 4 fraction digits before the cast
// to float64 so that summing many row percentages does not drift visibly.
func PercentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return money.DivRound(part.Mul(decimal.NewFromInt(100)), whole, money.PercentScale).InexactFloat64()
}
