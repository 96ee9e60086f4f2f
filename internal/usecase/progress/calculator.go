// Package progress computes goal progress and price-target distance.
package progress

import (
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain/money"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/valuation"
)

var hundred = decimal.NewFromInt(100)

// GoalProgress is the computed state of one accumulation goal
type GoalProgress struct {
	GoalQuantity      decimal.Decimal
	ActualQuantity    decimal.Decimal
	RemainingQuantity decimal.Decimal
	Progress          float64
	MoneyNeeded       decimal.Decimal
}

// CalculateGoalProgress computes progress toward a quantity goal.
//   - remaining = max(goal - actual, 0)
//   - progress = actual / goal x 100, not capped above 100
//   - moneyNeeded = remaining x currentPrice, rendered at fiat precision
//
// A non-positive goal is rejected upstream; if one slips through the
// progress is reported as 0 instead of dividing by zero.
func CalculateGoalProgress(goalQuantity, actualQuantity, currentPrice decimal.Decimal) GoalProgress {
	remaining := money.FloorZero(goalQuantity.Sub(actualQuantity))

	var pct float64
	if goalQuantity.IsPositive() {
		pct = valuation.PercentOf(actualQuantity, goalQuantity)
	}

	return GoalProgress{
		GoalQuantity:      goalQuantity,
		ActualQuantity:    actualQuantity,
		RemainingQuantity: money.StripZeros(remaining),
		Progress:          pct,
		MoneyNeeded:       money.RoundFiat(remaining.Mul(currentPrice)),
	}
}

// TargetProgress is the computed distance to one price target
type TargetProgress struct {
	Target       decimal.Decimal
	CurrentPrice decimal.Decimal
	ChangeNeeded decimal.Decimal
}

// CalculateChangeNeeded computes the percentage move required for the
// current price to reach the target. The two-stage rounding (ratio at 3
// decimals half up, then x100 at 2 decimals half up) is load-bearing:
// reordering it changes the least significant digit near ties.
func CalculateChangeNeeded(target, currentPrice decimal.Decimal) decimal.Decimal {
	if currentPrice.IsZero() {
		return decimal.Zero
	}
	ratio := money.DivRound(target.Sub(currentPrice), currentPrice, 3)
	return ratio.Mul(hundred).Round(2)
}
