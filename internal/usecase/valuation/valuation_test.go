package valuation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

func TestConvert_RoundsFiatHalfUp(t *testing.T) {
	prices := domain.Prices{
		USD: decimal.RequireFromString("3.005"),
		EUR: decimal.RequireFromString("2.994"),
		BTC: decimal.RequireFromString("0.000000005"),
	}

	balances := Convert(decimal.NewFromInt(1), prices)

	assert.Equal(t, "3.01", balances.USD)
	assert.Equal(t, "2.99", balances.EUR)
	// the BTC tie lands on an even digit and rounds down to zero
	assert.Equal(t, "0", balances.BTC)
}

func TestConvert_ZeroQuantityYieldsEmptyBalances(t *testing.T) {
	prices := domain.Prices{
		USD: decimal.NewFromInt(50000),
		EUR: decimal.NewFromInt(46000),
		BTC: decimal.NewFromInt(1),
	}

	assert.Equal(t, domain.EmptyBalances, Convert(decimal.Zero, prices))
}

func TestConvert_BitcoinHoldingScenario(t *testing.T) {
	prices := domain.Prices{
		USD: decimal.RequireFromString("64230.55"),
		EUR: decimal.RequireFromString("59104.20"),
		BTC: decimal.NewFromInt(1),
	}

	balances := Convert(decimal.RequireFromString("0.25"), prices)

	assert.Equal(t, "16057.64", balances.USD)
	assert.Equal(t, "14776.05", balances.EUR)
	assert.Equal(t, "0.25", balances.BTC)
}

func TestPercentOf_QuarterShare(t *testing.T) {
	assert.Equal(t, 25.0, PercentOf(decimal.NewFromInt(25), decimal.NewFromInt(100)))
}

func TestPercentOf_ZeroWholeYieldsZero(t *testing.T) {
	assert.Equal(t, 0.0, PercentOf(decimal.NewFromInt(10), decimal.Zero))
}

func TestPercentOf_ThreeWaySplitSumsCloseToHundred(t *testing.T) {
	whole := decimal.NewFromInt(3)
	part := decimal.NewFromInt(1)

	sum := 0.0
	for i := 0; i < 3; i++ {
		sum += PercentOf(part, whole)
	}

	assert.InDelta(t, 100.0, sum, 0.1)
}
