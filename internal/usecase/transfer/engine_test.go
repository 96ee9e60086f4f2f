package transfer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

func TestExecute_PartialTransferFeePaidInFlight(t *testing.T) {
	// Move 5 of 10 ETH; the 1 ETH fee comes out of the amount in flight
	outcome, err := Execute(Plan{
		AvailableQuantity:   decimal.NewFromInt(10),
		DestinationQuantity: decimal.NewFromInt(2),
		QuantityToTransfer:  decimal.NewFromInt(5),
		NetworkFee:          decimal.NewFromInt(1),
		SendFullQuantity:    false,
	})

	require.NoError(t, err)
	assert.Equal(t, "5", outcome.RemainingSourceQuantity.String())
	assert.Equal(t, "4", outcome.QuantityDelivered.String())
	assert.Equal(t, "6", outcome.DestinationNewQuantity.String())
	assert.Equal(t, "5", outcome.TotalDebited.String())
}

func TestExecute_FullTransferWithRemainder(t *testing.T) {
	// Asked for 5 of 10 as a full send: the requested amount arrives intact
	// and the fee is paid from what stays behind
	outcome, err := Execute(Plan{
		AvailableQuantity:   decimal.NewFromInt(10),
		DestinationQuantity: decimal.Zero,
		QuantityToTransfer:  decimal.NewFromInt(5),
		NetworkFee:          decimal.NewFromInt(1),
		SendFullQuantity:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "4", outcome.RemainingSourceQuantity.String())
	assert.Equal(t, "5", outcome.QuantityDelivered.String())
	assert.Equal(t, "5", outcome.DestinationNewQuantity.String())
	assert.Equal(t, "6", outcome.TotalDebited.String())
}

func TestExecute_FullTransferDepletesSource(t *testing.T) {
	// Quantity plus fee is exactly the balance: the fee eats into delivery
	outcome, err := Execute(Plan{
		AvailableQuantity:   decimal.NewFromInt(10),
		DestinationQuantity: decimal.Zero,
		QuantityToTransfer:  decimal.NewFromInt(9),
		NetworkFee:          decimal.NewFromInt(1),
		SendFullQuantity:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "0", outcome.RemainingSourceQuantity.String())
	assert.Equal(t, "9", outcome.QuantityDelivered.String())
	assert.Equal(t, "9", outcome.DestinationNewQuantity.String())
	assert.Equal(t, "9", outcome.TotalDebited.String())
}

func TestExecute_FullTransferZeroFee(t *testing.T) {
	outcome, err := Execute(Plan{
		AvailableQuantity:   decimal.RequireFromString("1.50"),
		DestinationQuantity: decimal.Zero,
		QuantityToTransfer:  decimal.RequireFromString("1.50"),
		NetworkFee:          decimal.Zero,
		SendFullQuantity:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "0", outcome.RemainingSourceQuantity.String())
	assert.Equal(t, "1.5", outcome.QuantityDelivered.String())
	assert.Equal(t, "1.5", outcome.DestinationNewQuantity.String())
}

func TestExecute_QuantityConservation(t *testing.T) {
	// remaining + quantity == available for any partial transfer
	plans := []Plan{
		{
			AvailableQuantity:  decimal.RequireFromString("0.73552"),
			QuantityToTransfer: decimal.RequireFromString("0.25"),
			NetworkFee:         decimal.RequireFromString("0.0005"),
		},
		{
			AvailableQuantity:  decimal.NewFromInt(100),
			QuantityToTransfer: decimal.RequireFromString("99.999"),
			NetworkFee:         decimal.RequireFromString("0.001"),
		},
	}

	for _, plan := range plans {
		outcome, err := Execute(plan)
		require.NoError(t, err)

		total := outcome.RemainingSourceQuantity.Add(plan.QuantityToTransfer)
		assert.True(t, total.Equal(plan.AvailableQuantity),
			"remaining %s + quantity %s should equal available %s",
			outcome.RemainingSourceQuantity, plan.QuantityToTransfer, plan.AvailableQuantity)
	}
}

func TestExecute_InsufficientQuantity(t *testing.T) {
	outcome, err := Execute(Plan{
		AvailableQuantity:  decimal.NewFromInt(10),
		QuantityToTransfer: decimal.NewFromInt(11),
		NetworkFee:         decimal.Zero,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Nil(t, outcome)
}

func TestExecute_FeeExceedsBalance(t *testing.T) {
	outcome, err := Execute(Plan{
		AvailableQuantity:  decimal.NewFromInt(10),
		QuantityToTransfer: decimal.NewFromInt(1),
		NetworkFee:         decimal.NewFromInt(11),
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Nil(t, outcome)
}

func TestExecute_RemainderStripsTrailingZeros(t *testing.T) {
	outcome, err := Execute(Plan{
		AvailableQuantity:   decimal.RequireFromString("2.500"),
		DestinationQuantity: decimal.Zero,
		QuantityToTransfer:  decimal.RequireFromString("1.000"),
		NetworkFee:          decimal.RequireFromString("0.100"),
		SendFullQuantity:    true,
	})

	require.NoError(t, err)
	assert.Equal(t, "1.4", outcome.RemainingSourceQuantity.String())
	assert.Equal(t, "1", outcome.QuantityDelivered.String())
	assert.Equal(t, "1.1", outcome.TotalDebited.String())
}
