// Package transfer implements the fee-aware cross-platform transfer
// calculator. The engine is pure: it takes a snapshot of the source and
// destination quantities and returns new quantities plus an accounting
// breakdown, leaving persistence to the Service.
package transfer

import (
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
	"github.com/cryptofolio/cryptofolio-backend/internal/domain/money"
)

// Plan is the immutable input of one transfer computation
type Plan struct {
	// AvailableQuantity is the source holding's current quantity
	AvailableQuantity decimal.Decimal

	// DestinationQuantity is the destination holding's current quantity,
	// zero when the asset is not yet held there
	DestinationQuantity decimal.Decimal

	// QuantityToTransfer is the amount the user asked to move
	QuantityToTransfer decimal.Decimal

	// NetworkFee is the fee charged by the network for the transfer
	NetworkFee decimal.Decimal

	// SendFullQuantity marks a transfer that intends to empty the source,
	// with the fee paid out of the emptied balance rather than on top
	SendFullQuantity bool
}

// Outcome is the result of one transfer computation
type Outcome struct {
	// RemainingSourceQuantity is what stays on the source platform,
	// floored at zero
	RemainingSourceQuantity decimal.Decimal

	// DestinationNewQuantity is the destination quantity after crediting
	// the delivered amount
	DestinationNewQuantity decimal.Decimal

	// QuantityDelivered is what actually arrives at the destination
	QuantityDelivered decimal.Decimal

	// TotalDebited is the accounting figure charged to the source; it can
	// differ from QuantityDelivered because of how the fee is paid
	TotalDebited decimal.Decimal
}

// kind tags the branch of the fee-splitting decision. An explicit tag
// keeps the four computed quantities auditable per branch instead of
// burying them in nested conditionals.
type kind int

const (
	// partialQuantity moves a fixed amount; the fee comes out of the
	// amount in flight
	partialQuantity kind = iota

	// fullQuantityWithRemainder empties less than the whole balance even
	// after the fee; the fee is paid from the leftover
	fullQuantityWithRemainder

	// fullQuantityDepleting empties the balance exactly; the fee is paid
	// from the balance itself
	fullQuantityDepleting
)

// classify picks the branch. unflooredRemaining is the source balance
// after subtracting quantity and fee, before flooring at zero.
func classify(plan Plan, unflooredRemaining decimal.Decimal) kind {
	if !plan.SendFullQuantity {
		return partialQuantity
	}
	if unflooredRemaining.IsZero() {
		return fullQuantityDepleting
	}
	return fullQuantityWithRemainder
}

// Execute runs the transfer computation.
// The insufficient-funds check runs before any arithmetic that could
// yield a negative quantity; on failure the error is
// domain.ErrInsufficientBalance and no quantities are produced.
func Execute(plan Plan) (*Outcome, error) {
	available := plan.AvailableQuantity
	quantity := plan.QuantityToTransfer
	fee := plan.NetworkFee

	if quantity.GreaterThan(available) || fee.GreaterThan(available) {
		return nil, domain.ErrInsufficientBalance
	}

	unfloored := available.Sub(quantity.Add(fee))

	var remaining decimal.Decimal
	if plan.SendFullQuantity {
		remaining = money.FloorZero(unfloored)
	} else {
		remaining = available.Sub(quantity)
	}
	remaining = money.StripZeros(remaining)

	var delivered, debited decimal.Decimal
	switch classify(plan, unfloored) {
	case fullQuantityDepleting:
		delivered = available.Sub(fee)
		debited = quantity
	case fullQuantityWithRemainder:
		delivered = quantity
		if remaining.IsPositive() {
			debited = fee.Add(quantity)
		} else {
			debited = quantity
		}
	default: // partialQuantity
		delivered = quantity.Sub(fee)
		debited = quantity
	}
	delivered = money.StripZeros(delivered)

	return &Outcome{
		RemainingSourceQuantity: remaining,
		DestinationNewQuantity:  money.StripZeros(plan.DestinationQuantity.Add(delivered)),
		QuantityDelivered:       delivered,
		TotalDebited:            debited,
	}, nil
}
