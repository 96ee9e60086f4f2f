package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateBalance is a daily snapshot of the user's total balances, saved by
// the scheduler so historical deltas can be computed later. One snapshot
// per user per calendar day; saving again on the same day overwrites.
type DateBalance struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Date     time.Time
	Balances Balances
}
