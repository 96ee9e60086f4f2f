package scheduler

import (
	"context"
	"time"

	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/history"
	"github.com/cryptofolio/cryptofolio-backend/internal/usecase/pricefeed"
)

const jobTimeout = 2 * time.Minute

// PriceRefreshJob refreshes stale market data on each tick
type PriceRefreshJob struct {
	Service *pricefeed.Service
}

// Name implements Job
func (j *PriceRefreshJob) Name() string { return "price_refresh" }

// Run implements Job
func (j *PriceRefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	_, err := j.Service.RefreshStale(ctx)
	return err
}

// SnapshotJob stores the daily balance snapshot for every user
type SnapshotJob struct {
	Service *history.Service
}

// Name implements Job
func (j *SnapshotJob) Name() string { return "daily_balance_snapshot" }

// Run implements Job
func (j *SnapshotJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	return j.Service.SnapshotAll(ctx)
}
