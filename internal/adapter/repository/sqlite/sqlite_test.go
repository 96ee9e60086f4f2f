package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedCrypto(t *testing.T, db *DB, name, ticker string) *domain.Crypto {
	t.Helper()
	crypto := &domain.Crypto{
		ID:     uuid.New(),
		Name:   name,
		Ticker: ticker,
		Prices: domain.Prices{
			USD: decimal.NewFromInt(100),
			EUR: decimal.NewFromInt(92),
			BTC: decimal.RequireFromString("0.001"),
		},
	}
	require.NoError(t, NewCryptoRepository(db).Create(context.Background(), crypto))
	return crypto
}

func seedPlatform(t *testing.T, db *DB, name string) *domain.Platform {
	t.Helper()
	platform := &domain.Platform{ID: uuid.New(), Name: name}
	require.NoError(t, NewPlatformRepository(db).Create(context.Background(), platform))
	return platform
}

func TestHoldingRepository_SaveUpsertsOnConflict(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewHoldingRepository(db)

	crypto := seedCrypto(t, db, "Bitcoin", "BTC")
	platform := seedPlatform(t, db, "Kraken")
	userID := uuid.New()

	holding := &domain.Holding{
		ID:         uuid.New(),
		UserID:     userID,
		CryptoID:   crypto.ID,
		PlatformID: platform.ID,
		Quantity:   decimal.RequireFromString("0.5"),
	}
	require.NoError(t, repo.Save(ctx, holding))

	// A second save with the same key replaces the quantity, not the row
	holding.Quantity = decimal.RequireFromString("0.75")
	require.NoError(t, repo.Save(ctx, holding))

	found, err := repo.Find(ctx, userID, crypto.ID, platform.ID)
	require.NoError(t, err)
	assert.True(t, found.Quantity.Equal(decimal.RequireFromString("0.75")))

	all, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestHoldingRepository_FindMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewHoldingRepository(db)

	_, err := repo.Find(ctx, uuid.New(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHoldingRepository_QuantityRoundTripsExactly(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewHoldingRepository(db)

	crypto := seedCrypto(t, db, "Bitcoin", "BTC")
	platform := seedPlatform(t, db, "Ledger")

	// High-precision quantity must survive storage without float drift
	quantity := decimal.RequireFromString("0.123456789012345678")
	holding := &domain.Holding{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		CryptoID:   crypto.ID,
		PlatformID: platform.ID,
		Quantity:   quantity,
	}
	require.NoError(t, repo.Save(ctx, holding))

	found, err := repo.GetByID(ctx, holding.ID)
	require.NoError(t, err)
	assert.Equal(t, quantity.String(), found.Quantity.String())
}

func TestPlatformRepository_DuplicateNameRejected(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPlatformRepository(db)

	require.NoError(t, repo.Create(ctx, &domain.Platform{ID: uuid.New(), Name: "Kraken"}))

	err := repo.Create(ctx, &domain.Platform{ID: uuid.New(), Name: "kraken"})
	assert.ErrorIs(t, err, domain.ErrDuplicatePlatform)
}

func TestPlatformRepository_DeleteMissingReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPlatformRepository(db)

	err := repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCryptoRepository_ListStaleOrdersOldestFirst(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCryptoRepository(db)

	fresh := seedCrypto(t, db, "Bitcoin", "BTC")
	staleOld := seedCrypto(t, db, "Ethereum", "ETH")
	staleOlder := seedCrypto(t, db, "Solana", "SOL")

	now := time.Now().UTC()
	prices := domain.Prices{
		USD: decimal.NewFromInt(1),
		EUR: decimal.NewFromInt(1),
		BTC: decimal.NewFromInt(1),
	}
	require.NoError(t, repo.UpdateMarketData(ctx, fresh.ID, prices, domain.PriceChanges{}, now))
	require.NoError(t, repo.UpdateMarketData(ctx, staleOld.ID, prices, domain.PriceChanges{}, now.Add(-10*time.Minute)))
	require.NoError(t, repo.UpdateMarketData(ctx, staleOlder.ID, prices, domain.PriceChanges{}, now.Add(-20*time.Minute)))

	stale, err := repo.ListStale(ctx, now.Add(-5*time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, stale, 2)
	assert.Equal(t, "SOL", stale[0].Ticker)
	assert.Equal(t, "ETH", stale[1].Ticker)

	// The limit caps the batch at the oldest entries
	capped, err := repo.ListStale(ctx, now.Add(-5*time.Minute), 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, "SOL", capped[0].Ticker)
}

func TestCryptoRepository_GetByTickerIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCryptoRepository(db)

	seedCrypto(t, db, "Bitcoin", "BTC")

	found, err := repo.GetByTicker(ctx, "btc")
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin", found.Name)
}

func TestDateBalanceRepository_SameDaySnapshotOverwrites(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewDateBalanceRepository(db)

	userID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	first := &domain.DateBalance{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     day,
		Balances: domain.Balances{USD: "1000.00", EUR: "920.00", BTC: "0.02"},
	}
	require.NoError(t, repo.Save(ctx, first))

	second := &domain.DateBalance{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     day,
		Balances: domain.Balances{USD: "1100.00", EUR: "1010.00", BTC: "0.021"},
	}
	require.NoError(t, repo.Save(ctx, second))

	snapshots, err := repo.ListRange(ctx, userID, day.AddDate(0, 0, -1), day)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, "1100.00", snapshots[0].Balances.USD)
}

func TestTransactionRepository_ListNewestFirstWithPaging(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTransactionRepository(db)

	userID := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		tx := &domain.Transaction{
			ID:       uuid.New(),
			UserID:   userID,
			Ticker:   "BTC",
			Quantity: decimal.RequireFromString("0.1"),
			Price:    decimal.NewFromInt(60000 + int64(i)),
			Type:     domain.TransactionTypeBuy,
			Platform: "Kraken",
			Date:     base.AddDate(0, 0, i),
		}
		require.NoError(t, repo.Create(ctx, tx))
	}

	page, err := repo.List(ctx, userID, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.True(t, page[0].Date.After(page[1].Date))

	count, err := repo.Count(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
