package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CryptoRepository defines the interface for tracked-asset persistence
type CryptoRepository interface {
	// GetByID retrieves a crypto by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Crypto, error)

	// GetByTicker retrieves a crypto by its ticker (case-insensitive)
	GetByTicker(ctx context.Context, ticker string) (*Crypto, error)

	// Create registers a new tracked asset
	Create(ctx context.Context, crypto *Crypto) error

	// List retrieves all tracked assets
	List(ctx context.Context) ([]*Crypto, error)

	// ListStale retrieves up to limit assets whose market data was last
	// refreshed before the cutoff, oldest first
	ListStale(ctx context.Context, cutoff time.Time, limit int) ([]*Crypto, error)

	// UpdateMarketData replaces the cached prices and change percentages
	UpdateMarketData(ctx context.Context, id uuid.UUID, prices Prices, changes PriceChanges, fetchedAt time.Time) error
}

// PlatformRepository defines the interface for platform persistence
type PlatformRepository interface {
	// GetByID retrieves a platform by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Platform, error)

	// Create creates a new platform
	// Returns ErrDuplicatePlatform when the name is already taken
	Create(ctx context.Context, platform *Platform) error

	// Update renames a platform
	Update(ctx context.Context, platform *Platform) error

	// Delete removes a platform
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves all platforms
	List(ctx context.Context) ([]*Platform, error)
}

// HoldingRepository defines the interface for holding persistence
type HoldingRepository interface {
	// GetByID retrieves a holding by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Holding, error)

	// Find retrieves the holding of one asset on one platform for a user,
	// or ErrNotFound when the user holds none of it there
	Find(ctx context.Context, userID, cryptoID, platformID uuid.UUID) (*Holding, error)

	// ListByUser retrieves all holdings of a user
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Holding, error)

	// ListByUserAndCrypto retrieves a user's holdings of one asset across
	// all platforms
	ListByUserAndCrypto(ctx context.Context, userID, cryptoID uuid.UUID) ([]*Holding, error)

	// ListByUserAndPlatform retrieves a user's holdings on one platform
	ListByUserAndPlatform(ctx context.Context, userID, platformID uuid.UUID) ([]*Holding, error)

	// Save inserts or updates a holding keyed by (user, crypto, platform)
	Save(ctx context.Context, holding *Holding) error

	// Delete removes a holding
	Delete(ctx context.Context, id uuid.UUID) error

	// ListUserIDs retrieves the distinct users that own at least one holding
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

// GoalRepository defines the interface for goal persistence
type GoalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
	Create(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PriceTargetRepository defines the interface for price-target persistence
type PriceTargetRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PriceTarget, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PriceTarget, error)
	Create(ctx context.Context, target *PriceTarget) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository defines the interface for trade-journal persistence
type TransactionRepository interface {
	// Create appends a trade to the journal
	Create(ctx context.Context, tx *Transaction) error

	// List retrieves a page of a user's trades, newest first
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Transaction, error)

	// Count returns the total number of trades for a user
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

// DateBalanceRepository defines the interface for daily balance snapshots
type DateBalanceRepository interface {
	// Save inserts the snapshot, overwriting any snapshot already stored
	// for the same user and calendar day
	Save(ctx context.Context, snapshot *DateBalance) error

	// ListRange retrieves a user's snapshots within [from, to], oldest first
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*DateBalance, error)
}

// MarketQuote is one asset's market data as returned by the provider
type MarketQuote struct {
	Prices  Prices
	Changes PriceChanges
}

// PriceProvider fetches current market data for a batch of tickers.
// Implementations live at the adapter boundary; the engine never calls
// the network itself.
type PriceProvider interface {
	FetchQuotes(ctx context.Context, tickers []string) (map[string]MarketQuote, error)
}
