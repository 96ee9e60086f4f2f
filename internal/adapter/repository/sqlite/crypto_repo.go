package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

// cryptoRepository implements domain.CryptoRepository
type cryptoRepository struct {
	db *DB
}

// NewCryptoRepository creates a new crypto repository
func NewCryptoRepository(db *DB) domain.CryptoRepository {
	return &cryptoRepository{db: db}
}

const cryptoColumns = `id, name, ticker, price_usd, price_eur, price_btc,
	change_24h, change_7d, change_30d, last_price_updated_at`

// GetByID retrieves a crypto by its ID
func (r *cryptoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Crypto, error) {
	row := r.db.conn.QueryRowContext(ctx,
		`SELECT `+cryptoColumns+` FROM cryptos WHERE id = ?`, id.String())
	return scanCrypto(row)
}

// GetByTicker retrieves a crypto by its ticker (case-insensitive)
func (r *cryptoRepository) GetByTicker(ctx context.Context, ticker string) (*domain.Crypto, error) {
	row := r.db.conn.QueryRowContext(ctx,
		`SELECT `+cryptoColumns+` FROM cryptos WHERE ticker = ? COLLATE NOCASE`, ticker)
	return scanCrypto(row)
}

// Create registers a new tracked asset
func (r *cryptoRepository) Create(ctx context.Context, crypto *domain.Crypto) error {
	_, err := r.db.conn.ExecContext(ctx, `
		INSERT INTO cryptos (id, name, ticker, price_usd, price_eur, price_btc,
			change_24h, change_7d, change_30d, last_price_updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		crypto.ID.String(),
		crypto.Name,
		crypto.Ticker,
		crypto.Prices.USD.String(),
		crypto.Prices.EUR.String(),
		crypto.Prices.BTC.String(),
		crypto.Changes.Change24h,
		crypto.Changes.Change7d,
		crypto.Changes.Change30d,
		crypto.LastPriceUpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create crypto: %w", err)
	}
	return nil
}

// List retrieves all tracked assets
func (r *cryptoRepository) List(ctx context.Context) ([]*domain.Crypto, error) {
	rows, err := r.db.conn.QueryContext(ctx,
		`SELECT `+cryptoColumns+` FROM cryptos ORDER BY ticker`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cryptos: %w", err)
	}
	defer rows.Close()
	return collectCryptos(rows)
}

// ListStale retrieves up to limit assets refreshed before the cutoff
func (r *cryptoRepository) ListStale(ctx context.Context, cutoff time.Time, limit int) ([]*domain.Crypto, error) {
	rows, err := r.db.conn.QueryContext(ctx, `
		SELECT `+cryptoColumns+` FROM cryptos
		WHERE last_price_updated_at < ?
		ORDER BY last_price_updated_at ASC
		LIMIT ?`,
		cutoff.UTC().Format(time.RFC3339), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale cryptos: %w", err)
	}
	defer rows.Close()
	return collectCryptos(rows)
}

// UpdateMarketData replaces the cached prices and change percentages
func (r *cryptoRepository) UpdateMarketData(
	ctx context.Context,
	id uuid.UUID,
	prices domain.Prices,
	changes domain.PriceChanges,
	fetchedAt time.Time,
) error {
	result, err := r.db.conn.ExecContext(ctx, `
		UPDATE cryptos
		SET price_usd = ?, price_eur = ?, price_btc = ?,
			change_24h = ?, change_7d = ?, change_30d = ?,
			last_price_updated_at = ?
		WHERE id = ?`,
		prices.USD.String(),
		prices.EUR.String(),
		prices.BTC.String(),
		changes.Change24h,
		changes.Change7d,
		changes.Change30d,
		fetchedAt.UTC().Format(time.RFC3339),
		id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update market data: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCrypto(row rowScanner) (*domain.Crypto, error) {
	var crypto domain.Crypto
	var idStr, usdStr, eurStr, btcStr, updatedStr string

	err := row.Scan(
		&idStr,
		&crypto.Name,
		&crypto.Ticker,
		&usdStr,
		&eurStr,
		&btcStr,
		&crypto.Changes.Change24h,
		&crypto.Changes.Change7d,
		&crypto.Changes.Change30d,
		&updatedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan crypto: %w", err)
	}

	if crypto.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("failed to parse crypto id: %w", err)
	}
	if crypto.Prices.USD, err = decimal.NewFromString(usdStr); err != nil {
		return nil, fmt.Errorf("failed to parse price_usd: %w", err)
	}
	if crypto.Prices.EUR, err = decimal.NewFromString(eurStr); err != nil {
		return nil, fmt.Errorf("failed to parse price_eur: %w", err)
	}
	if crypto.Prices.BTC, err = decimal.NewFromString(btcStr); err != nil {
		return nil, fmt.Errorf("failed to parse price_btc: %w", err)
	}
	if crypto.LastPriceUpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("failed to parse last_price_updated_at: %w", err)
	}
	return &crypto, nil
}

func collectCryptos(rows *sql.Rows) ([]*domain.Crypto, error) {
	var cryptos []*domain.Crypto
	for rows.Next() {
		crypto, err := scanCrypto(rows)
		if err != nil {
			return nil, err
		}
		cryptos = append(cryptos, crypto)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cryptos: %w", err)
	}
	return cryptos, nil
}
