package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

// holdingRepository implements domain.HoldingRepository
type holdingRepository struct {
	db *DB
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(db *DB) domain.HoldingRepository {
	return &holdingRepository{db: db}
}

const holdingColumns = `id, user_id, crypto_id, platform_id, quantity`

// GetByID retrieves a holding by its ID
func (r *holdingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Holding, error) {
	row := r.db.conn.QueryRowContext(ctx,
		`SELECT `+holdingColumns+` FROM holdings WHERE id = ?`, id.String())
	return scanHolding(row)
}

// Find retrieves the holding of one asset on one platform for a user
func (r *holdingRepository) Find(ctx context.Context, userID, cryptoID, platformID uuid.UUID) (*domain.Holding, error) {
	row := r.db.conn.QueryRowContext(ctx, `
		SELECT `+holdingColumns+` FROM holdings
		WHERE user_id = ? AND crypto_id = ? AND platform_id = ?`,
		userID.String(), cryptoID.String(), platformID.String())
	return scanHolding(row)
}

// ListByUser retrieves all holdings of a user
func (r *holdingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Holding, error) {
	return r.list(ctx,
		`SELECT `+holdingColumns+` FROM holdings WHERE user_id = ?`,
		userID.String())
}

// ListByUserAndCrypto retrieves a user's holdings of one asset
func (r *holdingRepository) ListByUserAndCrypto(ctx context.Context, userID, cryptoID uuid.UUID) ([]*domain.Holding, error) {
	return r.list(ctx,
		`SELECT `+holdingColumns+` FROM holdings WHERE user_id = ? AND crypto_id = ?`,
		userID.String(), cryptoID.String())
}

// ListByUserAndPlatform retrieves a user's holdings on one platform
func (r *holdingRepository) ListByUserAndPlatform(ctx context.Context, userID, platformID uuid.UUID) ([]*domain.Holding, error) {
	return r.list(ctx,
		`SELECT `+holdingColumns+` FROM holdings WHERE user_id = ? AND platform_id = ?`,
		userID.String(), platformID.String())
}

// Save inserts or updates a holding keyed by (user, crypto, platform)
func (r *holdingRepository) Save(ctx context.Context, holding *domain.Holding) error {
	_, err := r.db.conn.ExecContext(ctx, `
		INSERT INTO holdings (id, user_id, crypto_id, platform_id, quantity)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, crypto_id, platform_id)
		DO UPDATE SET quantity = excluded.quantity`,
		holding.ID.String(),
		holding.UserID.String(),
		holding.CryptoID.String(),
		holding.PlatformID.String(),
		holding.Quantity.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to save holding: %w", err)
	}
	return nil
}

// Delete removes a holding
func (r *holdingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.conn.ExecContext(ctx,
		`DELETE FROM holdings WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	return requireAffected(result)
}

// ListUserIDs retrieves the distinct users that own at least one holding
func (r *holdingRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.conn.QueryContext(ctx, `SELECT DISTINCT user_id FROM holdings`)
	if err != nil {
		return nil, fmt.Errorf("failed to list holding users: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var idStr string
		if err := rows.Scan(&idStr); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user ids: %w", err)
	}
	return ids, nil
}

func (r *holdingRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Holding, error) {
	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var holdings []*domain.Holding
	for rows.Next() {
		holding, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holdings: %w", err)
	}
	return holdings, nil
}

func scanHolding(row rowScanner) (*domain.Holding, error) {
	var idStr, userStr, cryptoStr, platformStr, quantityStr string

	err := row.Scan(&idStr, &userStr, &cryptoStr, &platformStr, &quantityStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan holding: %w", err)
	}

	var holding domain.Holding
	if holding.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("failed to parse holding id: %w", err)
	}
	if holding.UserID, err = uuid.Parse(userStr); err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}
	if holding.CryptoID, err = uuid.Parse(cryptoStr); err != nil {
		return nil, fmt.Errorf("failed to parse crypto id: %w", err)
	}
	if holding.PlatformID, err = uuid.Parse(platformStr); err != nil {
		return nil, fmt.Errorf("failed to parse platform id: %w", err)
	}
	if holding.Quantity, err = decimal.NewFromString(quantityStr); err != nil {
		return nil, fmt.Errorf("failed to parse quantity: %w", err)
	}
	return &holding, nil
}
