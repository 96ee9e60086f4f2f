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

// priceTargetRepository implements domain.PriceTargetRepository
type priceTargetRepository struct {
	db *DB
}

// NewPriceTargetRepository creates a new price-target repository
func NewPriceTargetRepository(db *DB) domain.PriceTargetRepository {
	return &priceTargetRepository{db: db}
}

func (r *priceTargetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PriceTarget, error) {
	row := r.db.conn.QueryRowContext(ctx,
		`SELECT id, user_id, crypto_id, target FROM price_targets WHERE id = ?`,
		id.String())
	return scanPriceTarget(row)
}

func (r *priceTargetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.PriceTarget, error) {
	rows, err := r.db.conn.QueryContext(ctx,
		`SELECT id, user_id, crypto_id, target FROM price_targets WHERE user_id = ?`,
		userID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list price targets: %w", err)
	}
	defer rows.Close()

	var targets []*domain.PriceTarget
	for rows.Next() {
		target, err := scanPriceTarget(rows)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price targets: %w", err)
	}
	return targets, nil
}

func (r *priceTargetRepository) Create(ctx context.Context, target *domain.PriceTarget) error {
	_, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO price_targets (id, user_id, crypto_id, target) VALUES (?, ?, ?, ?)`,
		target.ID.String(), target.UserID.String(), target.CryptoID.String(), target.Target.String())
	if err != nil {
		return fmt.Errorf("failed to create price target: %w", err)
	}
	return nil
}

func (r *priceTargetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.conn.ExecContext(ctx, `DELETE FROM price_targets WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete price target: %w", err)
	}
	return requireAffected(result)
}

func scanPriceTarget(row rowScanner) (*domain.PriceTarget, error) {
	var idStr, userStr, cryptoStr, targetStr string

	err := row.Scan(&idStr, &userStr, &cryptoStr, &targetStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan price target: %w", err)
	}

	var target domain.PriceTarget
	if target.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("failed to parse price target id: %w", err)
	}
	if target.UserID, err = uuid.Parse(userStr); err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}
	if target.CryptoID, err = uuid.Parse(cryptoStr); err != nil {
		return nil, fmt.Errorf("failed to parse crypto id: %w", err)
	}
	if target.Target, err = decimal.NewFromString(targetStr); err != nil {
		return nil, fmt.Errorf("failed to parse target price: %w", err)
	}
	return &target, nil
}
