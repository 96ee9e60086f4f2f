package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

// transactionRepository implements domain.TransactionRepository
type transactionRepository struct {
	db *DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *DB) domain.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create appends a trade to the journal
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.db.conn.ExecContext(ctx, `
		INSERT INTO transactions (id, user_id, ticker, quantity, price, type, platform, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID.String(),
		tx.UserID.String(),
		tx.Ticker,
		tx.Quantity.String(),
		tx.Price.String(),
		string(tx.Type),
		tx.Platform,
		tx.Date.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// List retrieves a page of a user's trades, newest first
func (r *transactionRepository) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.db.conn.QueryContext(ctx, `
		SELECT id, user_id, ticker, quantity, price, type, platform, date
		FROM transactions
		WHERE user_id = ?
		ORDER BY date DESC
		LIMIT ? OFFSET ?`,
		userID.String(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var idStr, userStr, quantityStr, priceStr, typeStr, dateStr string

		if err := rows.Scan(&idStr, &userStr, &tx.Ticker, &quantityStr, &priceStr, &typeStr, &tx.Platform, &dateStr); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if tx.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("failed to parse transaction id: %w", err)
		}
		if tx.UserID, err = uuid.Parse(userStr); err != nil {
			return nil, fmt.Errorf("failed to parse user id: %w", err)
		}
		if tx.Quantity, err = decimal.NewFromString(quantityStr); err != nil {
			return nil, fmt.Errorf("failed to parse quantity: %w", err)
		}
		if tx.Price, err = decimal.NewFromString(priceStr); err != nil {
			return nil, fmt.Errorf("failed to parse price: %w", err)
		}
		tx.Type = domain.TransactionType(typeStr)
		if tx.Date, err = time.Parse(time.RFC3339, dateStr); err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		txs = append(txs, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return txs, nil
}

// Count returns the total number of trades for a user
func (r *transactionRepository) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE user_id = ?`, userID.String(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}
