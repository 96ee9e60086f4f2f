package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

const dayFormat = "2006-01-02"

// dateBalanceRepository implements domain.DateBalanceRepository
type dateBalanceRepository struct {
	db *DB
}

// NewDateBalanceRepository creates a new date-balance repository
func NewDateBalanceRepository(db *DB) domain.DateBalanceRepository {
	return &dateBalanceRepository{db: db}
}

// Save inserts the snapshot, overwriting the one stored for the same day
func (r *dateBalanceRepository) Save(ctx context.Context, snapshot *domain.DateBalance) error {
	_, err := r.db.conn.ExecContext(ctx, `
		INSERT INTO date_balances (id, user_id, date, usd, eur, btc)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date)
		DO UPDATE SET usd = excluded.usd, eur = excluded.eur, btc = excluded.btc`,
		snapshot.ID.String(),
		snapshot.UserID.String(),
		snapshot.Date.UTC().Format(dayFormat),
		snapshot.Balances.USD,
		snapshot.Balances.EUR,
		snapshot.Balances.BTC,
	)
	if err != nil {
		return fmt.Errorf("failed to save date balance: %w", err)
	}
	return nil
}

// ListRange retrieves a user's snapshots within [from, to], oldest first
func (r *dateBalanceRepository) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.DateBalance, error) {
	rows, err := r.db.conn.QueryContext(ctx, `
		SELECT id, user_id, date, usd, eur, btc
		FROM date_balances
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC`,
		userID.String(), from.UTC().Format(dayFormat), to.UTC().Format(dayFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to list date balances: %w", err)
	}
	defer rows.Close()

	var snapshots []*domain.DateBalance
	for rows.Next() {
		var snapshot domain.DateBalance
		var idStr, userStr, dateStr string

		if err := rows.Scan(&idStr, &userStr, &dateStr,
			&snapshot.Balances.USD, &snapshot.Balances.EUR, &snapshot.Balances.BTC); err != nil {
			return nil, fmt.Errorf("failed to scan date balance: %w", err)
		}
		if snapshot.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot id: %w", err)
		}
		if snapshot.UserID, err = uuid.Parse(userStr); err != nil {
			return nil, fmt.Errorf("failed to parse user id: %w", err)
		}
		if snapshot.Date, err = time.Parse(dayFormat, dateStr); err != nil {
			return nil, fmt.Errorf("failed to parse snapshot date: %w", err)
		}
		snapshots = append(snapshots, &snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating date balances: %w", err)
	}
	return snapshots, nil
}
