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

// goalRepository implements domain.GoalRepository
type goalRepository struct {
	db *DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *DB) domain.GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	row := r.db.conn.QueryRowContext(ctx,
		`SELECT id, user_id, crypto_id, goal_quantity FROM goals WHERE id = ?`,
		id.String())
	return scanGoal(row)
}

func (r *goalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error) {
	rows, err := r.db.conn.QueryContext(ctx,
		`SELECT id, user_id, crypto_id, goal_quantity FROM goals WHERE user_id = ?`,
		userID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %w", err)
	}
	return goals, nil
}

func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	_, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO goals (id, user_id, crypto_id, goal_quantity) VALUES (?, ?, ?, ?)`,
		goal.ID.String(), goal.UserID.String(), goal.CryptoID.String(), goal.GoalQuantity.String())
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.conn.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return requireAffected(result)
}

func scanGoal(row rowScanner) (*domain.Goal, error) {
	var idStr, userStr, cryptoStr, quantityStr string

	err := row.Scan(&idStr, &userStr, &cryptoStr, &quantityStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan goal: %w", err)
	}

	var goal domain.Goal
	if goal.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("failed to parse goal id: %w", err)
	}
	if goal.UserID, err = uuid.Parse(userStr); err != nil {
		return nil, fmt.Errorf("failed to parse user id: %w", err)
	}
	if goal.CryptoID, err = uuid.Parse(cryptoStr); err != nil {
		return nil, fmt.Errorf("failed to parse crypto id: %w", err)
	}
	if goal.GoalQuantity, err = decimal.NewFromString(quantityStr); err != nil {
		return nil, fmt.Errorf("failed to parse goal quantity: %w", err)
	}
	return &goal, nil
}
