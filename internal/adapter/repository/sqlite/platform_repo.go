package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cryptofolio/cryptofolio-backend/internal/domain"
)

// platformRepository implements domain.PlatformRepository
type platformRepository struct {
	db *DB
}

// NewPlatformRepository creates a new platform repository
func NewPlatformRepository(db *DB) domain.PlatformRepository {
	return &platformRepository{db: db}
}

// GetByID retrieves a platform by its ID
func (r *platformRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Platform, error) {
	var idStr string
	var platform domain.Platform

	err := r.db.conn.QueryRowContext(ctx,
		`SELECT id, name FROM platforms WHERE id = ?`, id.String(),
	).Scan(&idStr, &platform.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get platform: %w", err)
	}

	if platform.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("failed to parse platform id: %w", err)
	}
	return &platform, nil
}

// Create creates a new platform
func (r *platformRepository) Create(ctx context.Context, platform *domain.Platform) error {
	_, err := r.db.conn.ExecContext(ctx,
		`INSERT INTO platforms (id, name) VALUES (?, ?)`,
		platform.ID.String(), platform.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePlatform
		}
		return fmt.Errorf("failed to create platform: %w", err)
	}
	return nil
}

// Update renames a platform
func (r *platformRepository) Update(ctx context.Context, platform *domain.Platform) error {
	result, err := r.db.conn.ExecContext(ctx,
		`UPDATE platforms SET name = ? WHERE id = ?`,
		platform.Name, platform.ID.String())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePlatform
		}
		return fmt.Errorf("failed to update platform: %w", err)
	}
	return requireAffected(result)
}

// Delete removes a platform
func (r *platformRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.conn.ExecContext(ctx,
		`DELETE FROM platforms WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete platform: %w", err)
	}
	return requireAffected(result)
}

// List retrieves all platforms
func (r *platformRepository) List(ctx context.Context) ([]*domain.Platform, error) {
	rows, err := r.db.conn.QueryContext(ctx, `SELECT id, name FROM platforms ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	defer rows.Close()

	var platforms []*domain.Platform
	for rows.Next() {
		var idStr string
		var platform domain.Platform
		if err := rows.Scan(&idStr, &platform.Name); err != nil {
			return nil, fmt.Errorf("failed to scan platform: %w", err)
		}
		if platform.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("failed to parse platform id: %w", err)
		}
		platforms = append(platforms, &platform)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating platforms: %w", err)
	}
	return platforms, nil
}

// requireAffected maps a zero-row write to ErrNotFound
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read write result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isUniqueViolation detects a UNIQUE constraint failure from the driver
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
