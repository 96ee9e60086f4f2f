// Package sqlite implements the domain repository interfaces on SQLite.
// Amounts are stored as TEXT and parsed back into decimals; they are never
// stored as floats.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
	path string
}

// New opens the database, creating the file and schema when missing
func New(dbPath string) (*DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// WAL for concurrent readers during the refresh cycle
	conn, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)

	db := &DB{conn: conn, path: dbPath}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the underlying sql.DB connection
func (db *DB) Conn() *sql.DB {
	return db.conn
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cryptos (
		id                    TEXT PRIMARY KEY,
		name                  TEXT NOT NULL,
		ticker                TEXT NOT NULL UNIQUE COLLATE NOCASE,
		price_usd             TEXT NOT NULL DEFAULT '0',
		price_eur             TEXT NOT NULL DEFAULT '0',
		price_btc             TEXT NOT NULL DEFAULT '0',
		change_24h            REAL NOT NULL DEFAULT 0,
		change_7d             REAL NOT NULL DEFAULT 0,
		change_30d            REAL NOT NULL DEFAULT 0,
		last_price_updated_at TEXT NOT NULL DEFAULT '0001-01-01T00:00:00Z'
	);

	CREATE TABLE IF NOT EXISTS platforms (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE COLLATE NOCASE
	);

	CREATE TABLE IF NOT EXISTS holdings (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		crypto_id   TEXT NOT NULL REFERENCES cryptos(id),
		platform_id TEXT NOT NULL REFERENCES platforms(id),
		quantity    TEXT NOT NULL,
		UNIQUE (user_id, crypto_id, platform_id)
	);

	CREATE TABLE IF NOT EXISTS goals (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		crypto_id     TEXT NOT NULL REFERENCES cryptos(id),
		goal_quantity TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS price_targets (
		id        TEXT PRIMARY KEY,
		user_id   TEXT NOT NULL,
		crypto_id TEXT NOT NULL REFERENCES cryptos(id),
		target    TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id       TEXT PRIMARY KEY,
		user_id  TEXT NOT NULL,
		ticker   TEXT NOT NULL,
		quantity TEXT NOT NULL,
		price    TEXT NOT NULL,
		type     TEXT NOT NULL,
		platform TEXT NOT NULL,
		date     TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS date_balances (
		id      TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		date    TEXT NOT NULL,
		usd     TEXT NOT NULL,
		eur     TEXT NOT NULL,
		btc     TEXT NOT NULL,
		UNIQUE (user_id, date)
	);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
