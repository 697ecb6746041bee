// Package sqlite provides the SQLite record store for show records.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	// This prevents immediate "database is locked" errors.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases for better write performance.
	// WAL is ~7x faster for writes and allows concurrent reads during writes.
	// Trade-off: creates additional -wal and -shm files alongside the database.
	// Note: WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// Stats returns database statistics.
func (db *DB) Stats() sql.DBStats {
	return db.db.Stats()
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS shows (
			id TEXT PRIMARY KEY,
			collection TEXT NOT NULL,
			slug TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			source_path TEXT NOT NULL DEFAULT '',
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			synopsis TEXT NOT NULL DEFAULT '',
			duration INTEGER NOT NULL DEFAULT 60 CHECK (duration >= 0),
			age_range TEXT NOT NULL DEFAULT '',
			age_range_min INTEGER NOT NULL DEFAULT 4,
			age_range_max INTEGER NOT NULL DEFAULT 16,
			price INTEGER NOT NULL DEFAULT 50 CHECK (price >= 0),
			venue TEXT NOT NULL DEFAULT '',
			dates TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			language TEXT NOT NULL,
			images TEXT NOT NULL DEFAULT '[]',
			gallery TEXT NOT NULL DEFAULT '[]',
			cast_members TEXT NOT NULL DEFAULT '[]',
			technical_info TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'draft',
			source_hash TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			UNIQUE (collection, slug)
		);

		CREATE INDEX IF NOT EXISTS idx_shows_collection ON shows(collection);
		CREATE INDEX IF NOT EXISTS idx_shows_status ON shows(status);
	`

	_, err := db.db.Exec(schema)
	return err
}
