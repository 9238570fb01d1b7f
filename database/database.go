// Package database provides database connectivity and schema management.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"moviehub/logging"

	_ "github.com/mattn/go-sqlite3" // Import sqlite3 driver
)

// DB wraps the SQL database connection
type DB struct {
	*sql.DB
}

// StorageError reports a driver-level failure of a single statement.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ExecResult is the outcome of an INSERT, UPDATE or DELETE.
type ExecResult struct {
	LastInsertID int64
	RowsAffected int64
}

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// NewDB creates a new database connection. The parent directory of a file
// path is created when missing.
func NewDB(dataSourceName string) (*DB, error) {
	if !isMemory(dataSourceName) {
		if dir := filepath.Dir(dataSourceName); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One logical connection shared by every request. This also keeps
	// ":memory:" databases from splitting across pool connections.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Debug().Str("path", dataSourceName).Msg("Database opened")
	return &DB{db}, nil
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.HasPrefix(dsn, "file::memory:")
}

// Execute runs a statement that returns no rows.
func (db *DB) Execute(ctx context.Context, query string, args ...any) (ExecResult, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return ExecResult{}, &StorageError{Op: "execute", Err: err}
	}

	var res ExecResult
	if res.LastInsertID, err = result.LastInsertId(); err != nil {
		return ExecResult{}, &StorageError{Op: "last insert id", Err: err}
	}
	if res.RowsAffected, err = result.RowsAffected(); err != nil {
		return ExecResult{}, &StorageError{Op: "rows affected", Err: err}
	}
	return res, nil
}

// GetOne returns the first row produced by query, or nil when there is none.
func GetOne[T any](ctx context.Context, db *DB, scan func(RowScanner) (T, error), query string, args ...any) (*T, error) {
	row := db.QueryRowContext(ctx, query, args...)
	v, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, &StorageError{Op: "get one", Err: err}
	}
	return &v, nil
}

// GetAll returns every row produced by query. The slice is empty, never nil,
// when nothing matches.
func GetAll[T any](ctx context.Context, db *DB, scan func(RowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &StorageError{Op: "get all", Err: err}
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close rows")
		}
	}()

	items := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, &StorageError{Op: "scan", Err: err}
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "iterate", Err: err}
	}
	return items, nil
}

// InitSchema initializes the database schema. It only ever adds missing
// tables and indexes, so it runs on every startup.
func (db *DB) InitSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS movies (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		year INTEGER,
		rating REAL,
		category TEXT,
		image_url TEXT,
		duration INTEGER,
		director TEXT,
		cast_members TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_movies_category ON movies(category);
	CREATE INDEX IF NOT EXISTS idx_movies_created_at ON movies(created_at);

	CREATE TABLE IF NOT EXISTS seasons (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		year INTEGER,
		rating REAL,
		image_url TEXT,
		episodes INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_seasons_created_at ON seasons(created_at);

	CREATE TABLE IF NOT EXISTS contact_messages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT DEFAULT 'unread',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_contact_messages_email ON contact_messages(email);
	CREATE INDEX IF NOT EXISTS idx_contact_messages_status ON contact_messages(status);
	`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return &StorageError{Op: "create schema", Err: err}
	}

	logging.Info().Msg("Database schema initialized")
	return nil
}
