package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite connection holding settings and session history.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open connects to the sqlite file at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite serialises writers; one connection avoids SQLITE_BUSY churn.
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	d := &Database{DB: conn, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the file the database was opened from.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			duration_seconds INTEGER NOT NULL,
			completed_at DATETIME NOT NULL
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// migrate brings databases created by older builds up to the current schema.
// Every step must be safe to run more than once.
func (d *Database) migrate(ctx context.Context) error {
	exists, err := d.indexExists(ctx, "idx_sessions_completed_at")
	if err != nil {
		return err
	}
	if !exists {
		if _, err := d.DB.ExecContext(ctx, "CREATE INDEX idx_sessions_completed_at ON sessions(completed_at)"); err != nil {
			return fmt.Errorf("migrate sessions index: %w", err)
		}
	}
	return nil
}

func (d *Database) indexExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := d.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM sqlite_master WHERE type = 'index' AND name = ?", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("inspect schema: %w", err)
	}
	return count > 0, nil
}

// WithTx runs fn inside a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
