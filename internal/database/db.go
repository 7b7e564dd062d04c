package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite connection backing the session history.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open initializes the database connection and schema.
func Open(ctx context.Context, filepath string) (*Database, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	d := &Database{DB: db, dbFile: filepath}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS focus_sessions (
			id TEXT PRIMARY KEY,
			task_name TEXT NOT NULL,
			start_time DATETIME NOT NULL,
			end_time DATETIME,
			duration_seconds INTEGER NOT NULL DEFAULT 0,
			is_completed BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_focus_sessions_start_time
			ON focus_sessions(start_time DESC);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("creating table %q: %w", query, err)
		}
	}

	d.migrate(ctx)
	return nil
}

// migrate applies additive column migrations for databases created by earlier
// builds. Errors are ignored: the column already exists on re-runs. The
// session record schema only ever evolves by adding columns.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE focus_sessions ADD COLUMN is_completed BOOLEAN NOT NULL DEFAULT 0")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE focus_sessions ADD COLUMN created_at DATETIME")
}
