package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS focus_sessions (
		id             TEXT PRIMARY KEY,
		technique      TEXT NOT NULL,
		duration_min   INTEGER NOT NULL CHECK(duration_min > 0),
		break_min      INTEGER NOT NULL DEFAULT 0 CHECK(break_min >= 0),
		started_at     TEXT,
		ends_at        TEXT,
		completed      INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_created ON focus_sessions(created_at)`,

	`CREATE TABLE IF NOT EXISTS client_state (
		client_id       TEXT PRIMARY KEY,
		gmail_address   TEXT NOT NULL DEFAULT '',
		connected       INTEGER NOT NULL DEFAULT 0,
		last_task       TEXT NOT NULL DEFAULT '',
		last_breakdown  TEXT,
		updated_at      TEXT NOT NULL
	)`,

	`ALTER TABLE focus_sessions ADD COLUMN task TEXT NOT NULL DEFAULT ''`,
	`CREATE INDEX IF NOT EXISTS idx_focus_sessions_technique ON focus_sessions(technique)`,
	`ALTER TABLE focus_sessions ADD COLUMN accommodations TEXT NOT NULL DEFAULT '[]'`,
}
