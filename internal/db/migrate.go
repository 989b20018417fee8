package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE statements are re-run on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	if err := migrateBackfillProjectNames(db); err != nil {
		return fmt.Errorf("backfilling session project names: %w", err)
	}
	return nil
}

// sessions.project_id deliberately carries no foreign key: a project may be
// removed while a failed reassignment still points at it, and the integrity
// check reports such rows instead of the database rejecting the delete.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		color       TEXT NOT NULL DEFAULT '',
		sort_order  INTEGER NOT NULL DEFAULT 0 CHECK(sort_order >= 0),
		archived    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS activity_types (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		emoji       TEXT NOT NULL DEFAULT '',
		archived    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_activity_types_name ON activity_types(name)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id               TEXT PRIMARY KEY,
		project_id       TEXT NOT NULL,
		activity_type_id TEXT NOT NULL DEFAULT '',
		start_date       TEXT NOT NULL,
		end_date         TEXT NOT NULL,
		notes            TEXT NOT NULL DEFAULT '',
		mood             INTEGER CHECK(mood IS NULL OR (mood >= 0 AND mood <= 10)),
		milestone_text   TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_project ON sessions(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_start ON sessions(start_date)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	// Denormalized project name for list views
	`ALTER TABLE sessions ADD COLUMN project_name TEXT NOT NULL DEFAULT ''`,
}

// migrateBackfillProjectNames copies the owning project's name onto sessions
// that predate the project_name column. Idempotent: only empty names are
// touched.
func migrateBackfillProjectNames(db *sql.DB) error {
	ctx := context.Background()

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions WHERE project_name = ''`).Scan(&count); err != nil {
		return fmt.Errorf("counting sessions without project name: %w", err)
	}
	if count == 0 {
		return nil
	}

	query := `UPDATE sessions
		SET project_name = (SELECT p.name FROM projects p WHERE p.id = sessions.project_id)
		WHERE project_name = ''
		  AND EXISTS (SELECT 1 FROM projects p WHERE p.id = sessions.project_id)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("updating session project names: %w", err)
	}
	return nil
}
