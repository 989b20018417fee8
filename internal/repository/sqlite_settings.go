package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/juju/internal/db"
)

// SettingSelectedProject holds the id of the project preselected in the CLI.
const SettingSelectedProject = "selected_project_id"

// SQLiteSettingsRepo implements SettingsRepo as a key/value table.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("setting %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading setting %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteSettingsRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("writing setting %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *SQLiteSettingsRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting setting %q: %w", key, err)
	}
	return nil
}

// SelectedProjectID returns the selected project id, or "" when none is set.
func (r *SQLiteSettingsRepo) SelectedProjectID(ctx context.Context) (string, error) {
	id, err := r.Get(ctx, SettingSelectedProject)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return id, err
}

// SetSelectedProjectID stores id; an empty id clears the selection.
func (r *SQLiteSettingsRepo) SetSelectedProjectID(ctx context.Context, id string) error {
	if id == "" {
		return r.Delete(ctx, SettingSelectedProject)
	}
	return r.Set(ctx, SettingSelectedProject, id)
}
