package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/juju/internal/db"
	"github.com/alexanderramin/juju/internal/domain"
)

// SQLiteActivityTypeRepo implements ActivityTypeRepo using a SQLite database.
type SQLiteActivityTypeRepo struct {
	db db.DBTX
}

// NewSQLiteActivityTypeRepo creates a new SQLiteActivityTypeRepo.
func NewSQLiteActivityTypeRepo(conn db.DBTX) *SQLiteActivityTypeRepo {
	return &SQLiteActivityTypeRepo{db: conn}
}

const activityColumns = `id, name, emoji, archived, created_at`

func (r *SQLiteActivityTypeRepo) Create(ctx context.Context, a *domain.ActivityType) error {
	query := `INSERT INTO activity_types (` + activityColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.Name, a.Emoji, boolToInt(a.Archived), a.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting activity type: %w", err)
	}
	return nil
}

func (r *SQLiteActivityTypeRepo) GetByID(ctx context.Context, id string) (*domain.ActivityType, error) {
	query := `SELECT ` + activityColumns + ` FROM activity_types WHERE id = ?`
	return r.scanActivity(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteActivityTypeRepo) GetByName(ctx context.Context, name string) (*domain.ActivityType, error) {
	query := `SELECT ` + activityColumns + ` FROM activity_types WHERE LOWER(name) = LOWER(?)`
	return r.scanActivity(r.db.QueryRowContext(ctx, query, strings.TrimSpace(name)))
}

func (r *SQLiteActivityTypeRepo) List(ctx context.Context, includeArchived bool) ([]*domain.ActivityType, error) {
	query := `SELECT ` + activityColumns + ` FROM activity_types`
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY name COLLATE NOCASE`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing activity types: %w", err)
	}
	defer rows.Close()

	types := []*domain.ActivityType{}
	for rows.Next() {
		a, err := r.scanActivity(rows)
		if err != nil {
			return nil, err
		}
		types = append(types, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activity types: %w", err)
	}
	return types, nil
}

func (r *SQLiteActivityTypeRepo) SetArchived(ctx context.Context, id string, archived bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE activity_types SET archived = ? WHERE id = ?`, boolToInt(archived), id)
	if err != nil {
		return fmt.Errorf("archiving activity type: %w", err)
	}
	return checkAffected(res, "archiving activity type "+id)
}

func (r *SQLiteActivityTypeRepo) scanActivity(row rowScanner) (*domain.ActivityType, error) {
	var a domain.ActivityType
	var archived int
	var createdAtStr string

	if err := row.Scan(&a.ID, &a.Name, &a.Emoji, &archived, &createdAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("activity type: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning activity type: %w", err)
	}
	a.Archived = intToBool(archived)

	var err error
	if a.CreatedAt, err = parseRFC3339("created_at", createdAtStr); err != nil {
		return nil, err
	}
	return &a, nil
}
