package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/juju/internal/db"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/timeutil"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
// Session boundaries are stored as local wall-clock text so they sort
// lexically and read back on the calendar day they were logged.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, project_id, project_name, activity_type_id, start_date, end_date,
	notes, mood, milestone_text, created_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.ProjectID,
		s.ProjectName,
		s.ActivityTypeID,
		timeutil.FormatDateTime(s.StartDate),
		timeutil.FormatDateTime(s.EndDate),
		s.Notes,
		nullableIntToValue(s.Mood),
		s.MilestoneText,
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSessionRepo) ListAll(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY start_date, id`
	return r.querySessions(ctx, query)
}

func (r *SQLiteSessionRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE project_id = ? ORDER BY start_date, id`
	return r.querySessions(ctx, query, projectID)
}

// ListBetween returns sessions whose start falls in [from, to].
func (r *SQLiteSessionRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE start_date >= ? AND start_date <= ? ORDER BY start_date, id`
	return r.querySessions(ctx, query, timeutil.FormatDateTime(from), timeutil.FormatDateTime(to))
}

// Update replaces every mutable column of the stored record. Re-applying the
// same record is a no-op.
func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE sessions SET project_id = ?, project_name = ?, activity_type_id = ?,
		start_date = ?, end_date = ?, notes = ?, mood = ?, milestone_text = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.ProjectID,
		s.ProjectName,
		s.ActivityTypeID,
		timeutil.FormatDateTime(s.StartDate),
		timeutil.FormatDateTime(s.EndDate),
		s.Notes,
		nullableIntToValue(s.Mood),
		s.MilestoneText,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	return checkAffected(res, "updating session "+s.ID)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return checkAffected(res, "deleting session "+id)
}

func (r *SQLiteSessionRepo) querySessions(ctx context.Context, query string, args ...any) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*domain.Session{}
	for rows.Next() {
		s, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) scanSession(row rowScanner) (*domain.Session, error) {
	var s domain.Session
	var startStr, endStr, createdAtStr string
	var mood sql.NullInt64

	err := row.Scan(
		&s.ID, &s.ProjectID, &s.ProjectName, &s.ActivityTypeID,
		&startStr, &endStr,
		&s.Notes, &mood, &s.MilestoneText, &createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	s.Mood = parseNullableInt(mood)

	if s.StartDate, err = parseWallClock("start_date", startStr); err != nil {
		return nil, err
	}
	if s.EndDate, err = parseWallClock("end_date", endStr); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = parseRFC3339("created_at", createdAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}
