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

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const projectColumns = `id, name, color, sort_order, archived, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Color,
		p.Order,
		boolToInt(p.Archived),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, id))
}

// GetByName matches case-insensitively.
func (r *SQLiteProjectRepo) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE LOWER(name) = LOWER(?) ORDER BY sort_order LIMIT 1`
	return r.scanProject(r.db.QueryRowContext(ctx, query, strings.TrimSpace(name)))
}

func (r *SQLiteProjectRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY sort_order, name COLLATE NOCASE`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		p, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, color = ?, sort_order = ?, archived = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Color,
		p.Order,
		boolToInt(p.Archived),
		p.UpdatedAt.UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return checkAffected(res, "updating project "+p.ID)
}

func (r *SQLiteProjectRepo) SetArchived(ctx context.Context, id string, archived bool) error {
	query := `UPDATE projects SET archived = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, boolToInt(archived), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("archiving project: %w", err)
	}
	return checkAffected(res, "archiving project "+id)
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return checkAffected(res, "deleting project "+id)
}

// ReplaceAll makes the stored project list equal to projects: rows missing
// from the slice are deleted, the rest are upserted. Run it inside a
// transaction to make the replacement atomic.
func (r *SQLiteProjectRepo) ReplaceAll(ctx context.Context, projects []*domain.Project) error {
	keep := make([]any, 0, len(projects))
	for _, p := range projects {
		keep = append(keep, p.ID)
	}

	del := `DELETE FROM projects`
	if len(keep) > 0 {
		del += ` WHERE id NOT IN (?` + strings.Repeat(", ?", len(keep)-1) + `)`
	}
	if _, err := r.db.ExecContext(ctx, del, keep...); err != nil {
		return fmt.Errorf("pruning projects: %w", err)
	}

	upsert := `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			color = excluded.color,
			sort_order = excluded.sort_order,
			archived = excluded.archived,
			updated_at = excluded.updated_at`
	for _, p := range projects {
		_, err := r.db.ExecContext(ctx, upsert,
			p.ID,
			p.Name,
			p.Color,
			p.Order,
			boolToInt(p.Archived),
			p.CreatedAt.UTC().Format(time.RFC3339),
			p.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("upserting project %s: %w", p.ID, err)
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var archived int
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.Name, &p.Color, &p.Order, &archived, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	p.Archived = intToBool(archived)

	if p.CreatedAt, err = parseRFC3339("created_at", createdAtStr); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseRFC3339("updated_at", updatedAtStr); err != nil {
		return nil, err
	}
	return &p, nil
}
