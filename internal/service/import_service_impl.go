package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/juju/internal/db"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/importer"
	"github.com/alexanderramin/juju/internal/repository"
	"github.com/google/uuid"
)

type importService struct {
	sessions SessionService
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(sessions SessionService, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		sessions: sessions,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// ImportFile loads a session CSV and stores every session not already
// present, creating projects named in the file that do not exist yet. The
// whole file is imported in one transaction.
func (s *importService) ImportFile(ctx context.Context, path string) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	result = &ImportResult{Path: path}
	defer func() {
		observe(ctx, s.observer, "import-csv", startedAt, err, map[string]any{
			"path":     path,
			"imported": result.Imported,
			"skipped":  result.SkippedExisting,
		})
	}()

	file, err := importer.LoadCSV(path)
	if err != nil {
		return result, err
	}
	result.Rows = len(file.Rows)
	result.Legacy = file.Legacy
	result.LeadingBlankLines = file.LeadingBlankLines

	if errs := importer.ValidateRows(file.Rows); len(errs) > 0 {
		return result, formatValidationErrors(errs)
	}
	sessions, err := importer.Convert(file.Rows)
	if err != nil {
		return result, fmt.Errorf("converting rows: %w", err)
	}
	result.Duplicates = len(file.Rows) - len(sessions)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		resolver, err := newProjectResolver(ctx, txProjects)
		if err != nil {
			return err
		}
		for _, sess := range sessions {
			if _, err := txSessions.GetByID(ctx, sess.ID); err == nil {
				result.SkippedExisting++
				continue
			} else if !errors.Is(err, repository.ErrNotFound) {
				return err
			}

			project, created, err := resolver.resolve(ctx, sess.ProjectID, sess.ProjectName)
			if err != nil {
				return err
			}
			if created {
				result.ProjectsCreated = append(result.ProjectsCreated, project.Name)
			}
			sess.ProjectID = project.ID
			sess.ProjectName = project.Name
			if err := sess.Validate(); err != nil {
				return fmt.Errorf("session %s: %w", sess.ID, err)
			}
			if err := txSessions.Create(ctx, sess); err != nil {
				return fmt.Errorf("creating session %s: %w", sess.ID, err)
			}
			result.Imported++
		}
		return nil
	})
	return result, err
}

// Export writes the sessions matching q as CSV and returns how many were
// written.
func (s *importService) Export(ctx context.Context, w io.Writer, q SessionQuery) (int, error) {
	list, err := s.sessions.List(ctx, q)
	if err != nil {
		return 0, err
	}
	if err := importer.WriteCSV(w, list); err != nil {
		return 0, err
	}
	return len(list), nil
}

// projectResolver maps CSV project references to stored projects within one
// import, creating missing projects by name.
type projectResolver struct {
	repo   *repository.SQLiteProjectRepo
	byID   map[string]*domain.Project
	byName map[string]*domain.Project
	next   int
}

func newProjectResolver(ctx context.Context, repo *repository.SQLiteProjectRepo) (*projectResolver, error) {
	all, err := repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	r := &projectResolver{
		repo:   repo,
		byID:   make(map[string]*domain.Project, len(all)),
		byName: make(map[string]*domain.Project, len(all)),
		next:   len(all),
	}
	for _, p := range all {
		r.byID[p.ID] = p
		if _, dup := r.byName[strings.ToLower(p.Name)]; !dup {
			r.byName[strings.ToLower(p.Name)] = p
		}
	}
	return r, nil
}

func (r *projectResolver) resolve(ctx context.Context, id, name string) (*domain.Project, bool, error) {
	if p, ok := r.byID[id]; ok && id != "" {
		return p, false, nil
	}
	name = strings.TrimSpace(name)
	if p, ok := r.byName[strings.ToLower(name)]; ok && name != "" {
		return p, false, nil
	}
	if name == "" {
		return nil, false, fmt.Errorf("project id %q: %w", id, repository.ErrNotFound)
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:        domain.CoalesceStr(id, uuid.New().String()),
		Name:      name,
		Order:     r.next,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.repo.Create(ctx, p); err != nil {
		return nil, false, fmt.Errorf("creating project %q: %w", name, err)
	}
	r.next++
	r.byID[p.ID] = p
	r.byName[strings.ToLower(p.Name)] = p
	return p, true, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
