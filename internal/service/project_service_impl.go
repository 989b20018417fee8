package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/juju/internal/db"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects  repository.ProjectRepo
	selection SelectionStore
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewProjectService(
	projects repository.ProjectRepo,
	selection SelectionStore,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ProjectService {
	return &projectService{
		projects:  projects,
		selection: selection,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Create appends p to the end of the project list.
func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.projects.GetByName(ctx, p.Name); err == nil {
		return fmt.Errorf("project %q: %w", p.Name, ErrDuplicateName)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	all, err := s.projects.List(ctx, true)
	if err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Order == 0 {
		p.Order = len(all)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// Resolve finds a project by full id, case-insensitive name, or a unique id
// prefix, in that order.
func (s *projectService) Resolve(ctx context.Context, ref string) (*domain.Project, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("project reference is required")
	}
	if p, err := s.projects.GetByID(ctx, ref); err == nil {
		return p, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if p, err := s.projects.GetByName(ctx, ref); err == nil {
		return p, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	all, err := s.projects.List(ctx, true)
	if err != nil {
		return nil, err
	}
	var match *domain.Project
	for _, p := range all {
		if strings.HasPrefix(p.ID, strings.ToLower(ref)) {
			if match != nil {
				return nil, fmt.Errorf("project %q: %w", ref, ErrAmbiguousProject)
			}
			match = p
		}
	}
	if match == nil {
		return nil, fmt.Errorf("project %q: %w", ref, repository.ErrNotFound)
	}
	return match, nil
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

// SaveAll replaces the stored project list atomically.
func (s *projectService) SaveAll(ctx context.Context, projects []*domain.Project) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observe(ctx, s.observer, "save-projects", startedAt, err, map[string]any{"count": len(projects)})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProjectRepo(tx).ReplaceAll(ctx, projects)
	})
}

// SetArchived archives or restores a project. Archiving the selected project
// clears the selection.
func (s *projectService) SetArchived(ctx context.Context, id string, archived bool) error {
	if err := s.projects.SetArchived(ctx, id, archived); err != nil {
		return err
	}
	if !archived {
		return nil
	}
	selected, err := s.selection.SelectedProjectID(ctx)
	if err != nil {
		return err
	}
	if selected == id {
		return s.selection.SetSelectedProjectID(ctx, "")
	}
	return nil
}

// Select stores id as the selected project. An empty id clears it.
func (s *projectService) Select(ctx context.Context, id string) error {
	if id == "" {
		return s.selection.SetSelectedProjectID(ctx, "")
	}
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Archived {
		return fmt.Errorf("selecting %q: %w", p.Name, ErrArchivedProject)
	}
	return s.selection.SetSelectedProjectID(ctx, id)
}

// Selected returns the selected project, or nil when nothing is selected or
// the selection points at a project that no longer exists.
func (s *projectService) Selected(ctx context.Context) (*domain.Project, error) {
	id, err := s.selection.SelectedProjectID(ctx)
	if err != nil || id == "" {
		return nil, err
	}
	p, err := s.projects.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return p, err
}
