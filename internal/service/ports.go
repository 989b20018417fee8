package service

import (
	"context"

	"github.com/alexanderramin/juju/internal/domain"
)

// SessionStore is the session persistence the project deleter depends on.
// Update replaces the whole record and is idempotent.
type SessionStore interface {
	ListAll(ctx context.Context) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
}

// ProjectStore holds the ordered project list. SaveAll persists the full
// list, dropping projects not present in it.
type ProjectStore interface {
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	SaveAll(ctx context.Context, projects []*domain.Project) error
	SetArchived(ctx context.Context, id string, archived bool) error
}

// SelectionStore persists the project preselected in the CLI. An empty id
// means no selection.
type SelectionStore interface {
	SelectedProjectID(ctx context.Context) (string, error)
	SetSelectedProjectID(ctx context.Context, id string) error
}
