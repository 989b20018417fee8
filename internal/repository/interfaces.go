package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/juju/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SetArchived(ctx context.Context, id string, archived bool) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, projects []*domain.Project) error
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListAll(ctx context.Context) ([]*domain.Session, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Session, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

type ActivityTypeRepo interface {
	Create(ctx context.Context, a *domain.ActivityType) error
	GetByID(ctx context.Context, id string) (*domain.ActivityType, error)
	GetByName(ctx context.Context, name string) (*domain.ActivityType, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.ActivityType, error)
	SetArchived(ctx context.Context, id string, archived bool) error
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var (
	_ ProjectRepo      = (*SQLiteProjectRepo)(nil)
	_ SessionRepo      = (*SQLiteSessionRepo)(nil)
	_ ActivityTypeRepo = (*SQLiteActivityTypeRepo)(nil)
	_ SettingsRepo     = (*SQLiteSettingsRepo)(nil)
)
