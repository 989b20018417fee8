package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/juju/internal/analytics"
	"github.com/alexanderramin/juju/internal/chart"
	"github.com/alexanderramin/juju/internal/domain"
)

type ProjectService interface {
	ProjectStore
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Resolve(ctx context.Context, ref string) (*domain.Project, error)
	Select(ctx context.Context, id string) error
	Selected(ctx context.Context) (*domain.Project, error)
}

// LogSessionRequest describes a session entered as a calendar date plus
// clock strings. An end clock before the start clock crosses midnight.
type LogSessionRequest struct {
	ProjectID      string
	ActivityTypeID string
	Date           time.Time
	StartClock     string
	EndClock       string
	Notes          string
	Mood           *int
	Milestone      string
}

// SessionQuery narrows and orders a session list. Zero fields do not filter.
// From and To apply only with domain.FilterCustom.
type SessionQuery struct {
	ProjectID      string
	ActivityTypeID string
	Filter         domain.DateFilter
	From           time.Time
	To             time.Time
	Sort           domain.SessionSort
}

type SessionService interface {
	Log(ctx context.Context, req LogSessionRequest) (*domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	ListAll(ctx context.Context) ([]*domain.Session, error)
	List(ctx context.Context, q SessionQuery) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
	Overlaps(ctx context.Context, id string) ([]*domain.Session, error)
	Orphans(ctx context.Context) ([]*domain.Session, error)
}

type ActivityService interface {
	Create(ctx context.Context, name, emoji string) (*domain.ActivityType, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.ActivityType, error)
	Resolve(ctx context.Context, ref string) (*domain.ActivityType, error)
	SetArchived(ctx context.Context, id string, archived bool) error
}

// ActivityHours is one row of the activity breakdown.
type ActivityHours struct {
	Key   domain.ActivityKey
	Name  string
	Emoji string
	Hours float64
}

type ReportService interface {
	Summary(ctx context.Context, q SessionQuery) (analytics.Summary, error)
	Days(ctx context.Context, q SessionQuery) ([]analytics.DayGroup, error)
	Daily(ctx context.Context, q SessionQuery) (chart.DailySeries, error)
	Weekly(ctx context.Context, q SessionQuery) (chart.WeeklySeries, error)
	Pie(ctx context.Context, q SessionQuery) (chart.PieSeries, error)
	Yearly(ctx context.Context, year int, projectID string) (chart.MonthlySeries, error)
	ByActivity(ctx context.Context, q SessionQuery) ([]ActivityHours, error)
}

// ImportResult holds the outcome of importing one CSV file.
type ImportResult struct {
	Path              string
	Rows              int
	Imported          int
	SkippedExisting   int
	Duplicates        int
	ProjectsCreated   []string
	LeadingBlankLines int
	Legacy            bool
}

type ImportService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	Export(ctx context.Context, w io.Writer, q SessionQuery) (int, error)
}
