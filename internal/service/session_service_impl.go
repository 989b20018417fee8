package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/juju/internal/analytics"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/repository"
	"github.com/alexanderramin/juju/internal/timeutil"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions   repository.SessionRepo
	projects   repository.ProjectRepo
	activities repository.ActivityTypeRepo
	weekStart  time.Weekday
	now        func() time.Time
	observer   UseCaseObserver
}

func NewSessionService(
	sessions repository.SessionRepo,
	projects repository.ProjectRepo,
	activities repository.ActivityTypeRepo,
	weekStart time.Weekday,
	observers ...UseCaseObserver,
) SessionService {
	return &sessionService{
		sessions:   sessions,
		projects:   projects,
		activities: activities,
		weekStart:  weekStart,
		now:        time.Now,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Log(ctx context.Context, req LogSessionRequest) (*domain.Session, error) {
	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if req.ActivityTypeID != "" {
		if _, err := s.activities.GetByID(ctx, req.ActivityTypeID); err != nil {
			return nil, err
		}
	}
	if !timeutil.ValidClock(req.StartClock) || !timeutil.ValidClock(req.EndClock) {
		return nil, fmt.Errorf("invalid clock range %q-%q (expected HH:mm)", req.StartClock, req.EndClock)
	}

	start, end := timeutil.Interval(req.Date, req.StartClock, req.EndClock)
	session := &domain.Session{
		ID:             uuid.New().String(),
		ProjectID:      project.ID,
		ProjectName:    project.Name,
		ActivityTypeID: req.ActivityTypeID,
		StartDate:      start,
		EndDate:        end,
		Notes:          req.Notes,
		Mood:           req.Mood,
		MilestoneText:  domain.CoalesceStr(req.Milestone),
		CreatedAt:      time.Now().UTC(),
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) ListAll(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.ListAll(ctx)
}

func (s *sessionService) List(ctx context.Context, q SessionQuery) ([]*domain.Session, error) {
	all, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return applyQuery(all, q, s.now(), s.weekStart)
}

// applyQuery runs the analytics filters and sort described by q.
func applyQuery(sessions []*domain.Session, q SessionQuery, now time.Time, weekStart time.Weekday) ([]*domain.Session, error) {
	out := sessions
	if q.ProjectID != "" {
		out = analytics.FilterByProject(out, q.ProjectID)
	}
	if q.ActivityTypeID != "" {
		out = analytics.FilterByActivityType(out, q.ActivityTypeID)
	}
	switch q.Filter {
	case "", domain.FilterAllTime:
	case domain.FilterCustom:
		if !q.From.IsZero() && !q.To.IsZero() {
			out = analytics.FilterByInterval(out, q.From, q.To)
		}
	default:
		out = analytics.FilterByDateFilter(out, q.Filter, now, weekStart)
	}
	if q.Sort == "" {
		return out, nil
	}
	return analytics.SortSessions(out, q.Sort)
}

// Update validates s and refreshes its denormalized project name.
func (s *sessionService) Update(ctx context.Context, session *domain.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if p, err := s.projects.GetByID(ctx, session.ProjectID); err == nil {
		session.ProjectName = p.Name
	}
	return s.sessions.Update(ctx, session)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// Overlaps returns the sessions that intersect the session with the given id.
func (s *sessionService) Overlaps(ctx context.Context, id string) ([]*domain.Session, error) {
	target, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	all, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Overlapping(all, target), nil
}

// Orphans returns sessions whose project no longer exists. Each one is
// reported as a warning on the "check-orphans" event.
func (s *sessionService) Orphans(ctx context.Context) (orphans []*domain.Session, err error) {
	startedAt := time.Now().UTC()
	var warnings []string
	defer func() {
		observe(ctx, s.observer, "check-orphans", startedAt, err, map[string]any{"orphans": len(orphans)}, warnings...)
	}()

	all, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx, true)
	if err != nil {
		return nil, err
	}
	orphans = analytics.OrphanedSessions(all, projects)
	for _, o := range orphans {
		warnings = append(warnings, fmt.Sprintf("session %s references missing project %s", o.ID, o.ProjectID))
	}
	return orphans, nil
}
