package testutil

import (
	"time"

	"github.com/alexanderramin/juju/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithArchived() ProjectOption {
	return func(p *domain.Project) {
		p.Archived = true
	}
}

func WithOrder(o int) ProjectOption {
	return func(p *domain.Project) {
		p.Order = o
	}
}

func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func WithColor(c string) ProjectOption {
	return func(p *domain.Project) {
		p.Color = c
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     "#83a598",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Session options
type SessionOption func(*domain.Session)

func WithSessionID(id string) SessionOption {
	return func(s *domain.Session) {
		s.ID = id
	}
}

func WithActivity(id string) SessionOption {
	return func(s *domain.Session) {
		s.ActivityTypeID = id
	}
}

func WithNotes(n string) SessionOption {
	return func(s *domain.Session) {
		s.Notes = n
	}
}

func WithMood(m int) SessionOption {
	return func(s *domain.Session) {
		s.Mood = &m
	}
}

func WithMilestone(text string) SessionOption {
	return func(s *domain.Session) {
		s.MilestoneText = text
	}
}

func WithProjectName(name string) SessionOption {
	return func(s *domain.Session) {
		s.ProjectName = name
	}
}

// WithEnd overrides the end computed from the minutes argument.
func WithEnd(end time.Time) SessionOption {
	return func(s *domain.Session) {
		s.EndDate = end
	}
}

// NewTestSession builds a session of the given length starting at start.
func NewTestSession(projectID string, start time.Time, minutes int, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		StartDate: start,
		EndDate:   start.Add(time.Duration(minutes) * time.Minute),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewTestActivity(name string) *domain.ActivityType {
	return &domain.ActivityType{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// At builds a local timestamp with minute precision.
func At(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}
