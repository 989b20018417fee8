package domain

import (
	"fmt"
	"time"
)

const (
	MoodMin = 0
	MoodMax = 10
)

// Session is one logged work interval. Duration is always derived from the
// interval and never stored.
type Session struct {
	ID             string
	ProjectID      string
	ProjectName    string
	ActivityTypeID string
	StartDate      time.Time
	EndDate        time.Time
	Notes          string
	Mood           *int
	MilestoneText  string
	CreatedAt      time.Time
}

// Duration returns EndDate - StartDate, clamped at zero.
func (s *Session) Duration() time.Duration {
	d := s.EndDate.Sub(s.StartDate)
	if d < 0 {
		return 0
	}
	return d
}

// DurationMinutes returns the session length in whole minutes.
func (s *Session) DurationMinutes() int {
	return int(s.Duration() / time.Minute)
}

// ActivityKey returns the tagged activity of the session.
func (s *Session) ActivityKey() ActivityKey {
	if s.ActivityTypeID == "" {
		return Uncategorized
	}
	return KnownActivity(s.ActivityTypeID)
}

// HasActivity reports whether the session was logged against an activity type.
func (s *Session) HasActivity() bool {
	return s.ActivityTypeID != ""
}

// IsMilestone reports whether the session carries a milestone.
func (s *Session) IsMilestone() bool {
	return s.MilestoneText != ""
}

// Overlaps reports whether the half-open intervals of s and other intersect.
func (s *Session) Overlaps(other *Session) bool {
	return s.StartDate.Before(other.EndDate) && other.StartDate.Before(s.EndDate)
}

// Validate checks the interval ordering and the mood range.
func (s *Session) Validate() error {
	if s.ProjectID == "" {
		return fmt.Errorf("session project is required")
	}
	if s.StartDate.IsZero() {
		return fmt.Errorf("session start date is required")
	}
	if s.EndDate.Before(s.StartDate) {
		return fmt.Errorf("session end %s is before start %s",
			s.EndDate.Format(time.RFC3339), s.StartDate.Format(time.RFC3339))
	}
	if s.Mood != nil && (*s.Mood < MoodMin || *s.Mood > MoodMax) {
		return fmt.Errorf("mood must be between %d and %d, got %d", MoodMin, MoodMax, *s.Mood)
	}
	return nil
}

// Clone returns a deep copy so callers can replace a record without sharing
// the mood pointer with the original.
func (s *Session) Clone() *Session {
	c := *s
	if s.Mood != nil {
		m := *s.Mood
		c.Mood = &m
	}
	return &c
}

// ReassignedTo returns a copy of the session pointing at target. Every other
// field is preserved.
func (s *Session) ReassignedTo(target *Project) *Session {
	c := s.Clone()
	c.ProjectID = target.ID
	c.ProjectName = target.Name
	return c
}
