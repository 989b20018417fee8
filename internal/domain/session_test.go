package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestSession_DurationMinutes(t *testing.T) {
	s := &Session{StartDate: at(2024, 1, 1, 9, 0), EndDate: at(2024, 1, 1, 10, 30)}
	assert.Equal(t, 90, s.DurationMinutes())
}

func TestSession_DurationTruncatesSeconds(t *testing.T) {
	start := at(2024, 1, 1, 9, 0)
	s := &Session{StartDate: start, EndDate: start.Add(59*time.Second + 2*time.Minute)}
	assert.Equal(t, 2, s.DurationMinutes())
}

func TestSession_DurationNeverNegative(t *testing.T) {
	s := &Session{StartDate: at(2024, 1, 1, 10, 0), EndDate: at(2024, 1, 1, 9, 0)}
	assert.Equal(t, 0, s.DurationMinutes())
}

func TestSession_Validate(t *testing.T) {
	bad := 11
	ok := 7
	tests := []struct {
		name    string
		session Session
		wantErr bool
	}{
		{"valid", Session{ProjectID: "p", StartDate: at(2024, 1, 1, 9, 0), EndDate: at(2024, 1, 1, 10, 0), Mood: &ok}, false},
		{"missing project", Session{StartDate: at(2024, 1, 1, 9, 0), EndDate: at(2024, 1, 1, 10, 0)}, true},
		{"end before start", Session{ProjectID: "p", StartDate: at(2024, 1, 1, 9, 0), EndDate: at(2024, 1, 1, 8, 0)}, true},
		{"mood out of range", Session{ProjectID: "p", StartDate: at(2024, 1, 1, 9, 0), EndDate: at(2024, 1, 1, 10, 0), Mood: &bad}, true},
		{"zero start", Session{ProjectID: "p"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.session.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSession_OverlapsIsHalfOpen(t *testing.T) {
	a := &Session{StartDate: at(2024, 1, 1, 9, 0), EndDate: at(2024, 1, 1, 10, 0)}
	b := &Session{StartDate: at(2024, 1, 1, 10, 0), EndDate: at(2024, 1, 1, 11, 0)}
	c := &Session{StartDate: at(2024, 1, 1, 9, 30), EndDate: at(2024, 1, 1, 9, 45)}

	assert.False(t, a.Overlaps(b), "touching intervals do not overlap")
	assert.True(t, a.Overlaps(c))
	assert.True(t, c.Overlaps(a))
}

func TestSession_ReassignedToPreservesFields(t *testing.T) {
	mood := 6
	orig := &Session{
		ID: "s1", ProjectID: "p", ProjectName: "Old", ActivityTypeID: "writing",
		StartDate: at(2024, 1, 1, 9, 0), EndDate: at(2024, 1, 1, 10, 0),
		Notes: "draft", Mood: &mood, MilestoneText: "chapter 1",
	}
	moved := orig.ReassignedTo(&Project{ID: "q", Name: "New"})

	assert.Equal(t, "q", moved.ProjectID)
	assert.Equal(t, "New", moved.ProjectName)
	assert.Equal(t, "p", orig.ProjectID, "original must not change")
	assert.Equal(t, orig.ID, moved.ID)
	assert.Equal(t, orig.Notes, moved.Notes)
	assert.Equal(t, orig.MilestoneText, moved.MilestoneText)
	assert.Equal(t, orig.StartDate, moved.StartDate)
	require.NotNil(t, moved.Mood)
	assert.Equal(t, 6, *moved.Mood)
	assert.NotSame(t, orig.Mood, moved.Mood)
}

func TestActivityKey(t *testing.T) {
	s := &Session{}
	assert.Equal(t, Uncategorized, s.ActivityKey())
	assert.Equal(t, "uncategorized", s.ActivityKey().String())

	s.ActivityTypeID = "reading"
	id, known := s.ActivityKey().ID()
	assert.True(t, known)
	assert.Equal(t, "reading", id)
	assert.Equal(t, KnownActivity("reading"), s.ActivityKey())
	assert.NotEqual(t, Uncategorized, KnownActivity("uncategorized"),
		"an activity literally named uncategorized is still a known key")
}

func TestDeletionState_Terminal(t *testing.T) {
	assert.True(t, DeletionDeleted.Terminal())
	assert.True(t, DeletionAborted.Terminal())
	assert.False(t, DeletionNeedsTarget.Terminal())
}
