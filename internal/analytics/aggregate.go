package analytics

import (
	"time"

	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/timeutil"
)

// TotalMinutes sums the derived duration of every session.
func TotalMinutes(sessions []*domain.Session) int {
	return Fold(sessions, 0, func(acc int, s *domain.Session) int {
		return acc + s.DurationMinutes()
	})
}

// TotalMinutesInInterval sums sessions starting inside [from, to].
func TotalMinutesInInterval(sessions []*domain.Session, from, to time.Time) int {
	return TotalMinutes(FilterByInterval(sessions, from, to))
}

func uniqueStrings(sessions []*domain.Session, key func(*domain.Session) (string, bool)) []string {
	seen := make(map[string]struct{})
	return Fold(sessions, []string(nil), func(acc []string, s *domain.Session) []string {
		k, ok := key(s)
		if !ok {
			return acc
		}
		if _, dup := seen[k]; dup {
			return acc
		}
		seen[k] = struct{}{}
		return append(acc, k)
	})
}

// UniqueProjectIDs returns each ProjectID once, in first-seen order.
func UniqueProjectIDs(sessions []*domain.Session) []string {
	return uniqueStrings(sessions, func(s *domain.Session) (string, bool) {
		return s.ProjectID, true
	})
}

// UniqueActivityTypeIDs returns each activity type id once, in first-seen
// order. Sessions without an activity are skipped.
func UniqueActivityTypeIDs(sessions []*domain.Session) []string {
	return uniqueStrings(sessions, func(s *domain.Session) (string, bool) {
		return s.ActivityTypeID, s.HasActivity()
	})
}

// Overlapping returns the sessions whose interval intersects target's,
// excluding target itself (matched by ID).
func Overlapping(sessions []*domain.Session, target *domain.Session) []*domain.Session {
	if target == nil {
		return nil
	}
	return filter(sessions, func(s *domain.Session) bool {
		return s.ID != target.ID && s.Overlaps(target)
	})
}

// DedupeByID keeps the first session for each ID and drops later duplicates.
func DedupeByID(sessions []*domain.Session) []*domain.Session {
	seen := make(map[string]struct{})
	return filter(sessions, func(s *domain.Session) bool {
		if _, dup := seen[s.ID]; dup {
			return false
		}
		seen[s.ID] = struct{}{}
		return true
	})
}

// HoursByActivity sums session hours per activity. Sessions without an
// activity are attributed to domain.Uncategorized.
func HoursByActivity(sessions []*domain.Session) map[domain.ActivityKey]float64 {
	return Fold(sessions, map[domain.ActivityKey]float64{},
		func(acc map[domain.ActivityKey]float64, s *domain.Session) map[domain.ActivityKey]float64 {
			acc[s.ActivityKey()] += float64(s.DurationMinutes()) / 60
			return acc
		})
}

// Summary is the headline block of the dashboard.
type Summary struct {
	SessionCount   int
	TotalMinutes   int
	ActiveDays     int
	MilestoneCount int
	AverageMood    *float64
	Longest        *domain.Session
}

// Summarize computes headline statistics for a set of sessions.
func Summarize(sessions []*domain.Session) Summary {
	type acc struct {
		Summary
		moodSum   int
		moodCount int
		days      map[string]struct{}
	}
	a := Fold(sessions, acc{days: map[string]struct{}{}}, func(a acc, s *domain.Session) acc {
		a.SessionCount++
		a.TotalMinutes += s.DurationMinutes()
		a.days[timeutil.FormatCalendarDate(s.StartDate)] = struct{}{}
		if s.IsMilestone() {
			a.MilestoneCount++
		}
		if s.Mood != nil {
			a.moodSum += *s.Mood
			a.moodCount++
		}
		if a.Longest == nil || s.DurationMinutes() > a.Longest.DurationMinutes() {
			a.Longest = s
		}
		return a
	})
	a.ActiveDays = len(a.days)
	if a.moodCount > 0 {
		avg := float64(a.moodSum) / float64(a.moodCount)
		a.AverageMood = &avg
	}
	return a.Summary
}
