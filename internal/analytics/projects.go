package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/juju/internal/domain"
)

// LastSessionDates maps each ProjectID to the latest session start. Projects
// without sessions are absent.
func LastSessionDates(sessions []*domain.Session) map[string]time.Time {
	return Fold(sessions, map[string]time.Time{},
		func(acc map[string]time.Time, s *domain.Session) map[string]time.Time {
			if last, ok := acc[s.ProjectID]; !ok || s.StartDate.After(last) {
				acc[s.ProjectID] = s.StartDate
			}
			return acc
		})
}

// SortProjectsByRecent orders projects by their latest session, most recent
// first. Projects without sessions sort as oldest; ties fall back to Order,
// then name.
func SortProjectsByRecent(projects []*domain.Project, sessions []*domain.Session) []*domain.Project {
	last := LastSessionDates(sessions)
	out := append([]*domain.Project(nil), projects...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ta, okA := last[a.ID]
		tb, okB := last[b.ID]
		if okA != okB {
			return okA
		}
		if okA && !ta.Equal(tb) {
			return ta.After(tb)
		}
		return lessByOrder(a, b)
	})
	return out
}

// SortProjectsByOrder orders projects by display rank, then name.
func SortProjectsByOrder(projects []*domain.Project) []*domain.Project {
	out := append([]*domain.Project(nil), projects...)
	sort.SliceStable(out, func(i, j int) bool {
		return lessByOrder(out[i], out[j])
	})
	return out
}

func lessByOrder(a, b *domain.Project) bool {
	if a.Order != b.Order {
		return a.Order < b.Order
	}
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}

// OrphanedSessions returns sessions whose ProjectID matches none of projects.
func OrphanedSessions(sessions []*domain.Session, projects []*domain.Project) []*domain.Session {
	live := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		live[p.ID] = struct{}{}
	}
	return filter(sessions, func(s *domain.Session) bool {
		_, ok := live[s.ProjectID]
		return !ok
	})
}
