package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/timeutil"
)

// DayGroup collects the sessions that started on one calendar day.
type DayGroup struct {
	Date     time.Time
	Sessions []*domain.Session
}

func (g DayGroup) TotalMinutes() int {
	return TotalMinutes(g.Sessions)
}

func (g DayGroup) FormattedDuration() string {
	return FormatDuration(g.TotalMinutes())
}

// FormatDuration renders minutes as "Xh Ym", "Xh" or "Ym".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	h := minutes / 60
	m := minutes % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// GroupByDay buckets sessions by the calendar day of their start. Groups are
// ordered most recent day first and members most recent first. A session that
// crosses midnight stays whole in the group of the day it started.
func GroupByDay(sessions []*domain.Session) []DayGroup {
	byDay := Fold(SortByStartDesc(sessions), map[string]*DayGroup{},
		func(acc map[string]*DayGroup, s *domain.Session) map[string]*DayGroup {
			d := timeutil.StartOfDay(s.StartDate)
			key := timeutil.FormatCalendarDate(d)
			g, ok := acc[key]
			if !ok {
				g = &DayGroup{Date: d}
				acc[key] = g
			}
			g.Sessions = append(g.Sessions, s)
			return acc
		})
	if len(byDay) == 0 {
		return nil
	}

	groups := make([]DayGroup, 0, len(byDay))
	for _, g := range byDay {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
	return groups
}

// GroupByProject maps ProjectID to its sessions, most recent first.
func GroupByProject(sessions []*domain.Session) map[string][]*domain.Session {
	return Fold(SortByStartDesc(sessions), map[string][]*domain.Session{},
		func(acc map[string][]*domain.Session, s *domain.Session) map[string][]*domain.Session {
			acc[s.ProjectID] = append(acc[s.ProjectID], s)
			return acc
		})
}
