package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/timeutil"
)

// FilterByProject keeps sessions whose ProjectID equals projectID exactly.
func FilterByProject(sessions []*domain.Session, projectID string) []*domain.Session {
	return filter(sessions, func(s *domain.Session) bool {
		return s.ProjectID == projectID
	})
}

// FilterByActivityType keeps sessions logged against activityTypeID. Sessions
// without an activity never match.
func FilterByActivityType(sessions []*domain.Session, activityTypeID string) []*domain.Session {
	return filter(sessions, func(s *domain.Session) bool {
		return s.HasActivity() && s.ActivityTypeID == activityTypeID
	})
}

// FilterByInterval keeps sessions starting inside [from, to]. Both boundaries
// are included.
func FilterByInterval(sessions []*domain.Session, from, to time.Time) []*domain.Session {
	return filter(sessions, func(s *domain.Session) bool {
		return !s.StartDate.Before(from) && !s.StartDate.After(to)
	})
}

// PeriodBounds returns the half-open calendar period [start, end) that the
// filter selects around now. ok is false for filters that do not narrow by
// date (allTime, custom).
func PeriodBounds(f domain.DateFilter, now time.Time, weekStart time.Weekday) (start, end time.Time, ok bool) {
	switch f {
	case domain.FilterToday:
		start = timeutil.StartOfDay(now)
		return start, start.AddDate(0, 0, 1), true
	case domain.FilterThisWeek:
		start = timeutil.StartOfWeek(now, weekStart)
		return start, start.AddDate(0, 0, 7), true
	case domain.FilterThisMonth:
		start = timeutil.StartOfMonth(now)
		return start, start.AddDate(0, 1, 0), true
	case domain.FilterThisYear:
		start = timeutil.StartOfYear(now)
		return start, start.AddDate(1, 0, 0), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// FilterByDateFilter narrows sessions to the calendar period containing now.
// allTime and custom return every session; a custom range is applied
// separately with FilterByInterval.
func FilterByDateFilter(sessions []*domain.Session, f domain.DateFilter, now time.Time, weekStart time.Weekday) []*domain.Session {
	start, end, ok := PeriodBounds(f, now, weekStart)
	if !ok {
		return filter(sessions, func(*domain.Session) bool { return true })
	}
	return filter(sessions, func(s *domain.Session) bool {
		return !s.StartDate.Before(start) && s.StartDate.Before(end)
	})
}

// ParseDateFilter accepts the canonical names case-insensitively, plus the
// dashed forms used on the command line ("this-week").
func ParseDateFilter(s string) (domain.DateFilter, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	for f := range domain.ValidDateFilters {
		if strings.ToLower(string(f)) == norm {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown date filter %q (today|this-week|this-month|this-year|all-time|custom)", s)
}
