package analytics

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/juju/internal/domain"
)

func sortedCopy(sessions []*domain.Session, less func(a, b *domain.Session) bool) []*domain.Session {
	if len(sessions) == 0 {
		return nil
	}
	out := make([]*domain.Session, len(sessions))
	copy(out, sessions)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// SortByStartDesc orders sessions most recent first. Ties keep their input order.
func SortByStartDesc(sessions []*domain.Session) []*domain.Session {
	return sortedCopy(sessions, func(a, b *domain.Session) bool {
		return a.StartDate.After(b.StartDate)
	})
}

// SortByDurationDesc orders sessions longest first. Ties keep their input order.
func SortByDurationDesc(sessions []*domain.Session) []*domain.Session {
	return sortedCopy(sessions, func(a, b *domain.Session) bool {
		return a.DurationMinutes() > b.DurationMinutes()
	})
}

// SortByProjectAsc orders sessions alphabetically by ProjectID. Ties keep
// their input order.
func SortByProjectAsc(sessions []*domain.Session) []*domain.Session {
	return sortedCopy(sessions, func(a, b *domain.Session) bool {
		return a.ProjectID < b.ProjectID
	})
}

// SortSessions dispatches on a named ordering.
func SortSessions(sessions []*domain.Session, by domain.SessionSort) ([]*domain.Session, error) {
	switch by {
	case "", domain.SortStartDesc:
		return SortByStartDesc(sessions), nil
	case domain.SortDurationDesc:
		return SortByDurationDesc(sessions), nil
	case domain.SortProjectAsc:
		return SortByProjectAsc(sessions), nil
	default:
		return nil, fmt.Errorf("unknown sort %q (start|duration|project)", by)
	}
}
