package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/juju/internal/analytics"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/timeutil"
	"github.com/google/uuid"
)

// rowNamespace seeds the ids derived for rows that carry none.
var rowNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("juju:csv-session"))

// derivedID names an id-less row by its interval and project, so importing
// the same file again yields the same ids.
func derivedID(r Row, start, end time.Time) string {
	project := r.ProjectID
	if project == "" {
		project = strings.ToLower(strings.TrimSpace(r.Project))
	}
	key := strings.Join([]string{timeutil.FormatDateTime(start), timeutil.FormatDateTime(end), project}, "|")
	return uuid.NewSHA1(rowNamespace, []byte(key)).String()
}

// Convert transforms validated rows into sessions ready for persistence.
// Call ValidateRows first; Convert assumes the rows are valid. Sessions keep
// the project name and id from the file; callers resolve them. Rows sharing
// an id collapse to the first occurrence. Rows without an id get one derived
// from their interval and project.
func Convert(rows []Row) ([]*domain.Session, error) {
	now := time.Now().UTC().Truncate(time.Second)
	sessions := make([]*domain.Session, 0, len(rows))

	for _, r := range rows {
		date, ok := timeutil.ParseCalendarDate(r.Date)
		if !ok {
			return nil, fmt.Errorf("line %d: parsing date %q", r.Line, r.Date)
		}
		start, end := timeutil.Interval(date, r.StartTime, r.EndTime)

		id := r.ID
		if id == "" {
			id = derivedID(r, start, end)
		}

		s := &domain.Session{
			ID:             id,
			ProjectID:      r.ProjectID,
			ProjectName:    r.Project,
			ActivityTypeID: r.ActivityTypeID,
			StartDate:      start,
			EndDate:        end,
			Notes:          r.Notes,
			MilestoneText:  r.Milestone,
			CreatedAt:      now,
		}
		if r.Mood != "" {
			m, err := strconv.Atoi(r.Mood)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing mood: %w", r.Line, err)
			}
			s.Mood = &m
		}
		sessions = append(sessions, s)
	}
	return analytics.DedupeByID(sessions), nil
}
