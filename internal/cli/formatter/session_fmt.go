package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/juju/internal/analytics"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/timeutil"
)

// Names resolves ids to display names for rendering.
type Names struct {
	Projects   map[string]string
	Activities map[string]string
}

func (n Names) project(s *domain.Session) string {
	if s.ProjectID == "" {
		return domain.UnassignedProject
	}
	if name, ok := n.Projects[s.ProjectID]; ok {
		return name
	}
	if s.ProjectName != "" {
		return s.ProjectName
	}
	return Label(nil, s.ProjectID)
}

func (n Names) activity(s *domain.Session) string {
	if !s.HasActivity() {
		return Dim("-")
	}
	return Label(n.Activities, s.ActivityTypeID)
}

func sessionRow(s *domain.Session, names Names) []string {
	note := s.Notes
	if s.IsMilestone() {
		note = StyleYellow.Render("★ "+s.MilestoneText) + " " + note
	}
	return []string{
		TruncID(s.ID),
		timeutil.FormatCalendarDate(s.StartDate),
		fmt.Sprintf("%s-%s", timeutil.FormatClock(s.StartDate), timeutil.FormatClock(s.EndDate)),
		FormatMinutes(s.DurationMinutes()),
		names.project(s),
		names.activity(s),
		FormatMood(s.Mood),
		Truncate(strings.TrimSpace(note), 48),
	}
}

var sessionHeaders = []string{"ID", "DATE", "TIME", "DURATION", "PROJECT", "ACTIVITY", "MOOD", "NOTES"}

// FormatSessionTable renders sessions in the given order with a total line.
func FormatSessionTable(sessions []*domain.Session, names Names) string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, sessionRow(s, names))
	}
	total := fmt.Sprintf("%d sessions, %s", len(sessions), FormatMinutes(analytics.TotalMinutes(sessions)))
	return RenderTable(sessionHeaders, rows) + "\n" + Dim(total) + "\n"
}

// FormatDays renders day groups, most recent first, each with its total.
func FormatDays(groups []analytics.DayGroup, names Names, now time.Time) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		title := fmt.Sprintf("%s  %s", HumanDate(g.Date, now), Dim(timeutil.FormatCalendarDate(g.Date)))
		b.WriteString(Bold(title) + "  " + StyleGreen.Render(g.FormattedDuration()) + "\n")
		for _, s := range g.Sessions {
			line := fmt.Sprintf("  %s-%s  %-8s %s",
				timeutil.FormatClock(s.StartDate), timeutil.FormatClock(s.EndDate),
				FormatMinutes(s.DurationMinutes()), names.project(s))
			if s.IsMilestone() {
				line += "  " + StyleYellow.Render("★ "+s.MilestoneText)
			}
			if s.Notes != "" {
				line += "  " + Dim(Truncate(s.Notes, 40))
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}
