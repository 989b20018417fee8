package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/timeutil"
)

// WriteCSV writes sessions in ExportHeader column order. Milestones are
// written in the action/is_milestone form.
func WriteCSV(w io.Writer, sessions []*domain.Session) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, s := range sessions {
		mood := ""
		if s.Mood != nil {
			mood = strconv.Itoa(*s.Mood)
		}
		flag := "0"
		if s.IsMilestone() {
			flag = "1"
		}
		record := []string{
			s.ID,
			timeutil.FormatCalendarDate(s.StartDate),
			timeutil.FormatClockSeconds(s.StartDate),
			timeutil.FormatClockSeconds(s.EndDate),
			strconv.Itoa(s.DurationMinutes()),
			s.ProjectID,
			s.ProjectName,
			s.ActivityTypeID,
			s.Notes,
			mood,
			s.MilestoneText,
			flag,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing session %s: %w", s.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
