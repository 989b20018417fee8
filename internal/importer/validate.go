package importer

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/timeutil"
)

// ValidateRows checks every row before conversion.
// Returns a slice of all validation errors found.
func ValidateRows(rows []Row) []error {
	var errs []error
	for _, r := range rows {
		errs = append(errs, validateRow(r)...)
	}
	return errs
}

func validateRow(r Row) []error {
	var errs []error
	at := fmt.Sprintf("line %d", r.Line)

	if r.Date == "" {
		errs = append(errs, fmt.Errorf("%s: date is required", at))
	} else if _, ok := timeutil.ParseCalendarDate(r.Date); !ok {
		errs = append(errs, fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD)", at, r.Date))
	}
	if !timeutil.ValidClock(r.StartTime) {
		errs = append(errs, fmt.Errorf("%s: invalid start_time %q (expected HH:mm)", at, r.StartTime))
	}
	if !timeutil.ValidClock(r.EndTime) {
		errs = append(errs, fmt.Errorf("%s: invalid end_time %q (expected HH:mm)", at, r.EndTime))
	}
	if r.Project == "" && r.ProjectID == "" {
		errs = append(errs, fmt.Errorf("%s: project or project_id is required", at))
	}
	if r.Mood != "" {
		m, err := strconv.Atoi(r.Mood)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: mood %q is not a number", at, r.Mood))
		} else if m < domain.MoodMin || m > domain.MoodMax {
			errs = append(errs, fmt.Errorf("%s: mood must be between %d and %d, got %d", at, domain.MoodMin, domain.MoodMax, m))
		}
	}
	return errs
}
