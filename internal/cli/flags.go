package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/juju/internal/analytics"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/service"
	"github.com/alexanderramin/juju/internal/timeutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DateValue is a pflag.Value holding a calendar date. It accepts
// YYYY-MM-DD, "today" and "yesterday".
type DateValue struct {
	t   time.Time
	now func() time.Time
}

var _ pflag.Value = (*DateValue)(nil)

func newDateValue(now func() time.Time) *DateValue {
	return &DateValue{now: now}
}

func (d *DateValue) Set(s string) error {
	now := time.Now
	if d.now != nil {
		now = d.now
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		d.t = timeutil.StartOfDay(now())
		return nil
	case "yesterday":
		d.t = timeutil.StartOfDay(now()).AddDate(0, 0, -1)
		return nil
	}
	t, ok := timeutil.ParseCalendarDate(strings.TrimSpace(s))
	if !ok {
		return fmt.Errorf("invalid date %q (use YYYY-MM-DD, today or yesterday)", s)
	}
	d.t = t
	return nil
}

func (d *DateValue) String() string {
	if d.t.IsZero() {
		return ""
	}
	return timeutil.FormatCalendarDate(d.t)
}

func (d *DateValue) Type() string { return "date" }

// Time returns the parsed date, zero when unset.
func (d *DateValue) Time() time.Time { return d.t }

// parseMood converts a --mood flag, where empty means no mood.
func parseMood(s string) (*int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < domain.MoodMin || v > domain.MoodMax {
		return nil, fmt.Errorf("mood must be a whole number %d-%d, got %q", domain.MoodMin, domain.MoodMax, s)
	}
	return &v, nil
}

// queryFlags are the filter flags shared by list, report and export commands.
type queryFlags struct {
	project  string
	activity string
	filter   string
	sort     string
	from     *DateValue
	to       *DateValue
}

func addQueryFlags(cmd *cobra.Command, app *App, withSort bool) *queryFlags {
	q := &queryFlags{from: newDateValue(app.now), to: newDateValue(app.now)}
	cmd.Flags().StringVarP(&q.project, "project", "p", "", "Project id, name or id prefix")
	cmd.Flags().StringVarP(&q.activity, "activity", "a", "", "Activity type id or name")
	cmd.Flags().StringVarP(&q.filter, "filter", "f", "all-time", "Period: today|this-week|this-month|this-year|all-time|custom")
	cmd.Flags().Var(q.from, "from", "Custom range start (YYYY-MM-DD, inclusive)")
	cmd.Flags().Var(q.to, "to", "Custom range end (YYYY-MM-DD, inclusive)")
	if withSort {
		cmd.Flags().StringVar(&q.sort, "sort", string(domain.SortStartDesc), "Order: start|duration|project")
	}
	return q
}

// build resolves the flags into a service query. Setting --from/--to implies
// the custom filter; the range covers both days completely.
func (q *queryFlags) build(cmd *cobra.Command, app *App) (service.SessionQuery, error) {
	ctx := cmd.Context()
	var out service.SessionQuery

	filter, err := analytics.ParseDateFilter(q.filter)
	if err != nil {
		return out, err
	}
	customRange := cmd.Flags().Changed("from") || cmd.Flags().Changed("to")
	if customRange {
		filter = domain.FilterCustom
	}
	out.Filter = filter
	if filter == domain.FilterCustom {
		if q.from.Time().IsZero() || q.to.Time().IsZero() {
			return out, fmt.Errorf("custom filter needs both --from and --to")
		}
		if q.to.Time().Before(q.from.Time()) {
			return out, fmt.Errorf("--to %s is before --from %s", q.to, q.from)
		}
		out.From = q.from.Time()
		out.To = q.to.Time().AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	if q.project != "" {
		p, err := app.Projects.Resolve(ctx, q.project)
		if err != nil {
			return out, err
		}
		out.ProjectID = p.ID
	}
	if q.activity != "" {
		a, err := app.Activities.Resolve(ctx, q.activity)
		if err != nil {
			return out, err
		}
		out.ActivityTypeID = a.ID
	}
	if q.sort != "" {
		out.Sort = domain.SessionSort(strings.ToLower(q.sort))
	}
	return out, nil
}
