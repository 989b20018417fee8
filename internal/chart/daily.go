package chart

import (
	"time"

	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/timeutil"
)

// DailySeries holds one value per project for every day between the first and
// last session. Days without sessions carry explicit zeros.
type DailySeries struct {
	Days []time.Time
	// MonthLabels maps yyyy-MM-dd of each first-of-month day to "Jan", "Feb", ...
	MonthLabels map[string]string
	PerProject  map[string][]float64
}

// DailyProjectBuckets builds the gap-filled per-day chart. Sessions with a
// zero start date are skipped. Days are calendar days in the location of the
// first dated session; every other start is converted to it.
func DailyProjectBuckets(sessions []*domain.Session) DailySeries {
	out := DailySeries{MonthLabels: map[string]string{}, PerProject: map[string][]float64{}}

	var loc *time.Location
	var minDay, maxDay time.Time
	valid := make([]*domain.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.StartDate.IsZero() {
			continue
		}
		if loc == nil {
			loc = s.StartDate.Location()
		}
		d := timeutil.StartOfDay(s.StartDate.In(loc))
		if len(valid) == 0 || d.Before(minDay) {
			minDay = d
		}
		if len(valid) == 0 || d.After(maxDay) {
			maxDay = d
		}
		valid = append(valid, s)
	}
	if len(valid) == 0 {
		return out
	}

	index := make(map[string]int)
	for d := minDay; !d.After(maxDay); d = d.AddDate(0, 0, 1) {
		key := timeutil.FormatCalendarDate(d)
		index[key] = len(out.Days)
		out.Days = append(out.Days, d)
		if d.Day() == 1 {
			out.MonthLabels[key] = d.Format("Jan")
		}
	}

	for _, s := range valid {
		p := projectKey(s)
		series, ok := out.PerProject[p]
		if !ok {
			series = make([]float64, len(out.Days))
			out.PerProject[p] = series
		}
		i, ok := index[timeutil.FormatCalendarDate(s.StartDate.In(loc))]
		if !ok {
			continue
		}
		series[i] += hours(s)
	}
	return out
}

// Keys returns the yyyy-MM-dd identifier of every day in the series.
func (d DailySeries) Keys() []string {
	keys := make([]string, len(d.Days))
	for i, day := range d.Days {
		keys[i] = timeutil.FormatCalendarDate(day)
	}
	return keys
}

// Projects returns the project keys of the series, sorted.
func (d DailySeries) Projects() []string {
	return sortedKeys(d.PerProject)
}

func (d DailySeries) Buckets() []Bucket {
	return bucketsFromSeries(d.Keys(), d.PerProject)
}
