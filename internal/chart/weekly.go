package chart

import (
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/timeutil"
)

// WeeklySeries holds cumulative hours per project, most recent week first.
// The value at each week is the running total up to and including that week.
type WeeklySeries struct {
	WeekKeys   []string
	PerProject map[string][]float64
}

// WeeklyCumulativeBuckets builds the cumulative per-week chart. Series are
// accumulated in ascending week order first and only then reversed, so each
// value stays the total through its own week.
func WeeklyCumulativeBuckets(sessions []*domain.Session) WeeklySeries {
	perWeek := make(map[string]map[string]float64)
	for _, s := range sessions {
		if s.StartDate.IsZero() {
			continue
		}
		wk := timeutil.WeekKey(s.StartDate)
		if perWeek[wk] == nil {
			perWeek[wk] = make(map[string]float64)
		}
		perWeek[wk][projectKey(s)] += hours(s)
	}

	weeks := sortedKeys(perWeek)
	series := cumulate(weeks, perWeek)
	return reverseSeries(WeeklySeries{WeekKeys: weeks, PerProject: series})
}

// cumulate computes running totals per project across weeks in the given
// (ascending) order.
func cumulate(weeks []string, perWeek map[string]map[string]float64) map[string][]float64 {
	projects := make(map[string]struct{})
	for _, byProject := range perWeek {
		for p := range byProject {
			projects[p] = struct{}{}
		}
	}
	out := make(map[string][]float64, len(projects))
	for p := range projects {
		values := make([]float64, len(weeks))
		var running float64
		for i, wk := range weeks {
			running += perWeek[wk][p]
			values[i] = running
		}
		out[p] = values
	}
	return out
}

// reverseSeries flips the week keys and every project series together.
func reverseSeries(w WeeklySeries) WeeklySeries {
	keys := append([]string(nil), w.WeekKeys...)
	reverse(keys)
	out := WeeklySeries{WeekKeys: keys, PerProject: make(map[string][]float64, len(w.PerProject))}
	for p, values := range w.PerProject {
		v := append([]float64(nil), values...)
		reverse(v)
		out.PerProject[p] = v
	}
	return out
}

func reverse[T any](xs []T) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Projects returns the project keys of the series, sorted.
func (w WeeklySeries) Projects() []string {
	return sortedKeys(w.PerProject)
}

func (w WeeklySeries) Buckets() []Bucket {
	return bucketsFromSeries(w.WeekKeys, w.PerProject)
}
