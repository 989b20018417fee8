package chart

import (
	"time"

	"github.com/alexanderramin/juju/internal/domain"
)

// MonthlySeries holds twelve monthly totals per project for one year.
type MonthlySeries struct {
	Year       int
	Months     []string
	PerProject map[string][]float64
}

// MonthlyProjectBuckets totals hours per project for each month of year.
// Months without sessions are zero; sessions from other years are ignored.
func MonthlyProjectBuckets(sessions []*domain.Session, year int) MonthlySeries {
	out := MonthlySeries{Year: year, Months: make([]string, 12), PerProject: map[string][]float64{}}
	for m := time.January; m <= time.December; m++ {
		out.Months[m-1] = m.String()[:3]
	}
	for _, s := range sessions {
		if s.StartDate.IsZero() || s.StartDate.Year() != year {
			continue
		}
		p := projectKey(s)
		if out.PerProject[p] == nil {
			out.PerProject[p] = make([]float64, 12)
		}
		out.PerProject[p][s.StartDate.Month()-1] += hours(s)
	}
	return out
}

// Projects returns the project keys of the series, sorted.
func (m MonthlySeries) Projects() []string {
	return sortedKeys(m.PerProject)
}

func (m MonthlySeries) Buckets() []Bucket {
	return bucketsFromSeries(m.Months, m.PerProject)
}
