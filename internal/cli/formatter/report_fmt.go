package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/juju/internal/analytics"
	"github.com/alexanderramin/juju/internal/chart"
	"github.com/alexanderramin/juju/internal/timeutil"
)

const barWidth = 24

// FormatSummary renders the headline statistics block.
func FormatSummary(s analytics.Summary, names Names) string {
	mood := Dim("-")
	if s.AverageMood != nil {
		avg := *s.AverageMood
		mood = MoodStyle(int(math.Round(avg))).Render(fmt.Sprintf("%.1f/10", avg))
	}
	longest := Dim("-")
	if s.Longest != nil {
		longest = fmt.Sprintf("%s on %s (%s)",
			FormatMinutes(s.Longest.DurationMinutes()),
			timeutil.FormatCalendarDate(s.Longest.StartDate),
			names.project(s.Longest))
	}

	rows := [][]string{
		{"Sessions", fmt.Sprintf("%d", s.SessionCount)},
		{"Total", StyleGreen.Render(FormatMinutes(s.TotalMinutes))},
		{"Active days", fmt.Sprintf("%d", s.ActiveDays)},
		{"Milestones", fmt.Sprintf("%d", s.MilestoneCount)},
		{"Avg mood", mood},
		{"Longest", longest},
	}
	return RenderTable([]string{"METRIC", "VALUE"}, rows)
}

// seriesMax returns the largest value across all series.
func seriesMax(perProject map[string][]float64) float64 {
	max := 0.0
	for _, values := range perProject {
		for _, v := range values {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// bucketTotals sums every series at each bucket index.
func bucketTotals(n int, perProject map[string][]float64) []float64 {
	totals := make([]float64, n)
	for _, values := range perProject {
		for i, v := range values {
			if i < n {
				totals[i] += v
			}
		}
	}
	return totals
}

// formatBucketBars draws one bar per bucket from the summed series plus a
// per-project legend of totals.
func formatBucketBars(keys []string, perProject map[string][]float64, projects []string, names Names) string {
	if len(keys) == 0 {
		return Dim("No sessions.") + "\n"
	}
	totals := bucketTotals(len(keys), perProject)
	max := 0.0
	for _, t := range totals {
		if t > max {
			max = t
		}
	}

	rows := make([][]string, 0, len(keys))
	for i, k := range keys {
		rows = append(rows, []string{k, RenderBar(totals[i], max, barWidth, StyleGreen), FormatHours(totals[i])})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"PERIOD", "HOURS", ""}, rows))
	b.WriteString("\n")
	b.WriteString(formatLegend(perProject, projects, names))
	return b.String()
}

func formatLegend(perProject map[string][]float64, projects []string, names Names) string {
	var b strings.Builder
	for i, p := range projects {
		sum := 0.0
		for _, v := range perProject[p] {
			sum += v
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", SeriesStyle(i).Render("■"), Label(names.Projects, p), Dim(FormatHours(sum))))
	}
	return b.String()
}

// FormatDaily renders the gap-filled daily chart.
func FormatDaily(d chart.DailySeries, names Names) string {
	return formatBucketBars(d.Keys(), d.PerProject, d.Projects(), names)
}

// FormatWeekly renders cumulative weekly hours per project, most recent week
// first.
func FormatWeekly(w chart.WeeklySeries, names Names) string {
	if len(w.WeekKeys) == 0 {
		return Dim("No sessions.") + "\n"
	}
	projects := w.Projects()
	max := seriesMax(w.PerProject)

	headers := []string{"WEEK"}
	for _, p := range projects {
		headers = append(headers, strings.ToUpper(Label(names.Projects, p)))
	}
	rows := make([][]string, 0, len(w.WeekKeys))
	for i, wk := range w.WeekKeys {
		row := []string{wk}
		for j, p := range projects {
			v := w.PerProject[p][i]
			row = append(row, RenderBar(v, max, 12, SeriesStyle(j))+" "+FormatHours(v))
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

// FormatPie renders each project's share of total hours.
func FormatPie(p chart.PieSeries, names Names) string {
	if len(p.Labels) == 0 {
		return Dim("No sessions.") + "\n"
	}
	total := 0.0
	for _, h := range p.Hours {
		total += h
	}
	rows := make([][]string, 0, len(p.Labels))
	for i, l := range p.Labels {
		share := 0.0
		if total > 0 {
			share = p.Hours[i] / total
		}
		rows = append(rows, []string{
			Label(names.Projects, l),
			RenderBar(share, 1, barWidth, SeriesStyle(i)),
			FormatHours(p.Hours[i]),
			fmt.Sprintf("%3.0f%%", share*100),
		})
	}
	return RenderTable([]string{"PROJECT", "SHARE", "HOURS", ""}, rows)
}

// FormatYearly renders the monthly totals of one year.
func FormatYearly(m chart.MonthlySeries, names Names) string {
	if len(m.PerProject) == 0 {
		return Dim(fmt.Sprintf("No sessions in %d.", m.Year)) + "\n"
	}
	return formatBucketBars(m.Months, m.PerProject, m.Projects(), names)
}

// ActivityRow is one line of the activity breakdown.
type ActivityRow struct {
	Name  string
	Emoji string
	Hours float64
}

// FormatActivityBreakdown renders hours per activity, in the given order.
func FormatActivityBreakdown(rows []ActivityRow) string {
	if len(rows) == 0 {
		return Dim("No sessions.") + "\n"
	}
	max := 0.0
	for _, r := range rows {
		if r.Hours > max {
			max = r.Hours
		}
	}
	out := make([][]string, 0, len(rows))
	for i, r := range rows {
		name := r.Name
		if r.Emoji != "" {
			name = r.Emoji + " " + name
		}
		out = append(out, []string{name, RenderBar(r.Hours, max, barWidth, SeriesStyle(i)), FormatHours(r.Hours)})
	}
	return RenderTable([]string{"ACTIVITY", "HOURS", ""}, out)
}
