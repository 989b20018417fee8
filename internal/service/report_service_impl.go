package service

import (
	"context"
	"sort"
	"time"

	"github.com/alexanderramin/juju/internal/analytics"
	"github.com/alexanderramin/juju/internal/chart"
	"github.com/alexanderramin/juju/internal/repository"
)

type reportService struct {
	sessions   SessionService
	activities repository.ActivityTypeRepo
}

func NewReportService(sessions SessionService, activities repository.ActivityTypeRepo) ReportService {
	return &reportService{sessions: sessions, activities: activities}
}

func (s *reportService) Summary(ctx context.Context, q SessionQuery) (analytics.Summary, error) {
	list, err := s.sessions.List(ctx, q)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(list), nil
}

func (s *reportService) Days(ctx context.Context, q SessionQuery) ([]analytics.DayGroup, error) {
	list, err := s.sessions.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return analytics.GroupByDay(list), nil
}

func (s *reportService) Daily(ctx context.Context, q SessionQuery) (chart.DailySeries, error) {
	list, err := s.sessions.List(ctx, q)
	if err != nil {
		return chart.DailySeries{}, err
	}
	return chart.DailyProjectBuckets(list), nil
}

func (s *reportService) Weekly(ctx context.Context, q SessionQuery) (chart.WeeklySeries, error) {
	list, err := s.sessions.List(ctx, q)
	if err != nil {
		return chart.WeeklySeries{}, err
	}
	return chart.WeeklyCumulativeBuckets(list), nil
}

func (s *reportService) Pie(ctx context.Context, q SessionQuery) (chart.PieSeries, error) {
	list, err := s.sessions.List(ctx, q)
	if err != nil {
		return chart.PieSeries{}, err
	}
	return chart.ProjectShare(list), nil
}

func (s *reportService) Yearly(ctx context.Context, year int, projectID string) (chart.MonthlySeries, error) {
	list, err := s.sessions.List(ctx, SessionQuery{ProjectID: projectID})
	if err != nil {
		return chart.MonthlySeries{}, err
	}
	if year == 0 {
		year = time.Now().Year()
	}
	return chart.MonthlyProjectBuckets(list, year), nil
}

// ByActivity returns hours per activity, largest first. Activity types that
// no longer exist keep their id as the name.
func (s *reportService) ByActivity(ctx context.Context, q SessionQuery) ([]ActivityHours, error) {
	list, err := s.sessions.List(ctx, q)
	if err != nil {
		return nil, err
	}
	types, err := s.activities.List(ctx, true)
	if err != nil {
		return nil, err
	}
	names := make(map[string][2]string, len(types))
	for _, t := range types {
		names[t.ID] = [2]string{t.Name, t.Emoji}
	}

	rows := []ActivityHours{}
	for key, hours := range analytics.HoursByActivity(list) {
		row := ActivityHours{Key: key, Name: key.String(), Hours: hours}
		if id, ok := key.ID(); ok {
			if n, found := names[id]; found {
				row.Name, row.Emoji = n[0], n[1]
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Hours != rows[j].Hours {
			return rows[i].Hours > rows[j].Hours
		}
		return rows[i].Name < rows[j].Name
	})
	return rows, nil
}
