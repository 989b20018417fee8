package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_SummaryAndDays(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	reports := NewReportService(env.sessionSvc, env.activities)

	p := env.addProject(t, "P")
	env.addSession(t, p, testutil.At(2024, time.June, 10, 9, 0), 60, testutil.WithMood(4))
	env.addSession(t, p, testutil.At(2024, time.June, 10, 14, 0), 90, testutil.WithMood(8), testutil.WithMilestone("done"))
	env.addSession(t, p, testutil.At(2024, time.June, 11, 9, 0), 30)

	sum, err := reports.Summary(ctx, SessionQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, sum.SessionCount)
	assert.Equal(t, 180, sum.TotalMinutes)
	assert.Equal(t, 2, sum.ActiveDays)
	assert.Equal(t, 1, sum.MilestoneCount)
	require.NotNil(t, sum.AverageMood)
	assert.InDelta(t, 6.0, *sum.AverageMood, 1e-9)
	require.NotNil(t, sum.Longest)
	assert.Equal(t, 90, sum.Longest.DurationMinutes())

	days, err := reports.Days(ctx, SessionQuery{})
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, 30, days[0].TotalMinutes(), "most recent day first")
	assert.Equal(t, 150, days[1].TotalMinutes())
}

func TestReportService_ChartSeries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	reports := NewReportService(env.sessionSvc, env.activities)

	a := env.addProject(t, "Alpha")
	b := env.addProject(t, "Beta", testutil.WithOrder(1))
	env.addSession(t, a, testutil.At(2024, time.March, 4, 9, 0), 60)
	env.addSession(t, b, testutil.At(2024, time.March, 12, 9, 0), 120)

	daily, err := reports.Daily(ctx, SessionQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Beta"}, daily.Projects())

	weekly, err := reports.Weekly(ctx, SessionQuery{})
	require.NoError(t, err)
	assert.Len(t, weekly.WeekKeys, 2)

	pie, err := reports.Pie(ctx, SessionQuery{})
	require.NoError(t, err)
	assert.Len(t, pie.Labels, 2)

	yearly, err := reports.Yearly(ctx, 2024, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2024, yearly.Year)
	assert.Equal(t, []string{"Beta"}, yearly.Projects())
	assert.InDelta(t, 2.0, yearly.PerProject["Beta"][2], 1e-9)
}

func TestReportService_ByActivity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	reports := NewReportService(env.sessionSvc, env.activities)

	writing := testutil.NewTestActivity("Writing")
	writing.Emoji = "✍️"
	require.NoError(t, env.activities.Create(ctx, writing))

	p := env.addProject(t, "P")
	env.addSession(t, p, testutil.At(2024, time.June, 10, 9, 0), 120, testutil.WithActivity(writing.ID))
	env.addSession(t, p, testutil.At(2024, time.June, 10, 12, 0), 30)
	env.addSession(t, p, testutil.At(2024, time.June, 10, 14, 0), 60, testutil.WithActivity("deleted-type"))

	rows, err := reports.ByActivity(ctx, SessionQuery{})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Writing", rows[0].Name)
	assert.Equal(t, "✍️", rows[0].Emoji)
	assert.InDelta(t, 2.0, rows[0].Hours, 1e-9)

	assert.Equal(t, "deleted-type", rows[1].Name)
	assert.True(t, rows[2].Key.IsUncategorized())
	assert.Equal(t, domain.Uncategorized.String(), rows[2].Name)
}
