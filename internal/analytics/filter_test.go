package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(sessions []*domain.Session) []string {
	out := make([]string, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.ID)
	}
	return out
}

func TestFilterByProject_ExactCaseSensitive(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("alpha", testutil.At(2024, 1, 1, 9, 0), 30, testutil.WithSessionID("1")),
		testutil.NewTestSession("Alpha", testutil.At(2024, 1, 1, 10, 0), 30, testutil.WithSessionID("2")),
		testutil.NewTestSession("alpha", testutil.At(2024, 1, 1, 11, 0), 30, testutil.WithSessionID("3")),
	}
	got := FilterByProject(sessions, "alpha")
	assert.Equal(t, []string{"1", "3"}, ids(got))
}

func TestFilterByProject_Idempotent(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("a", testutil.At(2024, 1, 1, 9, 0), 30),
		testutil.NewTestSession("b", testutil.At(2024, 1, 1, 10, 0), 30),
	}
	once := FilterByProject(sessions, "a")
	twice := FilterByProject(once, "a")
	assert.Equal(t, ids(once), ids(twice))
}

func TestFilterByActivityType_SkipsUncategorized(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("a", testutil.At(2024, 1, 1, 9, 0), 30, testutil.WithSessionID("1"), testutil.WithActivity("read")),
		testutil.NewTestSession("a", testutil.At(2024, 1, 1, 10, 0), 30, testutil.WithSessionID("2")),
		testutil.NewTestSession("a", testutil.At(2024, 1, 1, 11, 0), 30, testutil.WithSessionID("3"), testutil.WithActivity("write")),
	}
	assert.Equal(t, []string{"1"}, ids(FilterByActivityType(sessions, "read")))
	assert.Empty(t, FilterByActivityType(sessions, ""), "empty id must not match sessions without activity")
}

func TestFilterByInterval_IncludesBoundaries(t *testing.T) {
	from := testutil.At(2024, 1, 1, 9, 0)
	to := testutil.At(2024, 1, 1, 17, 0)
	sessions := []*domain.Session{
		testutil.NewTestSession("a", from.Add(-time.Minute), 10, testutil.WithSessionID("before")),
		testutil.NewTestSession("a", from, 10, testutil.WithSessionID("at-from")),
		testutil.NewTestSession("a", testutil.At(2024, 1, 1, 12, 0), 10, testutil.WithSessionID("inside")),
		testutil.NewTestSession("a", to, 10, testutil.WithSessionID("at-to")),
		testutil.NewTestSession("a", to.Add(time.Minute), 10, testutil.WithSessionID("after")),
	}
	assert.Equal(t, []string{"at-from", "inside", "at-to"}, ids(FilterByInterval(sessions, from, to)))
}

func TestFilterByDateFilter(t *testing.T) {
	// Wednesday 2024-05-15 at noon.
	now := testutil.At(2024, 5, 15, 12, 0)
	sessions := []*domain.Session{
		testutil.NewTestSession("a", testutil.At(2024, 5, 15, 8, 0), 30, testutil.WithSessionID("today")),
		testutil.NewTestSession("a", testutil.At(2024, 5, 13, 8, 0), 30, testutil.WithSessionID("monday")),
		testutil.NewTestSession("a", testutil.At(2024, 5, 12, 8, 0), 30, testutil.WithSessionID("sunday")),
		testutil.NewTestSession("a", testutil.At(2024, 5, 1, 0, 0), 30, testutil.WithSessionID("month-start")),
		testutil.NewTestSession("a", testutil.At(2024, 2, 10, 8, 0), 30, testutil.WithSessionID("february")),
		testutil.NewTestSession("a", testutil.At(2023, 12, 31, 23, 0), 30, testutil.WithSessionID("last-year")),
		testutil.NewTestSession("a", testutil.At(2024, 5, 20, 0, 0), 30, testutil.WithSessionID("next-monday")),
	}

	tests := []struct {
		filter    domain.DateFilter
		weekStart time.Weekday
		want      []string
	}{
		{domain.FilterToday, time.Monday, []string{"today"}},
		{domain.FilterThisWeek, time.Monday, []string{"today", "monday"}},
		{domain.FilterThisWeek, time.Sunday, []string{"today", "monday", "sunday"}},
		{domain.FilterThisMonth, time.Monday, []string{"today", "monday", "sunday", "month-start", "next-monday"}},
		{domain.FilterThisYear, time.Monday, []string{"today", "monday", "sunday", "month-start", "february", "next-monday"}},
		{domain.FilterAllTime, time.Monday, ids(sessions)},
		{domain.FilterCustom, time.Monday, ids(sessions)},
	}
	for _, tc := range tests {
		t.Run(string(tc.filter)+"/"+tc.weekStart.String(), func(t *testing.T) {
			got := FilterByDateFilter(sessions, tc.filter, now, tc.weekStart)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestPeriodBounds_WeekIsHalfOpen(t *testing.T) {
	start, end, ok := PeriodBounds(domain.FilterThisWeek, testutil.At(2024, 5, 15, 12, 0), time.Monday)
	require.True(t, ok)
	assert.True(t, testutil.At(2024, 5, 13, 0, 0).Equal(start))
	assert.True(t, testutil.At(2024, 5, 20, 0, 0).Equal(end))

	_, _, ok = PeriodBounds(domain.FilterAllTime, time.Now(), time.Monday)
	assert.False(t, ok)
}

func TestParseDateFilter(t *testing.T) {
	for in, want := range map[string]domain.DateFilter{
		"today":      domain.FilterToday,
		"this-week":  domain.FilterThisWeek,
		"thisMonth":  domain.FilterThisMonth,
		"THIS-YEAR":  domain.FilterThisYear,
		"all-time":   domain.FilterAllTime,
		" custom ":   domain.FilterCustom,
	} {
		got, err := ParseDateFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseDateFilter("fortnight")
	assert.Error(t, err)
}

func TestFilters_DoNotMutateInput(t *testing.T) {
	sessions := []*domain.Session{
		testutil.NewTestSession("b", testutil.At(2024, 1, 1, 9, 0), 30, testutil.WithSessionID("1")),
		testutil.NewTestSession("a", testutil.At(2024, 1, 2, 9, 0), 90, testutil.WithSessionID("2")),
	}
	before := ids(sessions)
	_ = FilterByProject(sessions, "a")
	_ = SortByStartDesc(sessions)
	_ = SortByDurationDesc(sessions)
	_ = SortByProjectAsc(sessions)
	_ = GroupByDay(sessions)
	assert.Equal(t, before, ids(sessions))
}

func TestEmptyInputIsTotal(t *testing.T) {
	assert.Empty(t, FilterByProject(nil, "a"))
	assert.Empty(t, FilterByInterval(nil, time.Time{}, time.Now()))
	assert.Empty(t, FilterByDateFilter(nil, domain.FilterAllTime, time.Now(), time.Monday))
	assert.Empty(t, SortByStartDesc(nil))
	assert.Empty(t, GroupByDay(nil))
	assert.Empty(t, GroupByProject(nil))
	assert.Zero(t, TotalMinutes(nil))
	assert.Empty(t, UniqueProjectIDs(nil))
	assert.Empty(t, Overlapping(nil, nil))
	assert.Empty(t, DedupeByID(nil))
	assert.Empty(t, HoursByActivity(nil))
	assert.Zero(t, Summarize(nil).SessionCount)
}
