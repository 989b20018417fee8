package analytics

import (
	"testing"

	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func projectNames(projects []*domain.Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Name)
	}
	return out
}

func TestSortProjectsByRecent(t *testing.T) {
	idle := testutil.NewTestProject("Idle", testutil.WithOrder(0))
	old := testutil.NewTestProject("Old", testutil.WithOrder(1))
	fresh := testutil.NewTestProject("Fresh", testutil.WithOrder(2))
	alsoIdle := testutil.NewTestProject("Also Idle", testutil.WithOrder(0))

	sessions := []*domain.Session{
		testutil.NewTestSession(old.ID, testutil.At(2024, 1, 1, 9, 0), 30),
		testutil.NewTestSession(fresh.ID, testutil.At(2024, 3, 1, 9, 0), 30),
		testutil.NewTestSession(old.ID, testutil.At(2024, 2, 1, 9, 0), 30),
	}

	got := SortProjectsByRecent([]*domain.Project{idle, old, fresh, alsoIdle}, sessions)
	assert.Equal(t, []string{"Fresh", "Old", "Also Idle", "Idle"}, projectNames(got),
		"projects without sessions sort as oldest, tie broken by order then name")

	last := LastSessionDates(sessions)
	assert.True(t, testutil.At(2024, 2, 1, 9, 0).Equal(last[old.ID]))
	_, ok := last[idle.ID]
	assert.False(t, ok)
}

func TestSortProjectsByOrder(t *testing.T) {
	got := SortProjectsByOrder([]*domain.Project{
		testutil.NewTestProject("beta", testutil.WithOrder(2)),
		testutil.NewTestProject("Alpha", testutil.WithOrder(2)),
		testutil.NewTestProject("zulu", testutil.WithOrder(1)),
	})
	assert.Equal(t, []string{"zulu", "Alpha", "beta"}, projectNames(got))
}

func TestOrphanedSessions(t *testing.T) {
	live := testutil.NewTestProject("Live")
	sessions := []*domain.Session{
		testutil.NewTestSession(live.ID, testutil.At(2024, 1, 1, 9, 0), 30, testutil.WithSessionID("ok")),
		testutil.NewTestSession("gone", testutil.At(2024, 1, 1, 10, 0), 30, testutil.WithSessionID("orphan")),
	}
	assert.Equal(t, []string{"orphan"}, ids(OrphanedSessions(sessions, []*domain.Project{live})))
}
