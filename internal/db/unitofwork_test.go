package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/juju/internal/db"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/repository"
	"github.com/alexanderramin/juju/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uowEnv struct {
	uow      *db.SQLiteUnitOfWork
	projects *repository.SQLiteProjectRepo
	sessions *repository.SQLiteSessionRepo
}

func newUoWEnv(t *testing.T) *uowEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &uowEnv{
		uow:      db.NewSQLiteUnitOfWork(database),
		projects: repository.NewSQLiteProjectRepo(database),
		sessions: repository.NewSQLiteSessionRepo(database),
	}
}

func (e *uowEnv) projectIDs(t *testing.T) []string {
	t.Helper()
	list, err := e.projects.List(context.Background(), true)
	require.NoError(t, err)
	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	return ids
}

func TestWithinTx_CommitsProjectAndSession(t *testing.T) {
	env := newUoWEnv(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Thesis", testutil.WithProjectID("p1"))
	s := testutil.NewTestSession("p1", testutil.At(2024, time.March, 4, 9, 0), 60,
		testutil.WithSessionID("s1"), testutil.WithProjectName("Thesis"))

	err := env.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, p); err != nil {
			return err
		}
		return repository.NewSQLiteSessionRepo(tx).Create(ctx, s)
	})
	require.NoError(t, err)

	_, err = env.projects.GetByID(ctx, "p1")
	assert.NoError(t, err)
	got, err := env.sessions.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 60, got.DurationMinutes())
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	env := newUoWEnv(t)
	ctx := context.Background()
	boom := errors.New("import aborted")

	err := env.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, testutil.NewTestProject("Garden", testutil.WithProjectID("p2"))); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = env.projects.GetByID(ctx, "p2")
	assert.ErrorIs(t, err, repository.ErrNotFound, "project created inside a failed tx is gone")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	env := newUoWEnv(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = env.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			_ = repository.NewSQLiteProjectRepo(tx).Create(ctx, testutil.NewTestProject("Boat", testutil.WithProjectID("p3")))
			panic("boom")
		})
	})

	_, err := env.projects.GetByID(ctx, "p3")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWithinTx_ReplaceAllRollsBackPrune(t *testing.T) {
	env := newUoWEnv(t)
	ctx := context.Background()

	for i, name := range []string{"A", "B", "C"} {
		require.NoError(t, env.projects.Create(ctx, testutil.NewTestProject(name,
			testutil.WithProjectID("p"+name), testutil.WithOrder(i))))
	}
	before := env.projectIDs(t)

	// pruning B and C succeeds, the upsert of the bad row then fails the check
	// on sort_order.
	keep := testutil.NewTestProject("A", testutil.WithProjectID("pA"))
	bad := &domain.Project{ID: "pX", Name: "Bad", Order: -1, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	err := env.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProjectRepo(tx).ReplaceAll(ctx, []*domain.Project{keep, bad})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pX")

	assert.Equal(t, before, env.projectIDs(t), "pruned projects come back after rollback")
}
