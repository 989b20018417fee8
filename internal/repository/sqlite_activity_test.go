package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/juju/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityTypeRepo_CreateGetList(t *testing.T) {
	repo := NewSQLiteActivityTypeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	writing := testutil.NewTestActivity("Writing")
	writing.Emoji = "✍️"
	reading := testutil.NewTestActivity("reading")
	require.NoError(t, repo.Create(ctx, writing))
	require.NoError(t, repo.Create(ctx, reading))

	got, err := repo.GetByID(ctx, writing.ID)
	require.NoError(t, err)
	assert.Equal(t, "✍️", got.Emoji)

	byName, err := repo.GetByName(ctx, "WRITING")
	require.NoError(t, err)
	assert.Equal(t, writing.ID, byName.ID)

	list, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "reading", list[0].Name)
	assert.Equal(t, "Writing", list[1].Name)
}

func TestActivityTypeRepo_DuplicateNameRejected(t *testing.T) {
	repo := NewSQLiteActivityTypeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestActivity("Deep work")))
	assert.Error(t, repo.Create(ctx, testutil.NewTestActivity("Deep work")))
}

func TestActivityTypeRepo_SetArchived(t *testing.T) {
	repo := NewSQLiteActivityTypeRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := testutil.NewTestActivity("Admin")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.SetArchived(ctx, a.ID, true))

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	assert.ErrorIs(t, repo.SetArchived(ctx, "missing", true), ErrNotFound)
}
