package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/juju/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionTestSetup creates the project sessions are logged against.
func sessionTestSetup(t *testing.T) (*SQLiteSessionRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("SessProj")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	return NewSQLiteSessionRepo(db), proj.ID
}

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo, projID := sessionTestSetup(t)
	ctx := context.Background()

	start := testutil.At(2024, time.March, 4, 9, 30)
	sess := testutil.NewTestSession(projID, start, 45,
		testutil.WithNotes("Good session"),
		testutil.WithMood(7),
		testutil.WithMilestone("first draft"),
		testutil.WithProjectName("SessProj"),
	)
	require.NoError(t, repo.Create(ctx, sess))

	got, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, projID, got.ProjectID)
	assert.Equal(t, "SessProj", got.ProjectName)
	assert.True(t, start.Equal(got.StartDate))
	assert.Equal(t, 45, got.DurationMinutes())
	assert.Equal(t, "Good session", got.Notes)
	require.NotNil(t, got.Mood)
	assert.Equal(t, 7, *got.Mood)
	assert.True(t, got.IsMilestone())
}

func TestSessionRepo_NullMoodRoundTrips(t *testing.T) {
	repo, projID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(projID, testutil.At(2024, time.March, 4, 9, 0), 10)
	require.NoError(t, repo.Create(ctx, sess))

	got, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Mood)
	assert.False(t, got.HasActivity())
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := sessionTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListAll_OrderedByStart(t *testing.T) {
	repo, projID := sessionTestSetup(t)
	ctx := context.Background()

	late := testutil.NewTestSession(projID, testutil.At(2024, time.March, 5, 9, 0), 30)
	early := testutil.NewTestSession(projID, testutil.At(2024, time.March, 4, 9, 0), 30)
	require.NoError(t, repo.Create(ctx, late))
	require.NoError(t, repo.Create(ctx, early))

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, early.ID, list[0].ID)
	assert.Equal(t, late.ID, list[1].ID)
}

func TestSessionRepo_ListByProject(t *testing.T) {
	repo, projID := sessionTestSetup(t)
	ctx := context.Background()

	mine := testutil.NewTestSession(projID, testutil.At(2024, time.March, 4, 9, 0), 30)
	other := testutil.NewTestSession("other-project", testutil.At(2024, time.March, 4, 10, 0), 30)
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListByProject(ctx, projID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)
}

func TestSessionRepo_ListBetween_Inclusive(t *testing.T) {
	repo, projID := sessionTestSetup(t)
	ctx := context.Background()

	from := testutil.At(2024, time.March, 4, 0, 0)
	to := testutil.At(2024, time.March, 4, 23, 59)
	onEdge := testutil.NewTestSession(projID, from, 30)
	inside := testutil.NewTestSession(projID, testutil.At(2024, time.March, 4, 12, 0), 30)
	after := testutil.NewTestSession(projID, testutil.At(2024, time.March, 5, 0, 0), 30)
	require.NoError(t, repo.Create(ctx, onEdge))
	require.NoError(t, repo.Create(ctx, inside))
	require.NoError(t, repo.Create(ctx, after))

	list, err := repo.ListBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, onEdge.ID, list[0].ID)
	assert.Equal(t, inside.ID, list[1].ID)
}

func TestSessionRepo_Update_ReplacesRecord(t *testing.T) {
	repo, projID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(projID, testutil.At(2024, time.March, 4, 9, 0), 30, testutil.WithMood(3))
	require.NoError(t, repo.Create(ctx, sess))

	updated := sess.Clone()
	updated.ProjectID = "target"
	updated.ProjectName = "Target"
	updated.Mood = nil
	updated.Notes = "moved"
	require.NoError(t, repo.Update(ctx, updated))
	require.NoError(t, repo.Update(ctx, updated), "re-applying the same record succeeds")

	got, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "target", got.ProjectID)
	assert.Equal(t, "Target", got.ProjectName)
	assert.Nil(t, got.Mood)
	assert.Equal(t, "moved", got.Notes)
	assert.True(t, sess.StartDate.Equal(got.StartDate))
	assert.True(t, sess.EndDate.Equal(got.EndDate))
}

func TestSessionRepo_Update_Missing(t *testing.T) {
	repo, projID := sessionTestSetup(t)

	ghost := testutil.NewTestSession(projID, testutil.At(2024, time.March, 4, 9, 0), 30)
	assert.ErrorIs(t, repo.Update(context.Background(), ghost), ErrNotFound)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo, projID := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession(projID, testutil.At(2024, time.March, 4, 9, 0), 30)
	require.NoError(t, repo.Create(ctx, sess))
	require.NoError(t, repo.Delete(ctx, sess.ID))

	_, err := repo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, sess.ID), ErrNotFound)
}

// TestSessionRepo_ProjectDeleteLeavesSessions verifies sessions are never
// cascade-deleted with their project.
func TestSessionRepo_ProjectDeleteLeavesSessions(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	projRepo := NewSQLiteProjectRepo(db)
	sessRepo := NewSQLiteSessionRepo(db)

	proj := testutil.NewTestProject("Doomed")
	require.NoError(t, projRepo.Create(ctx, proj))
	sess := testutil.NewTestSession(proj.ID, testutil.At(2024, time.March, 4, 9, 0), 30)
	require.NoError(t, sessRepo.Create(ctx, sess))

	require.NoError(t, projRepo.Delete(ctx, proj.ID))

	got, err := sessRepo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, proj.ID, got.ProjectID)
}
