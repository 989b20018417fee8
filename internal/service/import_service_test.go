package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/juju/internal/repository"
	"github.com/alexanderramin/juju/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportService_LegacyFileCreatesProjects(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewImportService(env.sessionSvc, env.uow, env.observer)

	existing := env.addProject(t, "Thesis")
	path := writeCSV(t, "thesis-data.csv", "\n\n"+
		"id,date,start_time,end_time,project_name,notes,mood,milestone_text\n"+
		"s1,2024-03-04,23:00,00:30,thesis,late,6,Chapter 1\n"+
		"s2,2024-03-05,09:00,10:00,Garden,,,\n"+
		"s2,2024-03-05,09:00,10:00,Garden,dup row,,\n")

	res, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.True(t, res.Legacy)
	assert.Equal(t, 2, res.LeadingBlankLines)
	assert.Equal(t, 3, res.Rows)
	assert.Equal(t, 1, res.Duplicates)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, []string{"Garden"}, res.ProjectsCreated)

	s1, err := env.sessions.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, s1.ProjectID, "names match existing projects case-insensitively")
	assert.Equal(t, "Thesis", s1.ProjectName)
	assert.Equal(t, 90, s1.DurationMinutes())
	assert.Equal(t, "Chapter 1", s1.MilestoneText)

	garden, err := env.projects.GetByName(ctx, "Garden")
	require.NoError(t, err)
	assert.Equal(t, 1, garden.Order)

	events := env.observer.byName("import-csv")
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
}

func TestImportService_IdempotentByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewImportService(env.sessionSvc, env.uow)

	path := writeCSV(t, "p-data.csv",
		"id,date,start_time,end_time,project,action,is_milestone\n"+
			"a,2024-03-04,09:00,10:00,P,Launch,1\n"+
			"b,2024-03-04,11:00,12:00,P,Not one,0\n")

	first, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Imported)
	assert.False(t, first.Legacy)

	second, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 2, second.SkippedExisting)
	assert.Empty(t, second.ProjectsCreated)

	b, err := env.sessions.GetByID(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, b.MilestoneText)
}

func TestImportService_IdlessRowsImportOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewImportService(env.sessionSvc, env.uow)

	path := writeCSV(t, "old-data.csv",
		"date,start_time,end_time,project_name,notes\n"+
			"2024-03-04,09:00,10:00,P,morning\n"+
			"2024-03-04,22:30,00:15,P,night\n")

	first, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Imported)

	second, err := svc.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 2, second.SkippedExisting)

	all, err := env.sessions.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportService_ValidationErrorsImportNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewImportService(env.sessionSvc, env.uow)

	path := writeCSV(t, "bad-data.csv",
		"id,date,start_time,end_time,project\n"+
			"a,2024-03-04,09:00,10:00,P\n"+
			"b,not-a-date,09:00,10:00,P\n")

	_, err := svc.ImportFile(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	all, err := env.sessions.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportService_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	sessions := NewSessionService(
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteProjectRepo(database),
		repository.NewSQLiteActivityTypeRepo(database),
		time.Monday,
	)
	// Exec 1 creates project P, exec 2 session a, exec 3 session b fails.
	uow := testutil.NewFailingExecUoW(database, 3)
	svc := NewImportService(sessions, uow)

	path := writeCSV(t, "p-data.csv",
		"id,date,start_time,end_time,project\n"+
			"a,2024-03-04,09:00,10:00,P\n"+
			"b,2024-03-04,11:00,12:00,P\n")

	_, err := svc.ImportFile(ctx, path)
	assert.ErrorIs(t, err, testutil.ErrInjectedExec)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&n))
	assert.Zero(t, n)
}

func TestImportService_ExportRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewImportService(env.sessionSvc, env.uow)

	p := env.addProject(t, "P")
	env.addSession(t, p, testutil.At(2024, time.March, 4, 9, 0), 45, testutil.WithMilestone("m"))
	env.addSession(t, p, testutil.At(2024, time.March, 5, 9, 0), 15)

	var buf bytes.Buffer
	n, err := svc.Export(ctx, &buf, SessionQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[1], ",m,1"))
	assert.True(t, strings.HasSuffix(lines[2], ",,0"))
}
