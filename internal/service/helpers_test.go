package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/juju/internal/db"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/repository"
	"github.com/alexanderramin/juju/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	projects   *repository.SQLiteProjectRepo
	sessions   *repository.SQLiteSessionRepo
	activities *repository.SQLiteActivityTypeRepo
	settings   *repository.SQLiteSettingsRepo
	uow        db.UnitOfWork
	observer   *recordingObserver

	projectSvc ProjectService
	sessionSvc SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &testEnv{
		projects:   repository.NewSQLiteProjectRepo(database),
		sessions:   repository.NewSQLiteSessionRepo(database),
		activities: repository.NewSQLiteActivityTypeRepo(database),
		settings:   repository.NewSQLiteSettingsRepo(database),
		uow:        testutil.NewTestUoW(database),
		observer:   &recordingObserver{},
	}
	env.projectSvc = NewProjectService(env.projects, env.settings, env.uow, env.observer)
	env.sessionSvc = NewSessionService(env.sessions, env.projects, env.activities, time.Monday, env.observer)
	return env
}

func (e *testEnv) addProject(t *testing.T, name string, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject(name, opts...)
	require.NoError(t, e.projects.Create(context.Background(), p))
	return p
}

func (e *testEnv) addSession(t *testing.T, p *domain.Project, start time.Time, minutes int, opts ...testutil.SessionOption) *domain.Session {
	t.Helper()
	opts = append([]testutil.SessionOption{testutil.WithProjectName(p.Name)}, opts...)
	s := testutil.NewTestSession(p.ID, start, minutes, opts...)
	require.NoError(t, e.sessions.Create(context.Background(), s))
	return s
}

// recordingObserver keeps every event for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) byName(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range o.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
