package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/juju/internal/analytics"
	"github.com/alexanderramin/juju/internal/domain"
	"github.com/alexanderramin/juju/internal/repository"
)

// DeleteProjectRequest names the project to delete and, optionally, the
// project its sessions move to. An empty TargetID picks the first eligible
// project in list order.
type DeleteProjectRequest struct {
	ProjectID string
	TargetID  string
}

// DeletionResult reports how a deletion ended. FailedSessionIDs lists the
// sessions whose reassignment failed; they still reference the deleted
// project.
type DeletionResult struct {
	State            domain.DeletionState
	Deleted          bool
	MigratedCount    int
	FailedSessionIDs []string
	TargetID         string
}

// ProjectDeleter removes projects, first moving their sessions to another
// active project. Reassignments are applied one by one and are not rolled
// back: a failed update is recorded and the project is removed anyway.
type ProjectDeleter struct {
	sessions  SessionStore
	projects  ProjectStore
	selection SelectionStore
	observer  UseCaseObserver

	mu     sync.Mutex
	active map[string]struct{}

	// listMu serializes the read-modify-write of the project list.
	listMu sync.Mutex
}

func NewProjectDeleter(
	sessions SessionStore,
	projects ProjectStore,
	selection SelectionStore,
	observers ...UseCaseObserver,
) *ProjectDeleter {
	return &ProjectDeleter{
		sessions:  sessions,
		projects:  projects,
		selection: selection,
		observer:  useCaseObserverOrNoop(observers),
		active:    make(map[string]struct{}),
	}
}

// AffectedSessions returns the sessions that would move if projectID were
// deleted.
func (d *ProjectDeleter) AffectedSessions(ctx context.Context, projectID string) ([]*domain.Session, error) {
	all, err := d.sessions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("collecting sessions: %w", err)
	}
	return analytics.FilterByProject(all, projectID), nil
}

// EligibleTargets returns the active projects, other than projectID, that can
// receive its sessions, in list order.
func (d *ProjectDeleter) EligibleTargets(ctx context.Context, projectID string) ([]*domain.Project, error) {
	all, err := d.projects.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return eligibleTargets(all, projectID), nil
}

func eligibleTargets(projects []*domain.Project, deletingID string) []*domain.Project {
	targets := []*domain.Project{}
	for _, p := range projects {
		if p.IsMigrationTarget(deletingID) {
			targets = append(targets, p)
		}
	}
	return targets
}

// DeleteProject runs a deletion to a terminal state. ErrNoMigrationTarget and
// ErrInvalidTarget come back with an aborted result and nothing changed.
func (d *ProjectDeleter) DeleteProject(ctx context.Context, req DeleteProjectRequest) (result *DeletionResult, err error) {
	if !d.begin(req.ProjectID) {
		return &DeletionResult{State: domain.DeletionIdle},
			fmt.Errorf("deleting project %s: %w", req.ProjectID, ErrDeletionInProgress)
	}
	defer d.end(req.ProjectID)

	startedAt := time.Now().UTC()
	result = &DeletionResult{State: domain.DeletionIdle}
	var warnings []string
	defer func() {
		observe(ctx, d.observer, "delete-project", startedAt, err, map[string]any{
			"project_id": req.ProjectID,
			"target_id":  result.TargetID,
			"state":      string(result.State),
			"migrated":   result.MigratedCount,
			"failed":     len(result.FailedSessionIDs),
		}, warnings...)
	}()

	projects, err := d.projects.List(ctx, true)
	if err != nil {
		return result, fmt.Errorf("listing projects: %w", err)
	}
	if indexOf(projects, req.ProjectID) < 0 {
		return result, fmt.Errorf("project %s: %w", req.ProjectID, repository.ErrNotFound)
	}

	affected, err := d.AffectedSessions(ctx, req.ProjectID)
	if err != nil {
		return result, err
	}
	result.State = domain.DeletionSessionsCollected

	if len(affected) == 0 {
		result.State = domain.DeletionNoSessions
		return result, d.remove(ctx, result, req.ProjectID)
	}

	result.State = domain.DeletionNeedsTarget
	targets := eligibleTargets(projects, req.ProjectID)
	if len(targets) == 0 {
		result.State = domain.DeletionAborted
		return result, fmt.Errorf("deleting project %s with %d sessions: %w", req.ProjectID, len(affected), ErrNoMigrationTarget)
	}

	target := targets[0]
	if req.TargetID != "" {
		i := indexOf(targets, req.TargetID)
		if i < 0 {
			result.State = domain.DeletionAborted
			return result, fmt.Errorf("target %s: %w", req.TargetID, ErrInvalidTarget)
		}
		target = targets[i]
	}
	result.TargetID = target.ID

	// The loop runs to completion even if ctx is cancelled mid-way.
	for _, s := range affected {
		if uerr := d.sessions.Update(ctx, s.ReassignedTo(target)); uerr != nil {
			result.FailedSessionIDs = append(result.FailedSessionIDs, s.ID)
			warnings = append(warnings, fmt.Sprintf("session %s not moved to %s: %v", s.ID, target.Name, uerr))
			continue
		}
		result.MigratedCount++
	}

	return result, d.remove(ctx, result, req.ProjectID)
}

// remove drops projectID from a freshly read list, persists it and clears a
// selection pointing at it. Deletions of other projects that finished while
// sessions were being moved stay deleted.
func (d *ProjectDeleter) remove(ctx context.Context, result *DeletionResult, projectID string) error {
	d.listMu.Lock()
	defer d.listMu.Unlock()

	projects, err := d.projects.List(ctx, true)
	if err != nil {
		result.State = domain.DeletionAborted
		return fmt.Errorf("listing projects: %w", err)
	}
	remaining := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != projectID {
			remaining = append(remaining, p)
		}
	}
	if err := d.projects.SaveAll(ctx, remaining); err != nil {
		result.State = domain.DeletionAborted
		return fmt.Errorf("saving project list: %w", err)
	}
	result.State = domain.DeletionDeleted
	result.Deleted = true

	selected, err := d.selection.SelectedProjectID(ctx)
	if err != nil {
		return fmt.Errorf("reading selected project: %w", err)
	}
	if selected == projectID {
		if err := d.selection.SetSelectedProjectID(ctx, ""); err != nil {
			return fmt.Errorf("clearing selected project: %w", err)
		}
	}
	return nil
}

func (d *ProjectDeleter) begin(projectID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, busy := d.active[projectID]; busy {
		return false
	}
	d.active[projectID] = struct{}{}
	return true
}

func (d *ProjectDeleter) end(projectID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.active, projectID)
}

func indexOf(projects []*domain.Project, id string) int {
	for i, p := range projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}
