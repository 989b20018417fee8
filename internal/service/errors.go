package service

import "errors"

var (
	// ErrNoMigrationTarget means a project with sessions cannot be deleted
	// because no other active project can receive them.
	ErrNoMigrationTarget = errors.New("no active project to move sessions to")
	// ErrInvalidTarget means the requested target is archived, missing, or
	// the project being deleted.
	ErrInvalidTarget = errors.New("invalid migration target")
	// ErrDeletionInProgress rejects a second concurrent deletion of the same
	// project.
	ErrDeletionInProgress = errors.New("project deletion already in progress")
	// ErrAmbiguousProject means a project reference matched more than one
	// project.
	ErrAmbiguousProject = errors.New("project reference is ambiguous")
	ErrDuplicateName    = errors.New("name already in use")
	ErrArchivedProject  = errors.New("project is archived")
)
