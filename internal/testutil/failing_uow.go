package testutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/juju/internal/db"
)

// ErrInjectedExec is the default error returned by FailingExecUoW.
var ErrInjectedExec = errors.New("injected exec failure")

// FailingExecUoW runs transactions against DB but fails the FailOn-th write
// (ExecContext, counted from 1 across the transaction). Reads pass through.
// Used to prove that multi-write operations such as SaveAll and CSV import
// roll back completely.
type FailingExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error

	execs atomic.Int32
}

// NewFailingExecUoW fails the n-th write of each transaction.
func NewFailingExecUoW(database *sql.DB, n int32) *FailingExecUoW {
	return &FailingExecUoW{DB: database, FailOn: n, Err: ErrInjectedExec}
}

func (u *FailingExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingExec{DBTX: tx, uow: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

// Execs reports how many writes were attempted in total.
func (u *FailingExecUoW) Execs() int {
	return int(u.execs.Load())
}

type failingExec struct {
	db.DBTX
	uow   *FailingExecUoW
	count int32
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.uow.execs.Add(1)
	f.count++
	if f.count == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
