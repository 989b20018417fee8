package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/alexanderramin/juju/internal/domain"
)

// ErrInjected is returned by FailingSessionStore for ids listed in FailIDs.
var ErrInjected = errors.New("injected update failure")

// SessionReadWriter is the method set FailingSessionStore wraps.
type SessionReadWriter interface {
	ListAll(ctx context.Context) ([]*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
}

// FailingSessionStore fails Update for selected session ids and passes every
// other call through. Attempted ids are recorded in call order.
type FailingSessionStore struct {
	SessionReadWriter
	FailIDs map[string]bool

	mu       sync.Mutex
	attempts []string
}

func NewFailingSessionStore(inner SessionReadWriter, failIDs ...string) *FailingSessionStore {
	f := &FailingSessionStore{SessionReadWriter: inner, FailIDs: map[string]bool{}}
	for _, id := range failIDs {
		f.FailIDs[id] = true
	}
	return f
}

func (f *FailingSessionStore) Update(ctx context.Context, s *domain.Session) error {
	f.mu.Lock()
	f.attempts = append(f.attempts, s.ID)
	f.mu.Unlock()
	if f.FailIDs[s.ID] {
		return ErrInjected
	}
	return f.SessionReadWriter.Update(ctx, s)
}

// Attempts returns the ids Update was called with.
func (f *FailingSessionStore) Attempts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.attempts...)
}
