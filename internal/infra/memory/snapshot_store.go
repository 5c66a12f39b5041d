package memory

import (
	"context"
	"sync"

	"trivia-cli/internal/domain"
)

// SnapshotStore is an in-memory implementation of app.SnapshotStore.
// Nothing survives a restart; it exists for tests and for running without
// any configured storage.
type SnapshotStore struct {
	mu    sync.RWMutex
	state *domain.QuizState
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Save(_ context.Context, state domain.QuizState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := state
	s.state = &copied
	return nil
}

func (s *SnapshotStore) Load(_ context.Context) (domain.QuizState, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return domain.QuizState{}, false, nil
	}
	return *s.state, true, nil
}

func (s *SnapshotStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = nil
	return nil
}
