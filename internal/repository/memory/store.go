package memory

import (
	"context"
	"sync"

	"github.com/lazygeek007/connect-four/internal/domain"
	"github.com/lazygeek007/connect-four/internal/repository"
)

// Store is an in-memory implementation of the session store
type Store struct {
	mu        sync.RWMutex
	snapshots map[string]*repository.GameSnapshot
}

// New creates a new in-memory store instance
func New() *Store {
	return &Store{
		snapshots: make(map[string]*repository.GameSnapshot),
	}
}

// Ensure Store implements the interface
var _ repository.SessionStore = (*Store)(nil)

func (s *Store) Save(ctx context.Context, snapshot *repository.GameSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[snapshot.SessionID] = snapshot
	return nil
}

func (s *Store) Get(ctx context.Context, sessionID string) (*repository.GameSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.snapshots[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return snapshot, nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, sessionID)
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}
