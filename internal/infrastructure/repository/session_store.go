package repository

import (
	"context"
	"sync"

	"github.com/almvdev/receiving-api/internal/domain/entity"
	domainRepo "github.com/almvdev/receiving-api/internal/domain/repository"
	"github.com/google/uuid"
)

// sessionStore keeps active reconciliation sessions in memory. Sessions
// are working state scoped to one receiving flow; losing them on restart
// just means reloading the order.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entity.ReconciliationSession
}

// NewSessionStore creates a new in-memory session store
func NewSessionStore() domainRepo.SessionStore {
	return &sessionStore{
		sessions: make(map[uuid.UUID]*entity.ReconciliationSession),
	}
}

func (s *sessionStore) Put(ctx context.Context, session *entity.ReconciliationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *sessionStore) Get(ctx context.Context, id uuid.UUID) (*entity.ReconciliationSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id], nil
}

func (s *sessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
