package repository

import (
	"context"

	"github.com/almvdev/receiving-api/internal/domain/entity"
	"github.com/google/uuid"
)

// SessionStore defines the interface for active reconciliation sessions.
// Sessions are request-scoped working state; no durability is required.
type SessionStore interface {
	Put(ctx context.Context, session *entity.ReconciliationSession) error
	Get(ctx context.Context, id uuid.UUID) (*entity.ReconciliationSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
