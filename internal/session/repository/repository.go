package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/session/domain"
)

// Store persists sessions until they expire.
type Store interface {
	Save(ctx context.Context, s *domain.Session) error
	// Get returns domain.ErrSessionNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete is a no-op for unknown sessions.
	Delete(ctx context.Context, id string) error
	// DeleteExpired drops sessions past their expiry and returns how many it removed.
	DeleteExpired(ctx context.Context) (int, error)
}
