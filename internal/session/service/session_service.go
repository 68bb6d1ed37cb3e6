package service

import (
	"context"
	"errors"
	"time"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/logging"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/security"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/session/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/session/repository"
	"github.com/google/uuid"
)

// SessionService issues tokens bound to revocable server-side sessions.
type SessionService struct {
	store  repository.Store
	tokens *security.TokenProvider
}

func NewSessionService(store repository.Store, tokens *security.TokenProvider) *SessionService {
	return &SessionService{store: store, tokens: tokens}
}

// Start opens a session for userID and returns its signed token.
func (s *SessionService) Start(ctx context.Context, userID string) (string, *domain.Session, error) {
	sess := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	token, expiresAt, err := s.tokens.Issue(sess.ID, userID)
	if err != nil {
		return "", nil, err
	}
	sess.ExpiresAt = expiresAt

	if err := s.store.Save(ctx, sess); err != nil {
		return "", nil, err
	}
	return token, sess, nil
}

// Resolve validates token and returns its live session.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	sessionID, userID, err := s.tokens.Validate(token)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.UserID != userID {
		return nil, domain.ErrInvalidToken
	}
	return sess, nil
}

// End revokes the session behind token. Ending an unknown or expired session succeeds.
func (s *SessionService) End(ctx context.Context, token string) error {
	sess, err := s.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrInvalidToken) {
			return nil
		}
		return err
	}
	return s.store.Delete(ctx, sess.ID)
}

// Sweep removes expired sessions from the store.
func (s *SessionService) Sweep(ctx context.Context) error {
	removed, err := s.store.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if removed > 0 {
		logging.NewLogger(ctx).Infof("session.sweep", "removed=%d", removed)
	}
	return nil
}
