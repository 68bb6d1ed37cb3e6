package service

import (
	"context"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/auth/domain"
	identitydomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/logging"
	sessiondomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/session/domain"
)

// Identity registers and authenticates users.
type Identity interface {
	Register(ctx context.Context, req identitydomain.RegisterRequest) (*identitydomain.User, error)
	Authenticate(ctx context.Context, email, password string) (*identitydomain.User, error)
}

// Sessions opens and revokes token-backed sessions.
type Sessions interface {
	Start(ctx context.Context, userID string) (string, *sessiondomain.Session, error)
	End(ctx context.Context, token string) error
}

// AuthService ties account operations to session issuance.
type AuthService struct {
	identity Identity
	sessions Sessions
}

func NewAuthService(identity Identity, sessions Sessions) *AuthService {
	return &AuthService{
		identity: identity,
		sessions: sessions,
	}
}

// Register creates the account and signs the new user in.
func (s *AuthService) Register(ctx context.Context, req identitydomain.RegisterRequest) (*domain.AuthResult, error) {
	user, err := s.identity.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, user)
}

// Login verifies credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.identity.Authenticate(ctx, email, password)
	if err != nil {
		logging.NewLogger(ctx).Debugf("auth.login", "result=rejected")
		return nil, err
	}
	return s.startSession(ctx, user)
}

// Logout revokes the session behind token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.End(ctx, token)
}

func (s *AuthService) startSession(ctx context.Context, user *identitydomain.User) (*domain.AuthResult, error) {
	token, sess, err := s.sessions.Start(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	logging.NewLogger(ctx).Infof("auth.session_start", "user_id=%s session_id=%s", user.ID, sess.ID)
	return &domain.AuthResult{User: user, Token: token, ExpiresAt: sess.ExpiresAt}, nil
}
