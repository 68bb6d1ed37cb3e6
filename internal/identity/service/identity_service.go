package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/repository"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/logging"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/security"
	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IdentityService registers and authenticates users.
type IdentityService struct {
	repo   repository.Repository
	hasher *security.Hasher
	// dummyHash is compared against when the email is unknown so both failure paths cost one bcrypt run.
	dummyHash string
}

func NewIdentityService(repo repository.Repository, hasher *security.Hasher) (*IdentityService, error) {
	dummy, err := hasher.Hash([]byte(uuid.NewString()))
	if err != nil {
		return nil, err
	}
	return &IdentityService{repo: repo, hasher: hasher, dummyHash: dummy}, nil
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and stores only the password hash.
func (s *IdentityService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := NormalizeEmail(req.Email)

	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}
	if req.Password == "" {
		return nil, domain.ErrPasswordRequired
	}
	if len(req.Password) > security.MaxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}

	hash, err := s.hasher.Hash([]byte(req.Password))
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logging.NewLogger(ctx).Infof("identity.register", "user_id=%s", user.ID)
	return user, nil
}

// Authenticate returns the user for a matching email and password. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.hasher.Matches(s.dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Matches(user.PasswordHash, []byte(password)) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Get returns the user with the given id.
func (s *IdentityService) Get(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetByEmail looks up a user by email, normalizing it first.
func (s *IdentityService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, NormalizeEmail(email))
}
