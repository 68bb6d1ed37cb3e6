package service

import (
	"context"
	"errors"
	"strings"

	identitydomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/logging"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/repository"
	projectsdomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
	"github.com/google/uuid"
)

// ProjectChecker reports whether a project exists.
type ProjectChecker interface {
	Exists(ctx context.Context, projectID string) (bool, error)
}

// UserFinder resolves an invitee by email.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*identitydomain.User, error)
}

// MembershipService is the authorization registry: every project-scoped
// operation asks it whether the actor belongs to the project.
type MembershipService struct {
	repo     repository.Repository
	projects ProjectChecker
	users    UserFinder
}

func NewMembershipService(repo repository.Repository, projects ProjectChecker, users UserFinder) *MembershipService {
	return &MembershipService{repo: repo, projects: projects, users: users}
}

// AddOwner records the creator of a new project. Project creation calls it
// inside the transaction that inserts the project.
func (s *MembershipService) AddOwner(ctx context.Context, projectID, userID string) error {
	return s.repo.Add(ctx, &domain.Membership{
		ProjectID: projectID,
		UserID:    userID,
		Role:      domain.RoleOwner,
	})
}

// Invite adds the user registered under email to the project. The inviter
// must already be a member; that check runs before the email lookup.
func (s *MembershipService) Invite(ctx context.Context, projectID, inviterID, email string) (*domain.Member, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	if err := s.RequireMember(ctx, projectID, inviterID); err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.ErrEmailRequired
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identitydomain.ErrUserNotFound) {
			return nil, domain.ErrInviteeNotFound
		}
		return nil, err
	}

	m := &domain.Membership{ProjectID: projectID, UserID: user.ID, Role: domain.RoleMember}
	if err := s.repo.Add(ctx, m); err != nil {
		return nil, err
	}

	logging.NewLogger(ctx).Infof("membership.invite", "project_id=%s inviter_id=%s user_id=%s", projectID, inviterID, user.ID)
	return &domain.Member{
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     m.Role,
		JoinedAt: m.CreatedAt,
	}, nil
}

// ListMembers returns the project's members in join order, owner first.
func (s *MembershipService) ListMembers(ctx context.Context, projectID string) ([]domain.Member, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, projectID)
}

func (s *MembershipService) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	if !validID(projectID) || !validID(userID) {
		return false, nil
	}
	return s.repo.IsMember(ctx, projectID, userID)
}

// RequireMember returns domain.ErrNotMember unless userID belongs to projectID.
func (s *MembershipService) RequireMember(ctx context.Context, projectID, userID string) error {
	ok, err := s.IsMember(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotMember
	}
	return nil
}

func (s *MembershipService) requireProject(ctx context.Context, projectID string) error {
	if !validID(projectID) {
		return projectsdomain.ErrProjectNotFound
	}
	ok, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return projectsdomain.ErrProjectNotFound
	}
	return nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
