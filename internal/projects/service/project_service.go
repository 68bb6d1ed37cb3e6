package service

import (
	"context"
	"strings"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/logging"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/repository"
	"github.com/google/uuid"
)

// MemberRegistry is the part of the membership service projects depend on.
type MemberRegistry interface {
	AddOwner(ctx context.Context, projectID, userID string) error
	RequireMember(ctx context.Context, projectID, userID string) error
}

// TxRunner runs fn atomically. Both storage backends provide one.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProjectService handles project-related business logic
type ProjectService struct {
	repo    repository.Repository
	members MemberRegistry
	tx      TxRunner
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.Repository, members MemberRegistry, tx TxRunner) *ProjectService {
	return &ProjectService{
		repo:    repo,
		members: members,
		tx:      tx,
	}
}

// Create stores a new project and records actorID as its owner in one transaction.
func (s *ProjectService) Create(ctx context.Context, actorID string, req domain.CreateProjectRequest) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	p := &domain.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatorID:   actorID,
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, p); err != nil {
			return err
		}
		return s.members.AddOwner(ctx, p.ID, actorID)
	})
	if err != nil {
		return nil, err
	}

	logging.NewLogger(ctx).Infof("projects.create", "project_id=%s creator_id=%s", p.ID, actorID)
	return p, nil
}

// ListForUser returns all projects the actor belongs to, oldest first.
func (s *ProjectService) ListForUser(ctx context.Context, actorID string) ([]domain.Project, error) {
	return s.repo.ListForUser(ctx, actorID)
}

// Get returns a project the actor is a member of.
func (s *ProjectService) Get(ctx context.Context, actorID, projectID string) (*domain.Project, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return nil, domain.ErrProjectNotFound
	}
	p, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.members.RequireMember(ctx, projectID, actorID); err != nil {
		return nil, err
	}
	return p, nil
}

// Exists reports whether a project with this id exists.
func (s *ProjectService) Exists(ctx context.Context, projectID string) (bool, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return false, nil
	}
	return s.repo.Exists(ctx, projectID)
}
