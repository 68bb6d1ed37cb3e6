package http

import (
	"context"

	membershipdomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
)

// Projects is the project registry used by the handlers.
type Projects interface {
	Create(ctx context.Context, actorID string, req domain.CreateProjectRequest) (*domain.Project, error)
	ListForUser(ctx context.Context, actorID string) ([]domain.Project, error)
	Get(ctx context.Context, actorID, projectID string) (*domain.Project, error)
}

// Members is the membership registry used by the handlers.
type Members interface {
	Invite(ctx context.Context, projectID, inviterID, email string) (*membershipdomain.Member, error)
	ListMembers(ctx context.Context, projectID string) ([]membershipdomain.Member, error)
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	projects Projects
	members  Members
}

func New(projects Projects, members Members) *Handler {
	return &Handler{projects: projects, members: members}
}

type createReq struct {
	UserUID     string `json:"user_uid"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type inviteReq struct {
	ProjectUID string `json:"project_uid"`
	Email      string `json:"email"`
}
