package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
)

// Repository defines persistence for projects.
type Repository interface {
	// Create stores p and fills CreatedAt.
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Exists(ctx context.Context, id string) (bool, error)
	// ListForUser returns projects the user is a member of, oldest first.
	ListForUser(ctx context.Context, userID string) ([]domain.Project, error)
}
