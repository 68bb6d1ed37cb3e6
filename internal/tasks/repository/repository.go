package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/domain"
)

// Repository defines persistence for tasks. Every method that returns a task
// returns it with the assignee summary resolved.
type Repository interface {
	// Create stores t unless its assignee is not a member of t.ProjectID, in
	// which case it returns domain.ErrInvalidAssignee. The membership check and
	// the insert are one atomic step.
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// ListByProject returns the project's tasks in creation order.
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error)
	// UpdateAssignee sets or clears the assignee with the same atomic
	// membership guard as Create.
	UpdateAssignee(ctx context.Context, id string, assigneeID *string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
