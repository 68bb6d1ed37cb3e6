package http

import (
	"context"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/domain"
)

// Tasks is the task lifecycle engine used by the handlers.
type Tasks interface {
	Create(ctx context.Context, actorID string, req domain.CreateTaskRequest) (*domain.Task, error)
	List(ctx context.Context, actorID, projectID string) ([]domain.Task, error)
	Get(ctx context.Context, actorID, taskID string) (*domain.Task, error)
	UpdateStatus(ctx context.Context, actorID, taskID string, status domain.Status) (*domain.Task, error)
	UpdateAssignee(ctx context.Context, actorID, taskID string, assigneeID *string) (*domain.Task, error)
	Delete(ctx context.Context, actorID, taskID string) error
}

// Handler bundles the dependencies for task HTTP endpoints.
type Handler struct {
	tasks Tasks
}

func New(tasks Tasks) *Handler {
	return &Handler{tasks: tasks}
}

type createReq struct {
	ProjectUID  string  `json:"project_uid"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	AssigneeUID *string `json:"assignee_uid"`
}

type updateStatusReq struct {
	TaskUID string `json:"task_uid"`
	Status  string `json:"status"`
}

// assignReq treats a missing assignee_uid the same as null.
type assignReq struct {
	TaskUID     string  `json:"task_uid"`
	AssigneeUID *string `json:"assignee_uid"`
}

type taskRef struct {
	TaskUID string `json:"task_uid"`
}
