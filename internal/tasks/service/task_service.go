package service

import (
	"context"
	"strings"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/logging"
	projectsdomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/repository"
	"github.com/google/uuid"
)

// ProjectChecker reports whether a project exists.
type ProjectChecker interface {
	Exists(ctx context.Context, projectID string) (bool, error)
}

// MemberChecker is the authorization predicate for project-scoped work.
type MemberChecker interface {
	RequireMember(ctx context.Context, projectID, userID string) error
}

// TaskService is the task lifecycle engine. Every operation takes the acting
// user explicitly and checks existence, then membership, then input.
type TaskService struct {
	repo     repository.Repository
	projects ProjectChecker
	members  MemberChecker
}

func NewTaskService(repo repository.Repository, projects ProjectChecker, members MemberChecker) *TaskService {
	return &TaskService{repo: repo, projects: projects, members: members}
}

// Create adds a TODO task to the project.
func (s *TaskService) Create(ctx context.Context, actorID string, req domain.CreateTaskRequest) (*domain.Task, error) {
	if err := s.authorizeProject(ctx, actorID, req.ProjectID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, domain.ErrTitleRequired
	}
	if !req.Priority.Valid() {
		return nil, domain.ErrInvalidPriority
	}
	assigneeID, err := normalizeAssignee(req.AssigneeID)
	if err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:          uuid.NewString(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.StatusTodo,
		Priority:    req.Priority,
	}
	if assigneeID != nil {
		task.Assignee = &domain.Assignee{ID: *assigneeID}
	}

	out, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	logging.NewLogger(ctx).Infof("tasks.create", "task_id=%s project_id=%s actor_id=%s", out.ID, out.ProjectID, actorID)
	return out, nil
}

// List returns the project's tasks in creation order.
func (s *TaskService) List(ctx context.Context, actorID, projectID string) ([]domain.Task, error) {
	if err := s.authorizeProject(ctx, actorID, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListByProject(ctx, projectID)
}

func (s *TaskService) Get(ctx context.Context, actorID, taskID string) (*domain.Task, error) {
	return s.authorizeTask(ctx, actorID, taskID)
}

// UpdateStatus moves the task to status. Every transition is allowed,
// including to the current status.
func (s *TaskService) UpdateStatus(ctx context.Context, actorID, taskID string, status domain.Status) (*domain.Task, error) {
	if _, err := s.authorizeTask(ctx, actorID, taskID); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	out, err := s.repo.UpdateStatus(ctx, taskID, status)
	if err != nil {
		return nil, err
	}

	logging.NewLogger(ctx).Infof("tasks.update_status", "task_id=%s status=%s actor_id=%s", taskID, status, actorID)
	return out, nil
}

// UpdateAssignee sets or, with a nil id, clears the assignee.
func (s *TaskService) UpdateAssignee(ctx context.Context, actorID, taskID string, assigneeID *string) (*domain.Task, error) {
	if _, err := s.authorizeTask(ctx, actorID, taskID); err != nil {
		return nil, err
	}
	assigneeID, err := normalizeAssignee(assigneeID)
	if err != nil {
		return nil, err
	}

	out, err := s.repo.UpdateAssignee(ctx, taskID, assigneeID)
	if err != nil {
		return nil, err
	}

	logging.NewLogger(ctx).Infof("tasks.update_assignee", "task_id=%s assignee_id=%s actor_id=%s",
		taskID, derefOr(assigneeID, "none"), actorID)
	return out, nil
}

// Delete removes the task permanently. Deleting it again returns ErrTaskNotFound.
func (s *TaskService) Delete(ctx context.Context, actorID, taskID string) error {
	if _, err := s.authorizeTask(ctx, actorID, taskID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, taskID); err != nil {
		return err
	}

	logging.NewLogger(ctx).Infof("tasks.delete", "task_id=%s actor_id=%s", taskID, actorID)
	return nil
}

func (s *TaskService) authorizeProject(ctx context.Context, actorID, projectID string) error {
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
	return s.members.RequireMember(ctx, projectID, actorID)
}

func (s *TaskService) authorizeTask(ctx context.Context, actorID, taskID string) (*domain.Task, error) {
	if !validID(taskID) {
		return nil, domain.ErrTaskNotFound
	}
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.members.RequireMember(ctx, task.ProjectID, actorID); err != nil {
		return nil, err
	}
	return task, nil
}

// normalizeAssignee treats a blank id as unassigned. A malformed id can never
// name a member, so it is rejected the same way as a non-member.
func normalizeAssignee(id *string) (*string, error) {
	if id == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*id)
	if v == "" {
		return nil, nil
	}
	if !validID(v) {
		return nil, domain.ErrInvalidAssignee
	}
	return &v, nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
