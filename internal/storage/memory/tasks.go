package memory

import (
	"context"
	"sort"

	projectsdomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/domain"
)

type TaskRepository struct {
	s *Store
}

// resolve returns a copy of the row's task with the assignee name filled in.
// The caller holds row.mu or the aggregate write lock.
func (r *TaskRepository) resolve(row *taskRow) *domain.Task {
	t := row.task
	t.Assignee = nil
	if row.assigneeID != "" {
		u, _ := r.s.user(row.assigneeID)
		t.Assignee = &domain.Assignee{ID: row.assigneeID, Name: u.Name}
	}
	return &t
}

// Create inserts the task under the aggregate write lock, so the assignee
// membership check cannot race with a membership change.
func (r *TaskRepository) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	agg, ok := r.s.aggregate(task.ProjectID)
	if !ok {
		return nil, projectsdomain.ErrProjectNotFound
	}

	agg.mu.Lock()
	defer agg.mu.Unlock()

	row := &taskRow{task: *task, seq: r.s.nextSeq()}
	if id := task.AssigneeID(); id != nil {
		if _, member := agg.memberSet[*id]; !member {
			return nil, domain.ErrInvalidAssignee
		}
		row.assigneeID = *id
	}
	row.task.CreatedAt = r.s.timestamp()
	agg.tasks[task.ID] = row

	r.s.mu.Lock()
	r.s.taskIndex[task.ID] = task.ProjectID
	r.s.mu.Unlock()

	return r.resolve(row), nil
}

// lookup finds the task's aggregate through the index.
func (r *TaskRepository) lookup(id string) (*projectAggregate, bool) {
	r.s.mu.RLock()
	projectID, ok := r.s.taskIndex[id]
	r.s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return r.s.aggregate(projectID)
}

func (r *TaskRepository) GetByID(_ context.Context, id string) (*domain.Task, error) {
	agg, ok := r.lookup(id)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}

	agg.mu.RLock()
	defer agg.mu.RUnlock()
	row, ok := agg.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	row.mu.Lock()
	defer row.mu.Unlock()
	return r.resolve(row), nil
}

// ListByProject returns tasks in creation order.
func (r *TaskRepository) ListByProject(_ context.Context, projectID string) ([]domain.Task, error) {
	agg, ok := r.s.aggregate(projectID)
	if !ok {
		return nil, projectsdomain.ErrProjectNotFound
	}

	agg.mu.RLock()
	rows := make([]*taskRow, 0, len(agg.tasks))
	for _, row := range agg.tasks {
		rows = append(rows, row)
	}
	out := make([]domain.Task, 0, len(rows))
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })
	for _, row := range rows {
		row.mu.Lock()
		out = append(out, *r.resolve(row))
		row.mu.Unlock()
	}
	agg.mu.RUnlock()

	return out, nil
}

// UpdateStatus locks only the task row. Concurrent writers race and the last one wins.
func (r *TaskRepository) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.Task, error) {
	agg, ok := r.lookup(id)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}

	agg.mu.RLock()
	defer agg.mu.RUnlock()
	row, ok := agg.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}

	row.mu.Lock()
	defer row.mu.Unlock()
	row.task.Status = status
	return r.resolve(row), nil
}

// UpdateAssignee holds the aggregate read lock, which excludes membership
// changes, while it checks the assignee and writes the row.
func (r *TaskRepository) UpdateAssignee(_ context.Context, id string, assigneeID *string) (*domain.Task, error) {
	agg, ok := r.lookup(id)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}

	agg.mu.RLock()
	defer agg.mu.RUnlock()
	row, ok := agg.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if assigneeID != nil {
		if _, member := agg.memberSet[*assigneeID]; !member {
			return nil, domain.ErrInvalidAssignee
		}
	}

	row.mu.Lock()
	defer row.mu.Unlock()
	row.assigneeID = ""
	if assigneeID != nil {
		row.assigneeID = *assigneeID
	}
	return r.resolve(row), nil
}

func (r *TaskRepository) Delete(_ context.Context, id string) error {
	agg, ok := r.lookup(id)
	if !ok {
		return domain.ErrTaskNotFound
	}

	agg.mu.Lock()
	defer agg.mu.Unlock()
	if _, ok := agg.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(agg.tasks, id)

	r.s.mu.Lock()
	delete(r.s.taskIndex, id)
	r.s.mu.Unlock()
	return nil
}
