package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/storage/postgres"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/tasks/domain"
)

// taskColumns selects a task row aliased t joined with its assignee u.
const taskColumns = `t.id, t.project_id, t.title, t.description, t.status, t.priority, t.assignee_id, u.name, t.created_at`

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a task repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t            domain.Task
		assigneeID   sql.NullString
		assigneeName sql.NullString
	)
	err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&assigneeID, &assigneeName, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if assigneeID.Valid {
		t.Assignee = &domain.Assignee{ID: assigneeID.String, Name: assigneeName.String}
	}
	return &t, nil
}

// Create inserts the task only if its assignee is unset or a member of the project.
func (r *PostgresRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	const q = `
WITH t AS (
    INSERT INTO tasks (id, project_id, title, description, status, priority, assignee_id)
    SELECT $1::uuid, $2::uuid, $3, $4, $5, $6, $7::uuid
    WHERE $7::uuid IS NULL OR EXISTS (
        SELECT 1 FROM project_members WHERE project_id = $2::uuid AND user_id = $7::uuid
    )
    RETURNING *
)
SELECT ` + taskColumns + `
FROM t
LEFT JOIN users u ON u.id = t.assignee_id;
`
	row := postgres.Conn(ctx, r.db).QueryRowContext(ctx, q,
		task.ID, task.ProjectID, task.Title, task.Description,
		string(task.Status), string(task.Priority), task.AssigneeID())

	out, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvalidAssignee
		}
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	const q = `
SELECT ` + taskColumns + `
FROM tasks t
LEFT JOIN users u ON u.id = t.assignee_id
WHERE t.id = $1;
`
	out, err := scanTask(postgres.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return out, nil
}

func (r *PostgresRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	const q = `
SELECT ` + taskColumns + `
FROM tasks t
LEFT JOIN users u ON u.id = t.assignee_id
WHERE t.project_id = $1
ORDER BY t.created_at ASC, t.seq ASC;
`
	rows, err := postgres.Conn(ctx, r.db).QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Task, 0, 32)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus overwrites the status of one row. Concurrent writers race and the last one wins.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error) {
	const q = `
WITH t AS (
    UPDATE tasks SET status = $2 WHERE id = $1
    RETURNING *
)
SELECT ` + taskColumns + `
FROM t
LEFT JOIN users u ON u.id = t.assignee_id;
`
	out, err := scanTask(postgres.Conn(ctx, r.db).QueryRowContext(ctx, q, id, string(status)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return out, nil
}

// UpdateAssignee sets the assignee only if it is nil or a member of the task's project.
func (r *PostgresRepository) UpdateAssignee(ctx context.Context, id string, assigneeID *string) (*domain.Task, error) {
	const q = `
WITH t AS (
    UPDATE tasks SET assignee_id = $2::uuid
    WHERE id = $1 AND ($2::uuid IS NULL OR EXISTS (
        SELECT 1 FROM project_members m WHERE m.project_id = tasks.project_id AND m.user_id = $2::uuid
    ))
    RETURNING *
)
SELECT ` + taskColumns + `
FROM t
LEFT JOIN users u ON u.id = t.assignee_id;
`
	conn := postgres.Conn(ctx, r.db)
	out, err := scanTask(conn.QueryRowContext(ctx, q, id, assigneeID))
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// No row updated: either the task is gone or the guard rejected the assignee.
	var exists bool
	if err := conn.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1);`, id).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTaskNotFound
	}
	return nil, domain.ErrInvalidAssignee
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := postgres.Conn(ctx, r.db).ExecContext(ctx, `DELETE FROM tasks WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
