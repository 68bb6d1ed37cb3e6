package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/storage/postgres"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project. Joins the caller's transaction when there is one.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	const q = `
INSERT INTO projects (id, name, description, creator_id)
VALUES ($1, $2, $3, $4)
RETURNING created_at;
`
	return postgres.Conn(ctx, r.db).QueryRowContext(ctx, q, p.ID, p.Name, p.Description, p.CreatorID).
		Scan(&p.CreatedAt)
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const q = `
SELECT id, name, description, creator_id, created_at
FROM projects
WHERE id = $1;
`
	var p domain.Project
	err := postgres.Conn(ctx, r.db).QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.CreatorID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Exists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1);`
	var ok bool
	if err := postgres.Conn(ctx, r.db).QueryRowContext(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// ListForUser returns all projects the user is a member of.
func (r *ProjectRepository) ListForUser(ctx context.Context, userID string) ([]domain.Project, error) {
	const q = `
SELECT p.id, p.name, p.description, p.creator_id, p.created_at
FROM projects p
JOIN project_members m ON m.project_id = p.id
WHERE m.user_id = $1
ORDER BY p.created_at ASC, p.seq ASC;
`
	rows, err := postgres.Conn(ctx, r.db).QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatorID, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
