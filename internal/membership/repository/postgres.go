package repository

import (
	"context"
	"database/sql"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/storage/postgres"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a membership repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, m *domain.Membership) error {
	const q = `
INSERT INTO project_members (project_id, user_id, role)
VALUES ($1, $2, $3)
RETURNING created_at;
`
	err := postgres.Conn(ctx, r.db).QueryRowContext(ctx, q, m.ProjectID, m.UserID, string(m.Role)).
		Scan(&m.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return domain.ErrAlreadyMember
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	const q = `
SELECT EXISTS (
    SELECT 1 FROM project_members WHERE project_id = $1 AND user_id = $2
);
`
	var ok bool
	if err := postgres.Conn(ctx, r.db).QueryRowContext(ctx, q, projectID, userID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *PostgresRepository) ListMembers(ctx context.Context, projectID string) ([]domain.Member, error) {
	const q = `
SELECT u.id, u.name, u.email, m.role, m.created_at
FROM project_members m
JOIN users u ON u.id = m.user_id
WHERE m.project_id = $1
ORDER BY (m.role = 'owner') DESC, m.seq ASC;
`
	rows, err := postgres.Conn(ctx, r.db).QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Member, 0, 8)
	for rows.Next() {
		var m domain.Member
		var role string
		if err := rows.Scan(&m.UserID, &m.Name, &m.Email, &role, &m.JoinedAt); err != nil {
			return nil, err
		}
		m.Role = domain.Role(role)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
