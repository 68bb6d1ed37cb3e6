package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/storage/postgres"
)

// PostgresRepository provides persistence operations for users
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) error {
	const q = `
INSERT INTO users (id, name, email, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING created_at;
`
	err := postgres.Conn(ctx, r.db).QueryRowContext(ctx, q, u.ID, u.Name, u.Email, u.PasswordHash).
		Scan(&u.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
SELECT id, name, email, password_hash, created_at
FROM users
WHERE id = $1;
`
	return r.getOne(ctx, q, id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id, name, email, password_hash, created_at
FROM users
WHERE email = $1;
`
	return r.getOne(ctx, q, email)
}

func (r *PostgresRepository) getOne(ctx context.Context, q string, arg string) (*domain.User, error) {
	var u domain.User
	err := postgres.Conn(ctx, r.db).QueryRowContext(ctx, q, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
