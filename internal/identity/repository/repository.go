package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
)

// Repository defines persistence for users.
type Repository interface {
	// Create stores u and fills CreatedAt. Returns domain.ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail expects a normalized (trimmed, lowercased) email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
