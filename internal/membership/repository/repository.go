package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/membership/domain"
)

// Repository defines persistence for project memberships.
type Repository interface {
	// Add stores m and fills CreatedAt. Returns domain.ErrAlreadyMember if the row exists.
	Add(ctx context.Context, m *domain.Membership) error
	IsMember(ctx context.Context, projectID, userID string) (bool, error)
	// ListMembers returns members in join order, owner first.
	ListMembers(ctx context.Context, projectID string) ([]domain.Member, error)
}
