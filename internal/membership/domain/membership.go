package domain

import (
	"time"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/apperr"
)

// Role records how a user joined a project. It grants nothing beyond membership.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

// Membership links a user to a project. A user appears at most once per project.
type Membership struct {
	ProjectID string
	UserID    string
	Role      Role
	CreatedAt time.Time
}

// Member is a membership joined with the member's public profile.
type Member struct {
	UserID   string    `json:"uid"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

var (
	ErrAlreadyMember   = apperr.New(apperr.AlreadyMember, "user is already a member of this project")
	ErrNotMember       = apperr.New(apperr.Forbidden, "you are not a member of this project")
	ErrInviteeNotFound = apperr.New(apperr.NotFound, "user with this email not found")
	ErrEmailRequired   = apperr.New(apperr.InvalidInput, "email is required")
)
