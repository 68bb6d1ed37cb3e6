package domain

import (
	"time"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/apperr"
)

// Project is a container of tasks visible only to its members.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID          string    `json:"uid"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatorID   string    `json:"creator_uid"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectRequest represents data needed to create a new project
type CreateProjectRequest struct {
	Name        string
	Description string
}

var (
	ErrProjectNotFound = apperr.New(apperr.NotFound, "project not found")
	ErrNameRequired    = apperr.New(apperr.InvalidInput, "project name is required")
)
