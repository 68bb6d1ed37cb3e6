package domain

import "github.com/GoSim-25-26J-441/taskboard-backend/internal/apperr"

var (
	ErrTaskNotFound    = apperr.New(apperr.NotFound, "task not found")
	ErrTitleRequired   = apperr.New(apperr.InvalidInput, "title is required")
	ErrInvalidStatus   = apperr.New(apperr.InvalidInput, "status must be one of TODO, IN_PROGRESS, DONE")
	ErrInvalidPriority = apperr.New(apperr.InvalidInput, "priority must be one of LOW, MEDIUM, HIGH")
	ErrInvalidAssignee = apperr.New(apperr.InvalidAssignee, "assignee is not a member of this project")
)
