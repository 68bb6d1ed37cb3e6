package domain

import (
	"strings"
	"time"
)

// Status is where a task sits on the board. Any status may move to any other.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Statuses lists every status in board order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// NormalizeStatus maps client input onto the Status type without validating it.
func NormalizeStatus(s string) Status {
	return Status(strings.ToUpper(strings.TrimSpace(s)))
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// NormalizePriority maps client input onto the Priority type without
// validating it. Empty input means MEDIUM.
func NormalizePriority(s string) Priority {
	s = strings.TrimSpace(s)
	if s == "" {
		return PriorityMedium
	}
	return Priority(strings.ToUpper(s))
}

// Assignee is the summary of the assigned user embedded in every task.
type Assignee struct {
	ID   string `json:"uid"`
	Name string `json:"name"`
}

type Task struct {
	ID          string    `json:"uid"`
	ProjectID   string    `json:"project_uid"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	Assignee    *Assignee `json:"assignee"`
	CreatedAt   time.Time `json:"created_at"`
}

// AssigneeID returns the assignee's id, or nil when unassigned.
func (t *Task) AssigneeID() *string {
	if t.Assignee == nil {
		return nil
	}
	id := t.Assignee.ID
	return &id
}

// CreateTaskRequest carries already-parsed task fields.
type CreateTaskRequest struct {
	ProjectID   string
	Title       string
	Description string
	Priority    Priority
	AssigneeID  *string
}
