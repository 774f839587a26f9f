package repository

import (
	"time"

	"campus-task-assistant/internal/model"
)

// CreateTaskOptions holds the fields of a new task.
type CreateTaskOptions struct {
	OrganizationID string
	Title          string
	Description    string
	Priority       model.Priority
	DueDate        *time.Time
	DueDatePhrase  string
	Subtasks       []string // titles, in order
	Assignees      []model.Assignee
	CreatedBy      string
	CreatedAt      time.Time // zero means now
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	OrganizationID string
	Limit          int // default 20
	Offset         int
}
