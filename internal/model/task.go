package model

import "time"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is a task stored for an organization.
type Task struct {
	ID             string
	OrganizationID string
	Title          string
	Description    string
	Priority       Priority
	DueDate        *time.Time // nil when no deadline could be resolved
	DueDatePhrase  string     // phrase the deadline was resolved from
	Subtasks       []Subtask
	Assignees      []Assignee
	CalendarLink   string
	CreatedBy      string
	CreatedAt      time.Time
}

// Subtask is an ordered checklist item of a task.
type Subtask struct {
	ID       string
	Title    string
	Position int
}

// Assignee links a task to an organization member.
type Assignee struct {
	MemberID string
	Name     string
}
