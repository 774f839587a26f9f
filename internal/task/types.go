package task

import (
	"time"

	"campus-task-assistant/internal/model"
	"campus-task-assistant/pkg/datemath"
)

// ParseInput is the input for extracting a structured task from free text.
type ParseInput struct {
	Input       string   // Free-text task description
	MemberNames []string // Roster of known member display names
	Timezone    string   // IANA timezone of the caller; empty uses the service default
}

// ParsedTask holds the fields the language model extracted. DueDate is the
// natural-language phrase, not a resolved date.
type ParsedTask struct {
	Title         string   `json:"title"`
	AssigneeNames []string `json:"assignee_names,omitempty"`
	DueDate       string   `json:"due_date,omitempty"`
	Priority      string   `json:"priority,omitempty"`
	Subtasks      []string `json:"subtasks,omitempty"`
	Description   string   `json:"description,omitempty"`
}

// AssigneeMatch binds a requested name to a known member.
// MatchedName is empty when no member matched.
type AssigneeMatch struct {
	RequestedName string              `json:"requested_name"`
	MatchedName   string              `json:"matched_name,omitempty"`
	Confidence    datemath.Confidence `json:"confidence"`
}

// ParseOutput is the result of Parse.
type ParseOutput struct {
	Parsed          ParsedTask
	AssigneeMatches []AssigneeMatch
	OriginalInput   string
}

// ResolveDueDateInput is the input for resolving a due-date phrase.
type ResolveDueDateInput struct {
	Phrase   string
	Timezone string
}

// ResolveDueDateOutput is a resolved deadline.
type ResolveDueDateOutput struct {
	Date          time.Time
	Confidence    datemath.Confidence
	OriginalInput string
	Display       string // "Today", "Tomorrow", weekday name or "Jan 2"
	ISODate       string // YYYY-MM-DD in the caller's timezone
}

// Member is an organization member the task can be assigned to.
type Member struct {
	ID   string
	Name string
}

// CreateInput is the input for creating a task from free text.
type CreateInput struct {
	OrganizationID string
	Input          string
	Members        []Member
	Timezone       string
}

// CreateOutput is the result of Create.
type CreateOutput struct {
	Task            model.Task
	Parsed          ParseOutput
	DueDateResolved bool
	DueDate         *ResolveDueDateOutput // nil when DueDateResolved is false
}

// ListInput filters and paginates tasks of one organization.
type ListInput struct {
	OrganizationID string
	Limit          int
	Offset         int
}

// ListOutput is the result of List.
type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}
