package task

import (
	"context"

	"campus-task-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse extracts a structured task from free text. The due date is
	// returned as a phrase and is never resolved here.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)

	// ResolveDueDate turns a due-date phrase into a deadline in the caller's timezone.
	ResolveDueDate(ctx context.Context, input ResolveDueDateInput) (ResolveDueDateOutput, error)

	// Create parses free text, resolves its deadline and assignees, and stores the task.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	// List returns the tasks of an organization, newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns one task by ID.
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
}
