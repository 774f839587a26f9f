package repository

import (
	"context"

	"campus-task-assistant/internal/model"
)

// Repository is the persistence interface for tasks.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetTask returns the zero Task when id does not exist.
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateCalendarLink(ctx context.Context, id, link string) error
}
