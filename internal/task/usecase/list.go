package usecase

import (
	"context"
	"fmt"
	"strings"

	"campus-task-assistant/internal/model"
	"campus-task-assistant/internal/task"
	"campus-task-assistant/internal/task/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if strings.TrimSpace(input.OrganizationID) == "" {
		return task.ListOutput{}, task.ErrEmptyOrganization
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OrganizationID: input.OrganizationID,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: repo.ListTasks: %v", err)
		return task.ListOutput{}, fmt.Errorf("task.usecase.List: %w", err)
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
