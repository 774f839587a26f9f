package usecase

import (
	"context"
	"fmt"

	"campus-task-assistant/internal/model"
	"campus-task-assistant/internal/task"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Detail: repo.GetTask: %v", err)
		return model.Task{}, fmt.Errorf("task.usecase.Detail: %w", err)
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
