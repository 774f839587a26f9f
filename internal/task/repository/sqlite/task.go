package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campus-task-assistant/internal/model"
	"campus-task-assistant/internal/task/repository"
)

const taskColumns = `id, organization_id, title, description, priority, due_date,
	due_date_phrase, calendar_link, created_by, created_at`

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	createdAt := opt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	t := model.Task{
		ID:             uuid.NewString(),
		OrganizationID: opt.OrganizationID,
		Title:          opt.Title,
		Description:    opt.Description,
		Priority:       opt.Priority,
		DueDate:        opt.DueDate,
		DueDatePhrase:  opt.DueDatePhrase,
		CreatedBy:      opt.CreatedBy,
		CreatedAt:      createdAt.UTC(),
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.CreateTask: begin: %v", err)
		return model.Task{}, fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.OrganizationID, t.Title, t.Description, string(t.Priority), formatDueDate(t.DueDate),
		t.DueDatePhrase, t.CalendarLink, t.CreatedBy, t.CreatedAt.Format(createdAtLayout),
	)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.CreateTask: insert task: %v", err)
		return model.Task{}, fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
	}

	for i, title := range opt.Subtasks {
		st := model.Subtask{ID: uuid.NewString(), Title: title, Position: i}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO task_subtasks (id, task_id, title, position) VALUES (?, ?, ?, ?)`,
			st.ID, t.ID, st.Title, st.Position,
		); err != nil {
			r.l.Errorf(ctx, "task.repository.sqlite.CreateTask: insert subtask: %v", err)
			return model.Task{}, fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
		}
		t.Subtasks = append(t.Subtasks, st)
	}

	for _, a := range opt.Assignees {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO task_assignees (task_id, member_id, name) VALUES (?, ?, ?)`,
			t.ID, a.MemberID, a.Name,
		); err != nil {
			r.l.Errorf(ctx, "task.repository.sqlite.CreateTask: insert assignee: %v", err)
			return model.Task{}, fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
		}
		t.Assignees = append(t.Assignees, a)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.CreateTask: commit: %v", err)
		return model.Task{}, fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
	}

	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.GetTask: %v", err)
		return model.Task{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}

	if err := r.loadChildren(ctx, &t); err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.GetTask: children: %v", err)
		return model.Task{}, fmt.Errorf("%w: %w", repository.ErrFailedToGet, err)
	}

	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := opt.Offset
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE organization_id = ?`, opt.OrganizationID,
	).Scan(&total); err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.ListTasks: count: %v", err)
		return nil, 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE organization_id = ?
		ORDER BY created_at DESC, id LIMIT ? OFFSET ?`,
		opt.OrganizationID, limit, offset,
	)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.ListTasks: query: %v", err)
		return nil, 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0, limit)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "task.repository.sqlite.ListTasks: scan: %v", err)
			return nil, 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}
	rows.Close()

	for i := range tasks {
		if err := r.loadChildren(ctx, &tasks[i]); err != nil {
			r.l.Errorf(ctx, "task.repository.sqlite.ListTasks: children: %v", err)
			return nil, 0, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
		}
	}

	return tasks, total, nil
}

func (r *implRepository) UpdateCalendarLink(ctx context.Context, id, link string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET calendar_link = ? WHERE id = ?`, link, id,
	); err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.UpdateCalendarLink: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}
	return nil
}

func (r *implRepository) loadChildren(ctx context.Context, t *model.Task) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, position FROM task_subtasks WHERE task_id = ? ORDER BY position`, t.ID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var st model.Subtask
		if err := rows.Scan(&st.ID, &st.Title, &st.Position); err != nil {
			rows.Close()
			return err
		}
		t.Subtasks = append(t.Subtasks, st)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.db.QueryContext(ctx,
		`SELECT member_id, name FROM task_assignees WHERE task_id = ? ORDER BY name`, t.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var a model.Assignee
		if err := rows.Scan(&a.MemberID, &a.Name); err != nil {
			return err
		}
		t.Assignees = append(t.Assignees, a)
	}
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t         model.Task
		priority  string
		dueDate   sql.NullString
		createdAt string
	)
	if err := s.Scan(&t.ID, &t.OrganizationID, &t.Title, &t.Description, &priority, &dueDate,
		&t.DueDatePhrase, &t.CalendarLink, &t.CreatedBy, &createdAt); err != nil {
		return model.Task{}, err
	}

	t.Priority = model.Priority(priority)

	ts, err := time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	t.CreatedAt = ts

	if dueDate.Valid && dueDate.String != "" {
		d, err := time.Parse(time.RFC3339, dueDate.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("parse due_date: %w", err)
		}
		t.DueDate = &d
	}

	return t, nil
}

func formatDueDate(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format(time.RFC3339)
}
