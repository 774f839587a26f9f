package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campus-task-assistant/internal/model"
	"campus-task-assistant/internal/task"
	"campus-task-assistant/internal/task/repository"
	"campus-task-assistant/pkg/gcalendar"
)

// Create parses free text, resolves the deadline and assignees, stores the
// task and, when a calendar is configured, adds a deadline event.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	if strings.TrimSpace(input.OrganizationID) == "" {
		return task.CreateOutput{}, task.ErrEmptyOrganization
	}

	names := make([]string, 0, len(input.Members))
	for _, m := range input.Members {
		names = append(names, m.Name)
	}

	parsed, err := uc.Parse(ctx, sc, task.ParseInput{
		Input:       input.Input,
		MemberNames: names,
		Timezone:    input.Timezone,
	})
	if err != nil {
		return task.CreateOutput{}, err
	}

	out := task.CreateOutput{Parsed: parsed}

	opt := repository.CreateTaskOptions{
		OrganizationID: input.OrganizationID,
		Title:          parsed.Parsed.Title,
		Description:    parsed.Parsed.Description,
		Priority:       model.Priority(parsed.Parsed.Priority),
		DueDatePhrase:  parsed.Parsed.DueDate,
		Subtasks:       parsed.Parsed.Subtasks,
		Assignees:      assigneesFor(parsed.AssigneeMatches, input.Members),
		CreatedBy:      sc.CallerKey(),
	}

	if phrase := parsed.Parsed.DueDate; phrase != "" {
		resolved, err := uc.ResolveDueDate(ctx, task.ResolveDueDateInput{Phrase: phrase, Timezone: input.Timezone})
		switch {
		case err == nil:
			out.DueDateResolved = true
			out.DueDate = &resolved
			opt.DueDate = &resolved.Date
		case errors.Is(err, task.ErrDateNotRecognized):
			uc.l.Infof(ctx, "task.usecase.Create: due date %q not recognized, leaving unset", phrase)
		default:
			return task.CreateOutput{}, err
		}
	}

	t, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: repo.CreateTask: %v", err)
		return task.CreateOutput{}, fmt.Errorf("task.usecase.Create: %w", err)
	}

	if out.DueDateResolved {
		t.CalendarLink = uc.addDeadlineEvent(ctx, t, input.Timezone)
	}

	out.Task = t
	return out, nil
}

// assigneesFor maps matched names to member IDs, once per member.
func assigneesFor(matches []task.AssigneeMatch, members []task.Member) []model.Assignee {
	var out []model.Assignee
	seen := make(map[string]bool)
	for _, m := range matches {
		if m.MatchedName == "" {
			continue
		}
		for _, member := range members {
			if member.Name != m.MatchedName || member.ID == "" || seen[member.ID] {
				continue
			}
			seen[member.ID] = true
			out = append(out, model.Assignee{MemberID: member.ID, Name: member.Name})
			break
		}
	}
	return out
}

// addDeadlineEvent is best effort; failures are logged and yield "".
func (uc *implUseCase) addDeadlineEvent(ctx context.Context, t model.Task, tz string) string {
	if uc.calendar == nil || t.DueDate == nil {
		return ""
	}

	tzName, _ := uc.location(ctx, tz)
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     "Due: " + t.Title,
		Description: t.Description,
		StartTime:   *t.DueDate,
		EndTime:     t.DueDate.Add(deadlineEventSpan),
		Timezone:    tzName,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Create: calendar.CreateEvent: %v", err)
		return ""
	}

	if err := uc.repo.UpdateCalendarLink(ctx, t.ID, event.HTMLLink); err != nil {
		uc.l.Warnf(ctx, "task.usecase.Create: repo.UpdateCalendarLink: %v", err)
	}
	return event.HTMLLink
}
