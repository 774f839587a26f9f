package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"campus-task-assistant/internal/model"
	"campus-task-assistant/internal/task"
	"campus-task-assistant/pkg/datemath"
)

type fakeUseCase struct {
	task.UseCase
	in task.ParseInput
}

func (f *fakeUseCase) Parse(ctx context.Context, sc model.Scope, in task.ParseInput) (task.ParseOutput, error) {
	f.in = in
	return task.ParseOutput{
		Parsed:          task.ParsedTask{Title: "Finish the slides", AssigneeNames: []string{"Sarah"}, DueDate: "next Friday", Priority: "urgent"},
		AssigneeMatches: task.MatchAssignees([]string{"Sarah"}, in.MemberNames),
		OriginalInput:   in.Input,
	}, nil
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	tzFlag, memberFlags = "", nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDateCommand(t *testing.T) {
	now = func() time.Time { return time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	out, err := execute(t, "date", "--tz", "UTC", "in", "2", "weeks")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	var got dateOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.ISODate != "2026-10-28" || got.Confidence != string(datemath.ConfidenceHigh) {
		t.Errorf("unexpected output: %+v", got)
	}
}

func TestDateCommand_NoMatch(t *testing.T) {
	if _, err := execute(t, "date", "--tz", "UTC", "whenever"); err == nil {
		t.Error("expected error for unrecognized phrase")
	}
}

func TestTaskCommand(t *testing.T) {
	fake := &fakeUseCase{}
	newParser = func(ctx context.Context) (task.UseCase, error) { return fake, nil }
	t.Cleanup(func() { newParser = defaultParser })

	out, err := execute(t, "task", "-m", "Sarah Johnson", "-m", "Mike Lee", "Ask Sarah to finish the slides by next Friday")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if len(fake.in.MemberNames) != 2 {
		t.Errorf("members = %v", fake.in.MemberNames)
	}

	var got struct {
		Title           string `json:"title"`
		DueDate         string `json:"due_date"`
		AssigneeMatches []struct {
			MatchedName string `json:"matched_name"`
		} `json:"assignee_matches"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Title != "Finish the slides" || got.DueDate != "next Friday" {
		t.Errorf("unexpected output: %+v", got)
	}
	if len(got.AssigneeMatches) != 1 || got.AssigneeMatches[0].MatchedName != "Sarah Johnson" {
		t.Errorf("assignee_matches = %+v", got.AssigneeMatches)
	}
}
