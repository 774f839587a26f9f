package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"campus-task-assistant/internal/task"
)

var validate = validator.New()

// taskArgs mirrors the parse_task schema. Pointers tell absent from empty.
type taskArgs struct {
	Title         *string  `json:"title"`
	AssigneeNames []string `json:"assignee_names"`
	DueDate       *string  `json:"due_date"`
	Priority      string   `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Subtasks      []string `json:"subtasks"`
	Description   *string  `json:"description"`
}

// decodeTaskArgs validates untrusted function-call arguments. Any field the
// schema does not declare, any wrong type, or a priority outside the enum
// fails with task.ErrParseFailed. A missing or blank title becomes rawInput.
func decodeTaskArgs(args map[string]interface{}, rawInput string) (task.ParsedTask, error) {
	if args == nil {
		return task.ParsedTask{}, fmt.Errorf("%w: no function call arguments", task.ErrParseFailed)
	}

	data, err := json.Marshal(args)
	if err != nil {
		return task.ParsedTask{}, fmt.Errorf("%w: %w", task.ErrParseFailed, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var a taskArgs
	if err := dec.Decode(&a); err != nil {
		return task.ParsedTask{}, fmt.Errorf("%w: %w", task.ErrParseFailed, err)
	}
	if err := validate.Struct(a); err != nil {
		return task.ParsedTask{}, fmt.Errorf("%w: %w", task.ErrParseFailed, err)
	}

	parsed := task.ParsedTask{
		Title:         strings.TrimSpace(deref(a.Title)),
		AssigneeNames: compact(a.AssigneeNames),
		DueDate:       strings.TrimSpace(deref(a.DueDate)),
		Priority:      a.Priority,
		Subtasks:      compact(a.Subtasks),
		Description:   strings.TrimSpace(deref(a.Description)),
	}
	if parsed.Title == "" {
		parsed.Title = rawInput
	}
	return parsed, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// compact trims entries and drops blanks; nil when nothing remains.
func compact(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
