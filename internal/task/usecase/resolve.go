package usecase

import (
	"context"
	"strings"

	"campus-task-assistant/internal/task"
	"campus-task-assistant/pkg/datemath"
)

// ResolveDueDate resolves a deadline phrase in the caller's timezone. A phrase
// no rule understands is reported, never defaulted.
func (uc *implUseCase) ResolveDueDate(ctx context.Context, input task.ResolveDueDateInput) (task.ResolveDueDateOutput, error) {
	phrase := strings.TrimSpace(input.Phrase)
	if phrase == "" {
		return task.ResolveDueDateOutput{}, task.ErrEmptyInput
	}

	tz, _ := uc.location(ctx, input.Timezone)
	parser, err := datemath.NewParser(tz)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ResolveDueDate: datemath.NewParser: %v", err)
		return task.ResolveDueDateOutput{}, err
	}

	now := uc.now()
	pd, ok := parser.Parse(phrase, now)
	if !ok {
		return task.ResolveDueDateOutput{}, task.ErrDateNotRecognized
	}

	return task.ResolveDueDateOutput{
		Date:          pd.Date,
		Confidence:    pd.Confidence,
		OriginalInput: pd.OriginalInput,
		Display:       parser.FormatDueDate(pd.Date, now),
		ISODate:       parser.ToISODateString(pd.Date),
	}, nil
}
