package usecase

import (
	"context"
	"fmt"
	"strings"

	"campus-task-assistant/internal/model"
	"campus-task-assistant/internal/task"
	"campus-task-assistant/pkg/llmprovider"
)

// Parse extracts a structured task from free text with one forced function call.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input task.ParseInput) (task.ParseOutput, error) {
	text := strings.TrimSpace(input.Input)
	if text == "" {
		return task.ParseOutput{}, task.ErrEmptyInput
	}

	if err := uc.allow(ctx, sc); err != nil {
		return task.ParseOutput{}, err
	}

	tzLabel, loc := uc.location(ctx, input.Timezone)
	members := compact(input.MemberNames)

	system := llmprovider.TextMessage("system", buildSystemPrompt(uc.now().In(loc), tzLabel, members))
	req := &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          []llmprovider.Message{llmprovider.TextMessage("user", text)},
		Tools:             []llmprovider.Tool{parseTaskToolSpec()},
		ToolChoice:        parseTaskTool,
		Temperature:       uc.temperature,
		MaxTokens:         uc.maxTokens,
	}

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		return task.ParseOutput{}, uc.classifyLLMError(ctx, "task.usecase.Parse", err)
	}

	fc, ok := resp.FirstFunctionCall()
	if !ok || fc.Name != parseTaskTool {
		uc.l.Warnf(ctx, "task.usecase.Parse: no %s call in response", parseTaskTool)
		return task.ParseOutput{}, fmt.Errorf("%w: no %s call", task.ErrParseFailed, parseTaskTool)
	}

	parsed, err := decodeTaskArgs(fc.Args, text)
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Parse: decodeTaskArgs: %v", err)
		return task.ParseOutput{}, err
	}

	return task.ParseOutput{
		Parsed:          parsed,
		AssigneeMatches: task.MatchAssignees(parsed.AssigneeNames, members),
		OriginalInput:   text,
	}, nil
}
