package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campus-task-assistant/internal/model"
	"campus-task-assistant/internal/task"
	"campus-task-assistant/pkg/llmprovider"
)

// allow consults the rate limiter. A failing store lets the request through.
func (uc *implUseCase) allow(ctx context.Context, sc model.Scope) error {
	if uc.limiter == nil {
		return nil
	}
	ok, err := uc.limiter.Allow(ctx, sc.CallerKey())
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.allow: limiter.Allow: %v", err)
		return nil
	}
	if !ok {
		uc.l.Warnf(ctx, "task.usecase.allow: rate limit exceeded for %s", sc.CallerKey())
		return task.ErrRateLimited
	}
	return nil
}

// location resolves an IANA timezone, falling back to the service default.
func (uc *implUseCase) location(ctx context.Context, tz string) (string, *time.Location) {
	tz = strings.TrimSpace(tz)
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return tz, loc
		}
		uc.l.Warnf(ctx, "task.usecase.location: unknown timezone %q, using %s", tz, uc.timezone)
	}
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		return "UTC", time.UTC
	}
	return uc.timezone, loc
}

// classifyLLMError maps provider failures onto domain errors. The provider
// error stays in the chain.
func (uc *implUseCase) classifyLLMError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, llmprovider.ErrProviderRateLimited):
		uc.l.Warnf(ctx, "%s: upstream rate limited: %v", op, err)
		return fmt.Errorf("%w: %w", task.ErrUpstreamRateLimited, err)
	case errors.Is(err, llmprovider.ErrProviderAuth):
		uc.l.Errorf(ctx, "%s: upstream auth failed: %v", op, err)
		return fmt.Errorf("%w: %w", task.ErrUpstreamAuth, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		uc.l.Errorf(ctx, "%s: llm.GenerateContent: %v", op, err)
		return fmt.Errorf("%s: %w", op, err)
	}
}
