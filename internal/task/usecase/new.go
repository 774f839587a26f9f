package usecase

import (
	"context"
	"time"

	"campus-task-assistant/internal/ratelimit"
	"campus-task-assistant/internal/task"
	"campus-task-assistant/internal/task/repository"
	"campus-task-assistant/pkg/gcalendar"
	"campus-task-assistant/pkg/llmprovider"
	pkgLog "campus-task-assistant/pkg/log"
)

const (
	defaultTemperature = 0.3
	defaultMaxTokens   = 500
	defaultTimezone    = "UTC"
	deadlineEventSpan  = 30 * time.Minute
)

// Calendar creates deadline events. *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config tunes extraction and optional integrations.
type Config struct {
	DefaultTimezone string
	Temperature     float64
	MaxTokens       int
	CalendarID      string
}

type implUseCase struct {
	l          pkgLog.Logger
	llm        llmprovider.Provider
	repo       repository.Repository
	limiter    ratelimit.Store // nil disables rate limiting
	calendar   Calendar        // nil disables deadline events
	calendarID string

	timezone    string
	temperature float64
	maxTokens   int

	now func() time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	llm llmprovider.Provider,
	repo repository.Repository,
	limiter ratelimit.Store,
	calendar Calendar,
	cfg Config,
) task.UseCase {
	uc := &implUseCase{
		l:           l,
		llm:         llm,
		repo:        repo,
		limiter:     limiter,
		calendar:    calendar,
		calendarID:  cfg.CalendarID,
		timezone:    cfg.DefaultTimezone,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		now:         time.Now,
	}
	if uc.timezone == "" {
		uc.timezone = defaultTimezone
	}
	if uc.temperature <= 0 {
		uc.temperature = defaultTemperature
	}
	if uc.maxTokens <= 0 {
		uc.maxTokens = defaultMaxTokens
	}
	return uc
}
