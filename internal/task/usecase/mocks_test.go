package usecase

import (
	"context"
	"sync"
	"time"

	"campus-task-assistant/internal/model"
	"campus-task-assistant/internal/ratelimit"
	"campus-task-assistant/internal/task/repository"
	"campus-task-assistant/pkg/gcalendar"
	"campus-task-assistant/pkg/llmprovider"
)

type mockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockProvider struct {
	response *llmprovider.Response
	err      error
	lastReq  *llmprovider.Request
	calls    int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	return m.response, m.err
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-model" }

// functionCallResponse builds a provider response carrying one parse_task call.
func functionCallResponse(args map[string]interface{}) *llmprovider.Response {
	return &llmprovider.Response{
		ProviderName: "mock",
		Content: llmprovider.Message{
			Role:  "model",
			Parts: []llmprovider.Part{{FunctionCall: &llmprovider.FunctionCall{Name: parseTaskTool, Args: args}}},
		},
	}
}

type mockRepo struct {
	created   []repository.CreateTaskOptions
	createErr error
	task      model.Task
	getErr    error
	list      []model.Task
	total     int
	listErr   error
	listOpt   repository.ListTasksOptions
	linkedID  string
	linkedURL string
	updateErr error
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createErr != nil {
		return model.Task{}, m.createErr
	}
	m.created = append(m.created, opt)
	return model.Task{
		ID:             "task-1",
		OrganizationID: opt.OrganizationID,
		Title:          opt.Title,
		Priority:       opt.Priority,
		DueDate:        opt.DueDate,
		DueDatePhrase:  opt.DueDatePhrase,
		Assignees:      opt.Assignees,
		CreatedBy:      opt.CreatedBy,
	}, nil
}

func (m *mockRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	return m.task, m.getErr
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	m.listOpt = opt
	return m.list, m.total, m.listErr
}

func (m *mockRepo) UpdateCalendarLink(ctx context.Context, id, link string) error {
	m.linkedID, m.linkedURL = id, link
	return m.updateErr
}

type mockLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (m *mockLimiter) Allow(ctx context.Context, key string) (bool, error) {
	m.keys = append(m.keys, key)
	return m.allow, m.err
}

type mockCalendar struct {
	req gcalendar.CreateEventRequest
	err error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", HTMLLink: "https://calendar.google.com/event?eid=evt-1"}, nil
}

// fixedNow is Wednesday, 14 October 2026, 10:00 UTC.
var fixedNow = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

func newTestUseCase(p *mockProvider, repo *mockRepo, limiter *mockLimiter, cal Calendar) (*implUseCase, *mockLogger) {
	l := &mockLogger{}
	var store ratelimit.Store
	if limiter != nil {
		store = limiter
	}
	if repo == nil {
		repo = &mockRepo{}
	}
	uc := New(l, p, repo, store, cal, Config{DefaultTimezone: "UTC"}).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc, l
}
