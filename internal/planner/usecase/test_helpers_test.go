package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"quicktask/internal/model"
	"quicktask/internal/planner"
	"quicktask/internal/planner/repository"
	"quicktask/pkg/gcalendar"
	"quicktask/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockGenerator returns a canned reply. With block set it waits for the context.
type mockGenerator struct {
	reply string
	err   error
	block bool

	requests []*llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.requests = append(m.requests, req)
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.TextMessage(llmprovider.RoleAssistant, m.reply),
		ProviderName: "mock",
		ModelName:    "mock-1",
	}, nil
}

func (m *mockGenerator) lastRequest() *llmprovider.Request {
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

type mockRepo struct {
	err   error
	calls [][]repository.CreateTaskOptions

	stored     []model.Task
	missing    bool // UpdateTask and DeleteTask report ErrTaskNotFound
	lastList   repository.ListTasksOptions
	lastUpdate repository.UpdateTaskOptions
	deleted    []string
}

func (m *mockRepo) CreateTasks(ctx context.Context, opts []repository.CreateTaskOptions) ([]model.Task, error) {
	m.calls = append(m.calls, opts)
	if m.err != nil {
		return nil, m.err
	}
	tasks := make([]model.Task, len(opts))
	for i, o := range opts {
		tasks[i] = model.Task{
			ID:             o.ID,
			UserID:         o.UserID,
			Name:           o.Name,
			Description:    o.Description,
			Priority:       o.Priority,
			Status:         o.Status,
			DueDate:        o.DueDate,
			EstimatedTime:  o.EstimatedTime,
			Category:       o.Category,
			Source:         o.Source,
			Prompt:         o.Prompt,
			RegenerationID: o.RegenerationID,
			CreatedAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return tasks, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.lastList = opt
	if m.err != nil {
		return nil, m.err
	}
	return append([]model.Task(nil), m.stored...), nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.lastUpdate = opt
	if m.missing {
		return model.Task{}, repository.ErrTaskNotFound
	}
	return model.Task{ID: opt.ID, UserID: opt.UserID, Name: opt.Name, Priority: opt.Priority, Status: opt.Status}, m.err
}

func (m *mockRepo) DeleteTask(ctx context.Context, userID, id string) error {
	if m.missing {
		return repository.ErrTaskNotFound
	}
	m.deleted = append(m.deleted, userID+"/"+id)
	return m.err
}

func (m *mockRepo) DeleteAllTasks(ctx context.Context, userID string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.deleted = append(m.deleted, userID+"/*")
	return int64(len(m.stored)), nil
}

type mockCalendar struct {
	mu    sync.Mutex
	err   error
	calls []gcalendar.CreateEventRequest
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: fmt.Sprintf("evt-%d", len(m.calls)), Summary: req.Summary}, nil
}

// sequentialIDs replaces uuid generation with predictable values.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type fixture struct {
	uc       *implUseCase
	llm      *mockGenerator
	repo     *mockRepo
	calendar *mockCalendar
}

func newFixture(cfg planner.Config) fixture {
	f := fixture{
		llm:      &mockGenerator{},
		repo:     &mockRepo{},
		calendar: &mockCalendar{},
	}
	f.uc = New(&mockLogger{}, f.llm, f.repo, f.calendar, cfg)
	f.uc.newID = sequentialIDs()
	return f
}

var signedIn = model.Scope{UserID: "user-1", Username: "ada", SessionID: "sess-1"}
