package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicktask/internal/middleware"
	"quicktask/internal/model"
	"quicktask/internal/planner"
	"quicktask/internal/planner/repository"
	"quicktask/internal/session"
	"quicktask/pkg/log"
)

type mockUseCase struct {
	outcome planner.Outcome
	chat    planner.ChatOutput
	saved   planner.SaveGeneratedOutput
	err     error

	listed  planner.ListTasksOutput
	task    model.Task
	deleted int64

	lastScope    model.Scope
	lastGenerate planner.GenerateInput
	lastSave     planner.SaveGeneratedInput
	lastCreate   planner.CreateTaskInput
	lastUpdate   planner.UpdateTaskInput
	lastDelete   planner.DeleteTasksInput
}

func (m *mockUseCase) Generate(ctx context.Context, sc model.Scope, in planner.GenerateInput) (planner.Outcome, error) {
	m.lastScope, m.lastGenerate = sc, in
	return m.outcome, m.err
}

func (m *mockUseCase) Regenerate(ctx context.Context, sc model.Scope, in planner.RegenerateInput) (planner.Outcome, error) {
	m.lastScope = sc
	return m.outcome, m.err
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, in planner.ChatInput) (planner.ChatOutput, error) {
	return m.chat, m.err
}

func (m *mockUseCase) ValidateEdited(ctx context.Context, sc model.Scope, in planner.ValidateEditedInput) (planner.ValidateEditedOutput, error) {
	if m.err != nil {
		return planner.ValidateEditedOutput{}, m.err
	}
	return planner.ValidateEditedOutput{Tasks: []model.TaskDraft{{Name: "A", Priority: model.PriorityHigh, Status: model.StatusPending}}}, nil
}

func (m *mockUseCase) SaveGenerated(ctx context.Context, sc model.Scope, in planner.SaveGeneratedInput) (planner.SaveGeneratedOutput, error) {
	m.lastScope, m.lastSave = sc, in
	return m.saved, m.err
}

func (m *mockUseCase) ListTasks(ctx context.Context, sc model.Scope) (planner.ListTasksOutput, error) {
	m.lastScope = sc
	return m.listed, m.err
}

func (m *mockUseCase) CreateTask(ctx context.Context, sc model.Scope, in planner.CreateTaskInput) (planner.CreateTaskOutput, error) {
	m.lastCreate = in
	return planner.CreateTaskOutput{Task: m.task}, m.err
}

func (m *mockUseCase) UpdateTask(ctx context.Context, sc model.Scope, in planner.UpdateTaskInput) (planner.UpdateTaskOutput, error) {
	m.lastUpdate = in
	return planner.UpdateTaskOutput{Task: m.task}, m.err
}

func (m *mockUseCase) DeleteTasks(ctx context.Context, sc model.Scope, in planner.DeleteTasksInput) (planner.DeleteTasksOutput, error) {
	m.lastDelete = in
	return planner.DeleteTasksOutput{Deleted: m.deleted}, m.err
}

type mockSessions struct{}

func (mockSessions) Validate(ctx context.Context, id string) (model.Scope, error) {
	if id == "valid" {
		return model.Scope{UserID: "u1", SessionID: id}, nil
	}
	return model.Scope{}, session.ErrSessionInvalid
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    []string        `json:"errors"`
}

func setup(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), mockSessions{}, middleware.Config{})
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return r
}

func do(t *testing.T, r *gin.Engine, path, body string, authed bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	return doMethod(t, r, http.MethodPost, path, body, authed)
}

func doMethod(t *testing.T, r *gin.Engine, method, path, body string, authed bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.AddCookie(&http.Cookie{Name: middleware.DefaultCookieName, Value: "valid"})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestGenerateHandler(t *testing.T) {
	t.Run("anonymous clarification", func(t *testing.T) {
		uc := &mockUseCase{outcome: planner.Outcome{
			ClarificationNeeded: true,
			ClarificationText:   "Could you clarify?",
			Clarifications:      []string{"What city?"},
			RegenerationID:      "r1",
		}}
		w, env := do(t, setup(uc), "/api/v1/ai-generate",
			`{"prompt":"Plan a trip","context":[{"role":"user","content":"hi"},{"role":"model","content":"hello"}]}`, false)

		assert.Equal(t, http.StatusOK, w.Code)
		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, true, data["clarificationNeeded"])
		assert.Equal(t, []any{"What city?"}, data["clarifications"])
		assert.Equal(t, "r1", data["regenerationId"])
		assert.NotContains(t, data, "tasks")

		assert.False(t, uc.lastScope.IsAuthenticated())
		require.Len(t, uc.lastGenerate.History, 2)
		assert.Equal(t, model.RoleAssistant, uc.lastGenerate.History[1].Role)
	})

	t.Run("task list", func(t *testing.T) {
		uc := &mockUseCase{outcome: planner.Outcome{
			Tasks:          []model.TaskDraft{{Name: "Book hotel", Priority: model.PriorityMedium, Status: model.StatusPending}},
			SummaryMessage: "Have fun!",
		}}
		w, env := do(t, setup(uc), "/api/v1/ai-generate", `{"prompt":"Plan a trip"}`, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"name":"Book hotel"`)
		assert.Contains(t, string(env.Data), `"clarifications":[]`)
		assert.Equal(t, "u1", uc.lastScope.UserID)
	})

	t.Run("missing prompt", func(t *testing.T) {
		w, env := do(t, setup(&mockUseCase{}), "/api/v1/ai-generate", `{"prompt":"  "}`, false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing or invalid prompt.", env.Message)
	})

	t.Run("non-string prompt", func(t *testing.T) {
		w, _ := do(t, setup(&mockUseCase{}), "/api/v1/ai-generate", `{"prompt":42}`, false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("llm failure", func(t *testing.T) {
		uc := &mockUseCase{err: errors.Join(planner.ErrLLMCallFailed, context.DeadlineExceeded)}
		w, env := do(t, setup(uc), "/api/v1/ai-generate", `{"prompt":"Plan a trip"}`, false)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, env.Message, "try again")
	})
}

func TestRegenerateHandler(t *testing.T) {
	uc := &mockUseCase{outcome: planner.Outcome{RegenerationID: "r2", Tasks: []model.TaskDraft{{Name: "x"}}}}
	r := setup(uc)

	w, _ := do(t, r, "/api/v1/ai-generate/regenerate", `{"context":[]}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := do(t, r, "/api/v1/ai-generate/regenerate", `{"context":[{"role":"user","content":"again"}],"regenerationId":"r1"}`, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"regenerationId":"r2"`)

	t.Run("prompt of the wrong type", func(t *testing.T) {
		w, env := do(t, r, "/api/v1/ai-generate/regenerate", `{"prompt":42}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing or invalid prompt.", env.Message)
		assert.NotContains(t, env.Message, "unmarshal")
	})
}

func TestChatHandler(t *testing.T) {
	uc := &mockUseCase{chat: planner.ChatOutput{Reply: "Do the hard task first."}}

	w, env := do(t, setup(uc), "/api/v1/ai-chat", `{"prompt":"How should I order my day?"}`, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reply":"Do the hard task first."}`, string(env.Data))
}

func TestValidateEditedHandler(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		w, env := do(t, setup(&mockUseCase{}), "/api/v1/tasks/validate-edited", `{"tasks":[{"name":"A"}]}`, true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"valid":true`)
	})

	t.Run("invalid batch", func(t *testing.T) {
		uc := &mockUseCase{err: &planner.BatchValidationError{Errors: []*planner.ValidationError{
			{Index: 0, Field: planner.FieldName},
			{Index: 1, Task: "B", Field: planner.FieldStatus},
		}}}
		w, env := do(t, setup(uc), "/api/v1/tasks/validate-edited", `{"tasks":[{},{"name":"B"}]}`, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{
			"Task at index 0 has an empty or invalid name.",
			"Task 'B' has invalid status.",
		}, env.Errors)
	})

	t.Run("tasks not an array", func(t *testing.T) {
		w, env := do(t, setup(&mockUseCase{}), "/api/v1/tasks/validate-edited", `{"tasks":"nope"}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing or invalid tasks array.", env.Message)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w, env := do(t, setup(&mockUseCase{}), "/api/v1/tasks/validate-edited", `{"tasks":[]}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Not authenticated", env.Message)
	})
}

func TestSaveGeneratedHandler(t *testing.T) {
	t.Run("saved", func(t *testing.T) {
		uc := &mockUseCase{saved: planner.SaveGeneratedOutput{Tasks: []model.Task{{
			ID: "t1", UserID: "u1", Name: "Book hotel", Priority: model.DBPriorityHigh,
			Status: model.StatusPending, Source: "ai", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}}}}
		w, env := do(t, setup(uc), "/api/v1/tasks/save-generated",
			`{"tasks":[{"name":"Book hotel","priority":"High","status":"pending","estimated_time":1.5}],"regenerationId":"r1"}`, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"success":true`)
		assert.Contains(t, string(env.Data), `"priority":"high"`)
		assert.Contains(t, string(env.Data), `"createdAt":"2026-01-01T00:00:00.000Z"`)
		assert.Equal(t, "r1", uc.lastSave.RegenerationID)
		require.Len(t, uc.lastSave.Tasks, 1)
		assert.Equal(t, 1.5, uc.lastSave.Tasks[0].(map[string]any)["estimated_time"])
	})

	t.Run("no tasks", func(t *testing.T) {
		uc := &mockUseCase{err: planner.ErrNoTasksProvided}
		w, env := do(t, setup(uc), "/api/v1/tasks/save-generated", `{"tasks":[]}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No tasks provided", env.Message)
	})

	t.Run("store failure", func(t *testing.T) {
		uc := &mockUseCase{err: errors.New("connection refused")}
		w, _ := do(t, setup(uc), "/api/v1/tasks/save-generated", `{"tasks":[{}]}`, true)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListTasksHandler(t *testing.T) {
	uc := &mockUseCase{listed: planner.ListTasksOutput{Tasks: []model.Task{{
		ID: "t1", UserID: "u1", Name: "Book hotel", Priority: model.DBPriorityLow,
		Status: model.StatusInProgress, Source: "manual", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}}}
	r := setup(uc)

	w, env := doMethod(t, r, http.MethodGet, "/api/v1/tasks", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"name":"Book hotel"`)
	assert.Contains(t, string(env.Data), `"status":"in progress"`)
	assert.Equal(t, "u1", uc.lastScope.UserID)

	t.Run("empty list", func(t *testing.T) {
		w, env := doMethod(t, setup(&mockUseCase{}), http.MethodGet, "/api/v1/tasks", "", true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tasks":[]}`, string(env.Data))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w, _ := doMethod(t, r, http.MethodGet, "/api/v1/tasks", "", false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCreateTaskHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		uc := &mockUseCase{task: model.Task{ID: "t1", Name: "Call landlord", Priority: model.DBPriorityHigh, Status: model.StatusPending}}
		w, env := doMethod(t, setup(uc), http.MethodPost, "/api/v1/tasks",
			`{"name":"Call landlord","priority":"high","status":"pending","due_date":"2026-05-01"}`, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"id":"t1"`)
		assert.Equal(t, "2026-05-01", uc.lastCreate.Task["due_date"])
	})

	t.Run("missing due date", func(t *testing.T) {
		uc := &mockUseCase{err: &planner.ValidationError{Task: "A", Field: planner.FieldDueDate}}
		w, env := doMethod(t, setup(uc), http.MethodPost, "/api/v1/tasks", `{"name":"A"}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Task 'A' has invalid due_date.", env.Message)
	})

	t.Run("not an object", func(t *testing.T) {
		for _, body := range []string{`null`, `[1]`, `"x"`} {
			w, env := doMethod(t, setup(&mockUseCase{}), http.MethodPost, "/api/v1/tasks", body, true)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.Equal(t, "Invalid task payload.", env.Message, body)
		}
	})
}

func TestUpdateTaskHandler(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		uc := &mockUseCase{task: model.Task{ID: "t1", Name: "Book trains", Priority: model.DBPriorityMedium, Status: model.StatusCompleted}}
		w, env := doMethod(t, setup(uc), http.MethodPut, "/api/v1/tasks",
			`{"id":"t1","name":"Book trains","priority":"medium","status":"completed"}`, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"status":"completed"`)
		assert.Equal(t, planner.UpdateTaskInput{ID: "t1", Name: "Book trains", Priority: "medium", Status: "completed"}, uc.lastUpdate)
	})

	t.Run("not found", func(t *testing.T) {
		uc := &mockUseCase{err: fmt.Errorf("update: %w", repository.ErrTaskNotFound)}
		w, env := doMethod(t, setup(uc), http.MethodPut, "/api/v1/tasks", `{"id":"t9","name":"A","priority":"high","status":"pending"}`, true)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Task not found", env.Message)
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := &mockUseCase{err: &planner.ValidationError{Task: "A", Field: planner.FieldStatus}}
		w, env := doMethod(t, setup(uc), http.MethodPut, "/api/v1/tasks", `{"id":"t1","name":"A","priority":"high","status":"done"}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Task 'A' has invalid status.", env.Message)
	})

	t.Run("wrong field type", func(t *testing.T) {
		w, env := doMethod(t, setup(&mockUseCase{}), http.MethodPut, "/api/v1/tasks", `{"id":7}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid task payload.", env.Message)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w, _ := doMethod(t, setup(&mockUseCase{}), http.MethodPut, "/api/v1/tasks", `{}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDeleteTasksHandler(t *testing.T) {
	t.Run("one", func(t *testing.T) {
		uc := &mockUseCase{deleted: 1}
		w, env := doMethod(t, setup(uc), http.MethodDelete, "/api/v1/tasks", `{"option":"delete","task":{"id":"t1"}}`, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deleted":1}`, string(env.Data))
		assert.Equal(t, planner.DeleteTasksInput{Option: planner.DeleteOne, TaskID: "t1"}, uc.lastDelete)
	})

	t.Run("all", func(t *testing.T) {
		uc := &mockUseCase{deleted: 4}
		w, env := doMethod(t, setup(uc), http.MethodDelete, "/api/v1/tasks", `{"option":"deleteAll"}`, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"deleted":4}`, string(env.Data))
		assert.Equal(t, planner.DeleteAll, uc.lastDelete.Option)
	})

	t.Run("missing option", func(t *testing.T) {
		w, env := doMethod(t, setup(&mockUseCase{}), http.MethodDelete, "/api/v1/tasks", `{}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "option is not defined", env.Message)
	})

	t.Run("unknown option", func(t *testing.T) {
		uc := &mockUseCase{err: planner.ErrInvalidDeleteOption}
		w, env := doMethod(t, setup(uc), http.MethodDelete, "/api/v1/tasks", `{"option":"purge"}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid option provided", env.Message)
	})

	t.Run("task id missing", func(t *testing.T) {
		uc := &mockUseCase{err: planner.ErrTaskIDRequired}
		w, env := doMethod(t, setup(uc), http.MethodDelete, "/api/v1/tasks", `{"option":"delete"}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Task id is required", env.Message)
	})

	t.Run("not found", func(t *testing.T) {
		uc := &mockUseCase{err: repository.ErrTaskNotFound}
		w, _ := doMethod(t, setup(uc), http.MethodDelete, "/api/v1/tasks", `{"option":"delete","task":{"id":"t9"}}`, true)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		w, _ := doMethod(t, setup(&mockUseCase{}), http.MethodDelete, "/api/v1/tasks", `{"option":"deleteAll"}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
