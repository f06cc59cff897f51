package planner

import (
	"time"

	"quicktask/internal/model"
)

// OverrideGate selects which info-sufficiency check may cancel a clarification request.
type OverrideGate string

const (
	GateCore    OverrideGate = "core"
	GateMinimum OverrideGate = "minimum"
)

const (
	DefaultLLMTimeout  = 15 * time.Second
	DefaultTemperature = 0.7
	DefaultSource      = "ai"
	ManualSource       = "manual"
)

// DeleteOption selects between removing one task and clearing the user's list.
type DeleteOption string

const (
	DeleteOne DeleteOption = "delete"
	DeleteAll DeleteOption = "deleteAll"
)

// Config tunes the planner use case.
type Config struct {
	LLMTimeout   time.Duration
	OverrideGate OverrideGate
	Temperature  float64

	// Calendar mirroring of saved tasks with a due date. Empty CalendarID disables it.
	CalendarID string
	Timezone   string
}

// --- UseCase Inputs ---

type GenerateInput struct {
	Prompt  string
	History []model.ConversationTurn
}

type RegenerateInput struct {
	// Prompt may be blank, in which case the last user turn of History is replayed.
	Prompt                 string
	History                []model.ConversationTurn
	PreviousRegenerationID string
}

type ChatInput struct {
	Prompt string
}

type ValidateEditedInput struct {
	Tasks []any
}

type SaveGeneratedInput struct {
	Tasks          []any
	Source         string
	Prompt         string
	RegenerationID string
}

// CreateTaskInput carries one raw task record, in the shape save-generated accepts.
// Priority may use either casing and due_date is required.
type CreateTaskInput struct {
	Task map[string]any
}

type UpdateTaskInput struct {
	ID       string
	Name     string
	Priority string
	Status   string
}

type DeleteTasksInput struct {
	Option DeleteOption
	TaskID string // only for DeleteOne
}

// --- UseCase Outputs ---

// Outcome is the normalized result of one conversation pass.
// Clarifications and Tasks are never both populated. When the reply asked for
// clarification without any extractable question, both are empty and
// ClarificationText carries the reply as written.
type Outcome struct {
	ClarificationNeeded bool
	ClarificationText   string
	Clarifications      []string
	Tasks               []model.TaskDraft
	SummaryMessage      string
	RegenerationID      string
}

type ChatOutput struct {
	Reply string
}

type ValidateEditedOutput struct {
	Tasks []model.TaskDraft
}

type SaveGeneratedOutput struct {
	Tasks []model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
}

type CreateTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}

type DeleteTasksOutput struct {
	Deleted int64
}
