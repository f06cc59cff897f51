package planner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyPrompt     = errors.New("missing or invalid prompt")
	ErrLLMCallFailed   = errors.New("AI call failed or timed out")
	ErrNoTasksProvided = errors.New("no tasks provided")
	ErrMissingTasks    = errors.New("missing or invalid tasks array")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrInvalidTask     = errors.New("invalid task")

	ErrTaskIDRequired      = errors.New("task id required")
	ErrInvalidDeleteOption = errors.New("invalid option provided")
)

const (
	FieldRecord   = "record"
	FieldName     = "name"
	FieldPriority = "priority"
	FieldStatus   = "status"
	FieldDueDate  = "due_date"
)

// ValidationError describes the first rule a single task record broke.
type ValidationError struct {
	Index int
	Task  string
	Field string
}

func (e *ValidationError) Error() string {
	switch e.Field {
	case FieldRecord:
		return fmt.Sprintf("Task at index %d is malformed.", e.Index)
	case FieldName:
		return fmt.Sprintf("Task at index %d has an empty or invalid name.", e.Index)
	default:
		return fmt.Sprintf("Task '%s' has invalid %s.", e.Task, e.Field)
	}
}

func (e *ValidationError) Unwrap() error { return ErrInvalidTask }

// BatchValidationError collects every failing record of a batch.
type BatchValidationError struct {
	Errors []*ValidationError
}

func (e *BatchValidationError) Error() string {
	return strings.Join(e.Messages(), " ")
}

// Messages returns one message per failing record, in batch order.
func (e *BatchValidationError) Messages() []string {
	out := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		out[i] = err.Error()
	}
	return out
}

func (e *BatchValidationError) Unwrap() error { return ErrInvalidTask }
