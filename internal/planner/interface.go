package planner

import (
	"context"

	"quicktask/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Conversational generation
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (Outcome, error)
	Regenerate(ctx context.Context, sc model.Scope, input RegenerateInput) (Outcome, error)
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// Task batches
	ValidateEdited(ctx context.Context, sc model.Scope, input ValidateEditedInput) (ValidateEditedOutput, error)
	SaveGenerated(ctx context.Context, sc model.Scope, input SaveGeneratedInput) (SaveGeneratedOutput, error)

	// Saved tasks of the current user
	ListTasks(ctx context.Context, sc model.Scope) (ListTasksOutput, error)
	CreateTask(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)
	UpdateTask(ctx context.Context, sc model.Scope, input UpdateTaskInput) (UpdateTaskOutput, error)
	DeleteTasks(ctx context.Context, sc model.Scope, input DeleteTasksInput) (DeleteTasksOutput, error)
}
