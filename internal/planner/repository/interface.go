package repository

import (
	"context"

	"quicktask/internal/model"
)

//go:generate mockery --name TaskRepository
type TaskRepository interface {
	// CreateTasks inserts every task in a single transaction. Either all rows are
	// stored or none are.
	CreateTasks(ctx context.Context, opts []CreateTaskOptions) ([]model.Task, error)

	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// UpdateTask returns ErrTaskNotFound when no task with opt.ID belongs to opt.UserID.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, userID, id string) error
	// DeleteAllTasks removes every task of the user and reports how many were removed.
	DeleteAllTasks(ctx context.Context, userID string) (int64, error)
}
