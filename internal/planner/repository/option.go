package repository

import "quicktask/internal/model"

// CreateTaskOptions holds the parameters for persisting one validated task.
type CreateTaskOptions struct {
	ID             string
	UserID         string
	Name           string
	Description    string
	Priority       model.DBPriority
	Status         model.Status
	DueDate        string
	EstimatedTime  *float64
	Category       string
	Source         string // "ai" unless the caller says otherwise
	Prompt         string
	RegenerationID string
}

// ListTasksOptions selects the tasks of one user, newest first.
type ListTasksOptions struct {
	UserID string
	Status model.Status // empty for every status
}

// UpdateTaskOptions holds the editable fields of a task. Every field is overwritten.
type UpdateTaskOptions struct {
	ID       string
	UserID   string
	Name     string
	Priority model.DBPriority
	Status   model.Status
}
