package repository

import "errors"

var (
	ErrFailedToInsert    = errors.New("failed to insert tasks")
	ErrFailedToBeginTx   = errors.New("failed to begin transaction")
	ErrFailedToCommit    = errors.New("failed to commit transaction")
	ErrDuplicateTaskID   = errors.New("task id already exists")
	ErrForeignKeyMissing = errors.New("referenced user does not exist")
	ErrFailedToQuery     = errors.New("failed to query tasks")
	ErrFailedToUpdate    = errors.New("failed to update task")
	ErrFailedToDelete    = errors.New("failed to delete tasks")
	ErrTaskNotFound      = errors.New("task not found")
)
