package usecase

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"quicktask/internal/model"
	"quicktask/internal/planner"
	"quicktask/internal/planner/repository"
)

// ListTasks returns the saved tasks of the current user, newest first.
// The task board has no pending column, so pending tasks are reported as in progress.
func (uc *implUseCase) ListTasks(ctx context.Context, sc model.Scope) (planner.ListTasksOutput, error) {
	if !sc.IsAuthenticated() {
		return planner.ListTasksOutput{}, planner.ErrUnauthenticated
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "ListTasks: user=%s: %v", sc.UserID, err)
		return planner.ListTasksOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	for i := range tasks {
		if tasks[i].Status == model.StatusPending {
			tasks[i].Status = model.StatusInProgress
		}
	}
	return planner.ListTasksOutput{Tasks: tasks}, nil
}

// CreateTask stores one task the user added by hand and mirrors it to the calendar.
func (uc *implUseCase) CreateTask(ctx context.Context, sc model.Scope, input planner.CreateTaskInput) (planner.CreateTaskOutput, error) {
	if !sc.IsAuthenticated() {
		return planner.CreateTaskOutput{}, planner.ErrUnauthenticated
	}
	if input.Task == nil {
		return planner.CreateTaskOutput{}, planner.ErrNoTasksProvided
	}

	rec := maps.Clone(input.Task)
	if p, ok := rec["priority"].(string); ok {
		if dbp, ok := model.ParseDBPriority(p); ok {
			rec["priority"] = string(dbp.Priority())
		}
	}

	d, err := planner.Validate(rec)
	if err != nil {
		return planner.CreateTaskOutput{}, err
	}
	if strings.TrimSpace(d.DueDate) == "" {
		return planner.CreateTaskOutput{}, &planner.ValidationError{Task: d.Name, Field: planner.FieldDueDate}
	}

	opt := uc.buildCreateOptions(sc, planner.SaveGeneratedInput{Source: planner.ManualSource}, rec, d)
	tasks, err := uc.repo.CreateTasks(ctx, []repository.CreateTaskOptions{opt})
	if err != nil {
		uc.l.Errorf(ctx, "CreateTask: user=%s: %v", sc.UserID, err)
		return planner.CreateTaskOutput{}, fmt.Errorf("failed to create task: %w", err)
	}
	if len(tasks) != 1 {
		return planner.CreateTaskOutput{}, fmt.Errorf("failed to create task: %w", repository.ErrFailedToInsert)
	}

	uc.mirrorToCalendar(ctx, tasks[0])
	return planner.CreateTaskOutput{Task: tasks[0]}, nil
}

// UpdateTask overwrites the name, priority and status of one of the user's tasks.
func (uc *implUseCase) UpdateTask(ctx context.Context, sc model.Scope, input planner.UpdateTaskInput) (planner.UpdateTaskOutput, error) {
	if !sc.IsAuthenticated() {
		return planner.UpdateTaskOutput{}, planner.ErrUnauthenticated
	}
	if strings.TrimSpace(input.ID) == "" {
		return planner.UpdateTaskOutput{}, planner.ErrTaskIDRequired
	}

	dbp, _ := model.ParseDBPriority(input.Priority)
	draft := model.TaskDraft{
		Name:     strings.TrimSpace(input.Name),
		Priority: dbp.Priority(),
		Status:   model.Status(input.Status),
	}
	if err := planner.ValidateDraft(draft); err != nil {
		return planner.UpdateTaskOutput{}, err
	}

	task, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:       input.ID,
		UserID:   sc.UserID,
		Name:     draft.Name,
		Priority: dbp,
		Status:   draft.Status,
	})
	if err != nil {
		uc.l.Warnf(ctx, "UpdateTask: user=%s task=%s: %v", sc.UserID, input.ID, err)
		return planner.UpdateTaskOutput{}, err
	}

	return planner.UpdateTaskOutput{Task: task}, nil
}

// DeleteTasks removes one task or every task of the current user.
func (uc *implUseCase) DeleteTasks(ctx context.Context, sc model.Scope, input planner.DeleteTasksInput) (planner.DeleteTasksOutput, error) {
	if !sc.IsAuthenticated() {
		return planner.DeleteTasksOutput{}, planner.ErrUnauthenticated
	}

	switch input.Option {
	case planner.DeleteOne:
		if strings.TrimSpace(input.TaskID) == "" {
			return planner.DeleteTasksOutput{}, planner.ErrTaskIDRequired
		}
		if err := uc.repo.DeleteTask(ctx, sc.UserID, input.TaskID); err != nil {
			uc.l.Warnf(ctx, "DeleteTasks: user=%s task=%s: %v", sc.UserID, input.TaskID, err)
			return planner.DeleteTasksOutput{}, err
		}
		return planner.DeleteTasksOutput{Deleted: 1}, nil

	case planner.DeleteAll:
		n, err := uc.repo.DeleteAllTasks(ctx, sc.UserID)
		if err != nil {
			uc.l.Errorf(ctx, "DeleteTasks: user=%s all: %v", sc.UserID, err)
			return planner.DeleteTasksOutput{}, err
		}
		uc.l.Infof(ctx, "DeleteTasks: user=%s removed=%d", sc.UserID, n)
		return planner.DeleteTasksOutput{Deleted: n}, nil

	default:
		return planner.DeleteTasksOutput{}, planner.ErrInvalidDeleteOption
	}
}
