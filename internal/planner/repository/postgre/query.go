package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quicktask/internal/model"
	"quicktask/internal/planner/repository"
)

const taskColumns = `id, user_id, name, description, priority, status,
	due_date, estimated_time, category, source, prompt, regeneration_id, created_at`

const (
	listTasksQuery = `SELECT ` + taskColumns + `
FROM tasks
WHERE user_id = $1 AND ($2::text = '' OR status = $2)
ORDER BY created_at DESC, id`

	updateTaskQuery = `
UPDATE tasks SET name = $3, priority = $4, status = $5
WHERE id = $1 AND user_id = $2
RETURNING ` + taskColumns

	deleteTaskQuery     = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	deleteAllTasksQuery = `DELETE FROM tasks WHERE user_id = $1`
)

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, listTasksQuery, opt.UserID, string(opt.Status))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToQuery, err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListTasks"), err)
			return nil, fmt.Errorf("%w: %w", repository.ErrFailedToQuery, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListTasks"), err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToQuery, err)
	}

	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, updateTaskQuery,
		opt.ID, opt.UserID, opt.Name, string(opt.Priority), string(opt.Status))

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrTaskNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: task %s: %v", r.dsn("UpdateTask"), opt.ID, err)
		return model.Task{}, fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}
	return t, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) error {
	n, err := r.exec(ctx, "DeleteTask", deleteTaskQuery, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrTaskNotFound
	}
	return nil
}

func (r *implRepository) DeleteAllTasks(ctx context.Context, userID string) (int64, error) {
	return r.exec(ctx, "DeleteAllTasks", deleteAllTasksQuery, userID)
}

func (r *implRepository) exec(ctx context.Context, method, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return 0, fmt.Errorf("%w: %w", repository.ErrFailedToDelete, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s: rows affected: %v", r.dsn(method), err)
		return 0, fmt.Errorf("%w: %w", repository.ErrFailedToDelete, err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one row selected with taskColumns.
func scanTask(row rowScanner) (model.Task, error) {
	var (
		t                                  model.Task
		priority, status                   string
		desc, due, category, prompt, regen sql.NullString
		est                                sql.NullFloat64
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &desc, &priority, &status,
		&due, &est, &category, &t.Source, &prompt, &regen, &t.CreatedAt)
	if err != nil {
		return model.Task{}, err
	}

	t.Description = desc.String
	t.Priority = model.DBPriority(priority)
	t.Status = model.Status(status)
	t.DueDate = due.String
	t.Category = category.String
	t.Prompt = prompt.String
	t.RegenerationID = regen.String
	if est.Valid {
		v := est.Float64
		t.EstimatedTime = &v
	}
	return t, nil
}
