package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"quicktask/internal/model"
	"quicktask/internal/planner/repository"
)

const insertTaskQuery = `
INSERT INTO tasks (
	id, user_id, name, description, priority, status,
	due_date, estimated_time, category, source, prompt, regeneration_id
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING created_at`

// pq error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation     pq.ErrorCode = "23505"
	codeForeignKeyViolation pq.ErrorCode = "23503"
)

func (r *implRepository) CreateTasks(ctx context.Context, opts []repository.CreateTaskOptions) ([]model.Task, error) {
	if len(opts) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks.BeginTx"), err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToBeginTx, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			r.l.Warnf(ctx, "%s: rollback: %v", r.dsn("CreateTasks"), rbErr)
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insertTaskQuery)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks.Prepare"), err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
	}
	defer stmt.Close()

	tasks := make([]model.Task, 0, len(opts))
	for _, opt := range opts {
		t := toTask(opt)
		err := stmt.QueryRowContext(ctx,
			t.ID, t.UserID, t.Name, nullString(t.Description), string(t.Priority), string(t.Status),
			nullString(t.DueDate), nullFloat(t.EstimatedTime), nullString(t.Category),
			t.Source, nullString(t.Prompt), nullString(t.RegenerationID),
		).Scan(&t.CreatedAt)
		if err != nil {
			r.l.Errorf(ctx, "%s: task %q: %v", r.dsn("CreateTasks"), t.Name, err)
			return nil, mapInsertError(err)
		}
		tasks = append(tasks, t)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTasks.Commit"), err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToCommit, err)
	}

	return tasks, nil
}

func toTask(opt repository.CreateTaskOptions) model.Task {
	return model.Task{
		ID:             opt.ID,
		UserID:         opt.UserID,
		Name:           opt.Name,
		Description:    opt.Description,
		Priority:       opt.Priority,
		Status:         opt.Status,
		DueDate:        opt.DueDate,
		EstimatedTime:  opt.EstimatedTime,
		Category:       opt.Category,
		Source:         opt.Source,
		Prompt:         opt.Prompt,
		RegenerationID: opt.RegenerationID,
	}
}

func mapInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", repository.ErrDuplicateTaskID, pqErr.Detail)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", repository.ErrForeignKeyMissing, pqErr.Detail)
		}
	}
	return fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
