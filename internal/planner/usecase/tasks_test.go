package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quicktask/internal/model"
	"quicktask/internal/planner"
	"quicktask/internal/planner/repository"
)

func TestListTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("pending shows as in progress", func(t *testing.T) {
		f := newFixture(planner.Config{})
		f.repo.stored = []model.Task{
			{ID: "t1", Name: "Book flights", Status: model.StatusPending},
			{ID: "t2", Name: "Pack bags", Status: model.StatusCompleted},
			{ID: "t3", Name: "Renew passport", Status: model.StatusInProgress},
		}

		out, err := f.uc.ListTasks(ctx, signedIn)
		require.NoError(t, err)
		require.Len(t, out.Tasks, 3)
		assert.Equal(t, model.StatusInProgress, out.Tasks[0].Status)
		assert.Equal(t, model.StatusCompleted, out.Tasks[1].Status)
		assert.Equal(t, model.StatusInProgress, out.Tasks[2].Status)
		assert.Equal(t, "user-1", f.repo.lastList.UserID)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newFixture(planner.Config{})
		_, err := f.uc.ListTasks(ctx, model.Scope{})
		assert.ErrorIs(t, err, planner.ErrUnauthenticated)
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(planner.Config{})
		f.repo.err = repository.ErrFailedToQuery
		_, err := f.uc.ListTasks(ctx, signedIn)
		assert.ErrorIs(t, err, repository.ErrFailedToQuery)
	})
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("stored and mirrored", func(t *testing.T) {
		f := newFixture(planner.Config{CalendarID: "primary", Timezone: "UTC"})

		out, err := f.uc.CreateTask(ctx, signedIn, planner.CreateTaskInput{Task: map[string]any{
			"name": " Call the landlord ", "priority": "high", "status": "pending", "due_date": "2026-05-01",
		}})
		require.NoError(t, err)

		assert.Equal(t, "id-1", out.Task.ID)
		assert.Equal(t, "Call the landlord", out.Task.Name)
		assert.Equal(t, model.DBPriorityHigh, out.Task.Priority)
		assert.Equal(t, planner.ManualSource, out.Task.Source)
		assert.Equal(t, "user-1", out.Task.UserID)
		require.Len(t, f.calendar.calls, 1)
		assert.True(t, f.calendar.calls[0].AllDay)
	})

	t.Run("client id and pipeline casing", func(t *testing.T) {
		f := newFixture(planner.Config{})

		out, err := f.uc.CreateTask(ctx, signedIn, planner.CreateTaskInput{Task: map[string]any{
			"id": "t-42", "name": "Water plants", "priority": "Low", "status": "completed", "due_date": "tomorrow",
		}})
		require.NoError(t, err)
		assert.Equal(t, "t-42", out.Task.ID)
		assert.Equal(t, model.DBPriorityLow, out.Task.Priority)
	})

	t.Run("input is not modified", func(t *testing.T) {
		f := newFixture(planner.Config{})
		rec := map[string]any{"name": "A", "priority": "medium", "status": "pending", "due_date": "2026-05-01"}

		_, err := f.uc.CreateTask(ctx, signedIn, planner.CreateTaskInput{Task: rec})
		require.NoError(t, err)
		assert.Equal(t, "medium", rec["priority"])
	})

	t.Run("due date required", func(t *testing.T) {
		f := newFixture(planner.Config{})

		_, err := f.uc.CreateTask(ctx, signedIn, planner.CreateTaskInput{Task: map[string]any{
			"name": "Someday", "priority": "low", "status": "pending",
		}})
		var vErr *planner.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, planner.FieldDueDate, vErr.Field)
		assert.Equal(t, "Task 'Someday' has invalid due_date.", vErr.Error())
		assert.Empty(t, f.repo.calls)
	})

	t.Run("invalid priority", func(t *testing.T) {
		f := newFixture(planner.Config{})

		_, err := f.uc.CreateTask(ctx, signedIn, planner.CreateTaskInput{Task: map[string]any{
			"name": "X", "priority": "urgent", "status": "pending", "due_date": "2026-05-01",
		}})
		assert.ErrorIs(t, err, planner.ErrInvalidTask)
	})

	t.Run("guards", func(t *testing.T) {
		f := newFixture(planner.Config{})

		_, err := f.uc.CreateTask(ctx, model.Scope{}, planner.CreateTaskInput{Task: map[string]any{}})
		assert.ErrorIs(t, err, planner.ErrUnauthenticated)

		_, err = f.uc.CreateTask(ctx, signedIn, planner.CreateTaskInput{})
		assert.ErrorIs(t, err, planner.ErrNoTasksProvided)
	})

	t.Run("duplicate id", func(t *testing.T) {
		f := newFixture(planner.Config{})
		f.repo.err = repository.ErrDuplicateTaskID

		_, err := f.uc.CreateTask(ctx, signedIn, planner.CreateTaskInput{Task: map[string]any{
			"id": "t1", "name": "A", "priority": "low", "status": "pending", "due_date": "2026-05-01",
		}})
		assert.ErrorIs(t, err, repository.ErrDuplicateTaskID)
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		f := newFixture(planner.Config{})

		out, err := f.uc.UpdateTask(ctx, signedIn, planner.UpdateTaskInput{
			ID: "t1", Name: "  Book trains ", Priority: "Medium", Status: "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, "Book trains", out.Task.Name)
		assert.Equal(t, repository.UpdateTaskOptions{
			ID: "t1", UserID: "user-1", Name: "Book trains", Priority: model.DBPriorityMedium, Status: model.StatusCompleted,
		}, f.repo.lastUpdate)
	})

	t.Run("invalid fields", func(t *testing.T) {
		f := newFixture(planner.Config{})
		tests := []struct {
			name  string
			input planner.UpdateTaskInput
			field string
		}{
			{"blank name", planner.UpdateTaskInput{ID: "t1", Name: " ", Priority: "high", Status: "pending"}, planner.FieldName},
			{"bad priority", planner.UpdateTaskInput{ID: "t1", Name: "A", Priority: "asap", Status: "pending"}, planner.FieldPriority},
			{"bad status", planner.UpdateTaskInput{ID: "t1", Name: "A", Priority: "high", Status: "done"}, planner.FieldStatus},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.uc.UpdateTask(ctx, signedIn, tt.input)
				var vErr *planner.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.field, vErr.Field)
			})
		}
		assert.Empty(t, f.repo.lastUpdate.ID)
	})

	t.Run("missing id", func(t *testing.T) {
		f := newFixture(planner.Config{})
		_, err := f.uc.UpdateTask(ctx, signedIn, planner.UpdateTaskInput{Name: "A", Priority: "high", Status: "pending"})
		assert.ErrorIs(t, err, planner.ErrTaskIDRequired)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(planner.Config{})
		f.repo.missing = true
		_, err := f.uc.UpdateTask(ctx, signedIn, planner.UpdateTaskInput{ID: "t9", Name: "A", Priority: "high", Status: "pending"})
		assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newFixture(planner.Config{})
		_, err := f.uc.UpdateTask(ctx, model.Scope{}, planner.UpdateTaskInput{ID: "t1"})
		assert.ErrorIs(t, err, planner.ErrUnauthenticated)
	})
}

func TestDeleteTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("one", func(t *testing.T) {
		f := newFixture(planner.Config{})
		out, err := f.uc.DeleteTasks(ctx, signedIn, planner.DeleteTasksInput{Option: planner.DeleteOne, TaskID: "t1"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), out.Deleted)
		assert.Equal(t, []string{"user-1/t1"}, f.repo.deleted)
	})

	t.Run("one without id", func(t *testing.T) {
		f := newFixture(planner.Config{})
		_, err := f.uc.DeleteTasks(ctx, signedIn, planner.DeleteTasksInput{Option: planner.DeleteOne})
		assert.ErrorIs(t, err, planner.ErrTaskIDRequired)
		assert.Empty(t, f.repo.deleted)
	})

	t.Run("one not found", func(t *testing.T) {
		f := newFixture(planner.Config{})
		f.repo.missing = true
		_, err := f.uc.DeleteTasks(ctx, signedIn, planner.DeleteTasksInput{Option: planner.DeleteOne, TaskID: "t9"})
		assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	})

	t.Run("all", func(t *testing.T) {
		f := newFixture(planner.Config{})
		f.repo.stored = []model.Task{{ID: "t1"}, {ID: "t2"}}
		out, err := f.uc.DeleteTasks(ctx, signedIn, planner.DeleteTasksInput{Option: planner.DeleteAll})
		require.NoError(t, err)
		assert.Equal(t, int64(2), out.Deleted)
		assert.Equal(t, []string{"user-1/*"}, f.repo.deleted)
	})

	t.Run("all fails", func(t *testing.T) {
		f := newFixture(planner.Config{})
		f.repo.err = errors.New("connection reset")
		_, err := f.uc.DeleteTasks(ctx, signedIn, planner.DeleteTasksInput{Option: planner.DeleteAll})
		assert.Error(t, err)
	})

	t.Run("unknown option", func(t *testing.T) {
		f := newFixture(planner.Config{})
		_, err := f.uc.DeleteTasks(ctx, signedIn, planner.DeleteTasksInput{Option: "purge"})
		assert.ErrorIs(t, err, planner.ErrInvalidDeleteOption)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newFixture(planner.Config{})
		_, err := f.uc.DeleteTasks(ctx, model.Scope{}, planner.DeleteTasksInput{Option: planner.DeleteAll})
		assert.ErrorIs(t, err, planner.ErrUnauthenticated)
	})
}
