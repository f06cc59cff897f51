package usecase

import (
	"context"
	"fmt"
	"time"

	"quicktask/internal/model"
	"quicktask/internal/planner"
	"quicktask/internal/planner/repository"
	"quicktask/pkg/gcalendar"
)

const defaultEventDuration = time.Hour

// SaveGenerated validates and persists a batch of AI tasks for the current user.
// The batch is stored in one transaction; calendar mirroring afterwards is best effort.
func (uc *implUseCase) SaveGenerated(ctx context.Context, sc model.Scope, input planner.SaveGeneratedInput) (planner.SaveGeneratedOutput, error) {
	if !sc.IsAuthenticated() {
		return planner.SaveGeneratedOutput{}, planner.ErrUnauthenticated
	}
	if len(input.Tasks) == 0 {
		return planner.SaveGeneratedOutput{}, planner.ErrNoTasksProvided
	}

	drafts, err := planner.ValidateBatch(input.Tasks)
	if err != nil {
		return planner.SaveGeneratedOutput{}, err
	}

	opts := make([]repository.CreateTaskOptions, len(drafts))
	for i, d := range drafts {
		opts[i] = uc.buildCreateOptions(sc, input, input.Tasks[i].(map[string]any), d)
	}

	tasks, err := uc.repo.CreateTasks(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "SaveGenerated: user=%s count=%d: %v", sc.UserID, len(opts), err)
		return planner.SaveGeneratedOutput{}, fmt.Errorf("failed to save tasks: %w", err)
	}

	uc.l.Infof(ctx, "SaveGenerated: user=%s saved=%d", sc.UserID, len(tasks))

	for _, t := range tasks {
		uc.mirrorToCalendar(ctx, t)
	}

	return planner.SaveGeneratedOutput{Tasks: tasks}, nil
}

// buildCreateOptions merges a validated draft with its record-level overrides.
// A record's own id, source, prompt and regenerationId win over the request values.
func (uc *implUseCase) buildCreateOptions(sc model.Scope, input planner.SaveGeneratedInput, raw map[string]any, d model.TaskDraft) repository.CreateTaskOptions {
	id := stringOf(raw["id"])
	if id == "" {
		id = uc.newID()
	}

	return repository.CreateTaskOptions{
		ID:             id,
		UserID:         sc.UserID,
		Name:           d.Name,
		Description:    d.Description,
		Priority:       model.ToDBPriority(d.Priority),
		Status:         d.Status,
		DueDate:        d.DueDate,
		EstimatedTime:  d.EstimatedTime,
		Category:       d.Category,
		Source:         firstNonEmpty(stringOf(raw["source"]), input.Source, planner.DefaultSource),
		Prompt:         firstNonEmpty(stringOf(raw["prompt"]), input.Prompt),
		RegenerationID: firstNonEmpty(stringOf(raw["regenerationId"]), input.RegenerationID),
	}
}

// mirrorToCalendar creates an event for a task with an absolute or relative due date.
// Failures are logged and never reach the caller.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, t model.Task) {
	if uc.calendar == nil || uc.cfg.CalendarID == "" {
		return
	}

	start, allDay, ok := gcalendar.ParseDueDate(t.DueDate, uc.loc)
	if !ok {
		// "tomorrow", "next friday" and the like become all-day events.
		if start, ok = uc.dates.Resolve(t.DueDate, uc.now()); !ok {
			return
		}
		allDay = true
	}

	duration := defaultEventDuration
	if t.EstimatedTime != nil && *t.EstimatedTime > 0 {
		duration = time.Duration(*t.EstimatedTime * float64(time.Hour))
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     t.Name,
		Description: t.Description,
		StartTime:   start,
		EndTime:     start.Add(duration),
		Timezone:    uc.loc.String(),
		AllDay:      allDay,
	})
	if err != nil {
		uc.l.Warnf(ctx, "SaveGenerated: calendar event for %q failed (non-fatal): %v", t.Name, err)
		return
	}
	uc.l.Debugf(ctx, "SaveGenerated: calendar event %s created for task %s", event.ID, t.ID)
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
