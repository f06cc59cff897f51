package http

import (
	"strings"

	"quicktask/internal/model"
	"quicktask/internal/planner"
	"quicktask/pkg/response"
)

// --- Request DTOs ---

type turnReq struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func toHistory(turns []turnReq) []model.ConversationTurn {
	history := make([]model.ConversationTurn, 0, len(turns))
	for _, t := range turns {
		role := model.RoleUser
		if strings.EqualFold(t.Role, string(model.RoleAssistant)) || strings.EqualFold(t.Role, "model") {
			role = model.RoleAssistant
		}
		history = append(history, model.ConversationTurn{Role: role, Content: t.Content})
	}
	return history
}

type generateReq struct {
	Prompt  string    `json:"prompt"`
	Context []turnReq `json:"context"`
}

func (r generateReq) validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return planner.ErrEmptyPrompt
	}
	return nil
}

func (r generateReq) toInput() planner.GenerateInput {
	return planner.GenerateInput{
		Prompt:  r.Prompt,
		History: toHistory(r.Context),
	}
}

// ---

type regenerateReq struct {
	Prompt         string    `json:"prompt"`
	Context        []turnReq `json:"context"`
	RegenerationID string    `json:"regenerationId"`
}

func (r regenerateReq) toInput() planner.RegenerateInput {
	return planner.RegenerateInput{
		Prompt:                 r.Prompt,
		History:                toHistory(r.Context),
		PreviousRegenerationID: r.RegenerationID,
	}
}

// ---

type chatReq struct {
	Prompt string `json:"prompt"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return planner.ErrEmptyPrompt
	}
	return nil
}

func (r chatReq) toInput() planner.ChatInput {
	return planner.ChatInput{Prompt: r.Prompt}
}

// ---

type validateEditedReq struct {
	Tasks []any `json:"tasks" swaggertype:"array,object"`
}

func (r validateEditedReq) toInput() planner.ValidateEditedInput {
	return planner.ValidateEditedInput{Tasks: r.Tasks}
}

// ---

type saveGeneratedReq struct {
	Tasks          []any  `json:"tasks" swaggertype:"array,object"`
	Source         string `json:"source"`
	Prompt         string `json:"prompt"`
	RegenerationID string `json:"regenerationId"`
}

func (r saveGeneratedReq) toInput() planner.SaveGeneratedInput {
	return planner.SaveGeneratedInput{
		Tasks:          r.Tasks,
		Source:         r.Source,
		Prompt:         r.Prompt,
		RegenerationID: r.RegenerationID,
	}
}

// ---

// createTaskReq is a single task record. Priority may use either casing; due_date is required.
type createTaskReq map[string]any

func (r createTaskReq) toInput() planner.CreateTaskInput {
	return planner.CreateTaskInput{Task: r}
}

// ---

type updateTaskReq struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

func (r updateTaskReq) toInput() planner.UpdateTaskInput {
	return planner.UpdateTaskInput{ID: r.ID, Name: r.Name, Priority: r.Priority, Status: r.Status}
}

// ---

type taskRefReq struct {
	ID string `json:"id"`
}

type deleteTasksReq struct {
	Option string      `json:"option" enums:"delete,deleteAll"`
	Task   *taskRefReq `json:"task"`
}

func (r deleteTasksReq) toInput() planner.DeleteTasksInput {
	in := planner.DeleteTasksInput{Option: planner.DeleteOption(r.Option)}
	if r.Task != nil {
		in.TaskID = r.Task.ID
	}
	return in
}

// --- Response DTOs ---

type outcomeResp struct {
	ClarificationNeeded bool              `json:"clarificationNeeded"`
	ClarificationText   string            `json:"clarificationText"`
	Clarifications      []string          `json:"clarifications"`
	Tasks               []model.TaskDraft `json:"tasks,omitempty"`
	SummaryMessage      string            `json:"summaryMessage,omitempty"`
	RegenerationID      string            `json:"regenerationId"`
}

func (h *handler) newOutcomeResp(out planner.Outcome) outcomeResp {
	clarifications := out.Clarifications
	if clarifications == nil {
		clarifications = []string{}
	}
	return outcomeResp{
		ClarificationNeeded: out.ClarificationNeeded,
		ClarificationText:   out.ClarificationText,
		Clarifications:      clarifications,
		Tasks:               out.Tasks,
		SummaryMessage:      out.SummaryMessage,
		RegenerationID:      out.RegenerationID,
	}
}

type chatResp struct {
	Reply string `json:"reply"`
}

func (h *handler) newChatResp(out planner.ChatOutput) chatResp {
	return chatResp{Reply: out.Reply}
}

type validateEditedResp struct {
	Valid bool              `json:"valid"`
	Tasks []model.TaskDraft `json:"tasks"`
}

func (h *handler) newValidateEditedResp(out planner.ValidateEditedOutput) validateEditedResp {
	tasks := out.Tasks
	if tasks == nil {
		tasks = []model.TaskDraft{}
	}
	return validateEditedResp{Valid: true, Tasks: tasks}
}

type taskResp struct {
	ID             string             `json:"id"`
	UserID         string             `json:"userId"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	Priority       string             `json:"priority"`
	Status         string             `json:"status"`
	DueDate        string             `json:"due_date,omitempty"`
	EstimatedTime  *float64           `json:"estimated_time,omitempty"`
	Category       string             `json:"category,omitempty"`
	Source         string             `json:"source"`
	Prompt         string             `json:"prompt,omitempty"`
	RegenerationID string             `json:"regenerationId,omitempty"`
	CreatedAt      response.Timestamp `json:"createdAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:             t.ID,
		UserID:         t.UserID,
		Name:           t.Name,
		Description:    t.Description,
		Priority:       string(t.Priority),
		Status:         string(t.Status),
		DueDate:        t.DueDate,
		EstimatedTime:  t.EstimatedTime,
		Category:       t.Category,
		Source:         t.Source,
		Prompt:         t.Prompt,
		RegenerationID: t.RegenerationID,
		CreatedAt:      response.Timestamp(t.CreatedAt),
	}
}

type saveGeneratedResp struct {
	Success bool       `json:"success"`
	Tasks   []taskResp `json:"tasks"`
}

func (h *handler) newSaveGeneratedResp(out planner.SaveGeneratedOutput) saveGeneratedResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return saveGeneratedResp{Success: true, Tasks: tasks}
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListTasksResp(out planner.ListTasksOutput) listTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listTasksResp{Tasks: tasks}
}

type deleteTasksResp struct {
	Deleted int64 `json:"deleted"`
}
