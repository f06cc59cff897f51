package http

import (
	"github.com/gin-gonic/gin"

	"quicktask/internal/middleware"
	"quicktask/pkg/response"
)

// Generate godoc
// @Summary     Generate a task plan
// @Description Sends the prompt and conversation history to the AI planner and returns either clarifying questions or a task list.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Prompt and conversation history"
// @Success     200  {object} outcomeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     503  {object} response.Resp "AI call failed or timed out"
// @Router      /api/v1/ai-generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Generate(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOutcomeResp(output))
}

// Regenerate godoc
// @Summary     Regenerate a task plan
// @Description Replays the conversation for an alternative plan. A blank prompt reuses the last user turn of the context.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body regenerateReq true "Prompt, context and previous regeneration id"
// @Success     200  {object} outcomeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Not authenticated"
// @Failure     503  {object} response.Resp "AI call failed or timed out"
// @Router      /api/v1/ai-generate/regenerate [POST]
func (h *handler) Regenerate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegenerateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Regenerate(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Regenerate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOutcomeResp(output))
}

// Chat godoc
// @Summary     Chat with the planner
// @Description Free-form advice on modifying and optimizing a task schedule.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Prompt"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "AI call failed or timed out"
// @Router      /api/v1/ai-chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Chat(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}

// ValidateEdited godoc
// @Summary     Validate edited tasks
// @Description Checks a user-edited task batch. All failing records are reported in errors.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body validateEditedReq true "Tasks to validate"
// @Success     200  {object} validateEditedResp
// @Failure     400  {object} response.Resp "Validation failed"
// @Failure     401  {object} response.Resp "Not authenticated"
// @Router      /api/v1/tasks/validate-edited [POST]
func (h *handler) ValidateEdited(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processValidateEditedReq(c)
	if err != nil {
		response.Error(c, errMissingTasks)
		return
	}

	output, err := h.uc.ValidateEdited(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newValidateEditedResp(output))
}

// SaveGenerated godoc
// @Summary     Save generated tasks
// @Description Validates and stores a batch of AI tasks in one transaction. Tasks with a due date are mirrored to Google Calendar when configured.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body saveGeneratedReq true "Tasks and generation metadata"
// @Success     200  {object} saveGeneratedResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Not authenticated"
// @Failure     409  {object} response.Resp "Conflict - task id already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/save-generated [POST]
func (h *handler) SaveGenerated(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveGeneratedReq(c)
	if err != nil {
		response.Error(c, errNoTasks)
		return
	}

	output, err := h.uc.SaveGenerated(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SaveGenerated: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSaveGeneratedResp(output))
}

// ListTasks godoc
// @Summary     List saved tasks
// @Description Returns the current user's tasks, newest first. Pending tasks are reported as in progress.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listTasksResp
// @Failure     401 {object} response.Resp "Not authenticated"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTasks(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// CreateTask godoc
// @Summary     Add a task
// @Description Stores one task entered by hand. name, priority, status and due_date are required; id is generated when absent.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body object true "Task record"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Not authenticated"
// @Failure     409  {object} response.Resp "Conflict - task id already exists"
// @Router      /api/v1/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.CreateTask(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.CreateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// UpdateTask godoc
// @Summary     Edit a task
// @Description Overwrites the name, priority and status of one of the current user's tasks.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body updateTaskReq true "Task id and new values"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Not authenticated"
// @Failure     404  {object} response.Resp "Task not found"
// @Router      /api/v1/tasks [PUT]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.UpdateTask(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// DeleteTasks godoc
// @Summary     Delete tasks
// @Description option "delete" removes task.id; option "deleteAll" clears the current user's list.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body deleteTasksReq true "Delete option"
// @Success     200  {object} deleteTasksResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Not authenticated"
// @Failure     404  {object} response.Resp "Task not found"
// @Router      /api/v1/tasks [DELETE]
func (h *handler) DeleteTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteTasksReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.DeleteTasks(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteTasksResp{Deleted: output.Deleted})
}
