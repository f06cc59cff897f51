package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateReq binds and validates the generate request body.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "processGenerateReq: %v", err)
		return req, errInvalidPrompt
	}
	return req, req.validate()
}

// processRegenerateReq binds the regenerate request body. The prompt may be blank.
func (h *handler) processRegenerateReq(c *gin.Context) (regenerateReq, error) {
	var req regenerateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "processRegenerateReq: %v", err)
		return req, errInvalidPrompt
	}
	return req, nil
}

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "processChatReq: %v", err)
		return req, errInvalidPrompt
	}
	return req, req.validate()
}

func (h *handler) processValidateEditedReq(c *gin.Context) (validateEditedReq, error) {
	var req validateEditedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSaveGeneratedReq(c *gin.Context) (saveGeneratedReq, error) {
	var req saveGeneratedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil || req == nil {
		h.l.Debugf(c.Request.Context(), "processCreateTaskReq: %v", err)
		return nil, errInvalidTaskBody
	}
	return req, nil
}

func (h *handler) processUpdateTaskReq(c *gin.Context) (updateTaskReq, error) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "processUpdateTaskReq: %v", err)
		return req, errInvalidTaskBody
	}
	return req, nil
}

// processDeleteTasksReq binds the body of a DELETE. An empty option is rejected here.
func (h *handler) processDeleteTasksReq(c *gin.Context) (deleteTasksReq, error) {
	var req deleteTasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "processDeleteTasksReq: %v", err)
		return req, errInvalidTaskBody
	}
	if req.Option == "" {
		return req, errMissingOption
	}
	return req, nil
}
