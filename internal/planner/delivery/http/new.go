package http

import (
	"github.com/gin-gonic/gin"

	"quicktask/internal/planner"
	"quicktask/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	Regenerate(c *gin.Context)
	Chat(c *gin.Context)
	ValidateEdited(c *gin.Context)
	SaveGenerated(c *gin.Context)

	ListTasks(c *gin.Context)
	CreateTask(c *gin.Context)
	UpdateTask(c *gin.Context)
	DeleteTasks(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
