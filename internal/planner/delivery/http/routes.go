package http

import (
	"github.com/gin-gonic/gin"

	"quicktask/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// AI endpoints are rate limited; generation works anonymously, everything else needs a session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	ai := rg.Group("/ai-generate")
	{
		ai.POST("", mw.OptionalAuth(), mw.RateLimit(), h.Generate)
		ai.POST("/regenerate", mw.Auth(), mw.RateLimit(), h.Regenerate)
	}

	rg.POST("/ai-chat", mw.OptionalAuth(), mw.RateLimit(), h.Chat)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.Auth(), h.ListTasks)
		tasks.POST("", mw.Auth(), h.CreateTask)
		tasks.PUT("", mw.Auth(), h.UpdateTask)
		tasks.DELETE("", mw.Auth(), h.DeleteTasks)

		tasks.POST("/validate-edited", mw.Auth(), h.ValidateEdited)
		tasks.POST("/save-generated", mw.Auth(), h.SaveGenerated)
	}
}
