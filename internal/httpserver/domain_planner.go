package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"quicktask/internal/middleware"
	plannerHTTP "quicktask/internal/planner/delivery/http"
	plannerRepo "quicktask/internal/planner/repository/postgre"
	plannerUC "quicktask/internal/planner/usecase"
)

// setupPlannerDomain initializes the planner domain and registers its routes.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := plannerRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := plannerUC.New(srv.l, srv.llm, repo, srv.calendar, srv.plannerConfig)

	// 3. HTTP Handler
	h := plannerHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/ai-generate, /api/v1/ai-chat, /api/v1/tasks/*
	plannerHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar == nil || srv.plannerConfig.CalendarID == "" {
		srv.l.Infof(ctx, "Planner domain registered (calendar sync disabled)")
	} else {
		srv.l.Infof(ctx, "Planner domain registered (calendar sync to %s)", srv.plannerConfig.CalendarID)
	}
	return nil
}
