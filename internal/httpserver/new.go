package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"quicktask/internal/middleware"
	"quicktask/internal/planner"
	"quicktask/internal/session"
	"quicktask/pkg/gcalendar"
	"quicktask/pkg/llmprovider"
	"quicktask/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	postgresDB *sql.DB

	// Planner domain
	llm           llmprovider.Generator
	calendar      gcalendar.Calendar
	plannerConfig planner.Config

	// Auth & throttling
	sessionConfig    session.Config
	middlewareConfig middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB

	LLM           llmprovider.Generator
	Calendar      gcalendar.Calendar // optional
	PlannerConfig planner.Config

	SessionConfig    session.Config
	MiddlewareConfig middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		postgresDB:       cfg.PostgresDB,
		llm:              cfg.LLM,
		calendar:         cfg.Calendar,
		plannerConfig:    cfg.PlannerConfig,
		sessionConfig:    cfg.SessionConfig,
		middlewareConfig: cfg.MiddlewareConfig,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.llm == nil {
		return errors.New("llm generator is required")
	}
	return nil
}
