package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"quicktask/config"
	"quicktask/internal/httpserver"
	"quicktask/internal/middleware"
	"quicktask/internal/planner"
	"quicktask/internal/session"
	"quicktask/pkg/gcalendar"
	"quicktask/pkg/llmprovider"
	"quicktask/pkg/log"
)

// @title       QuickTask Planner API
// @description AI task planning: conversational generation, validation and saving of task batches.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting QuickTask planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open postgres: ", err)
		return
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warnf(ctx, "Postgres not reachable yet, /ready will report it: %v", err)
	}
	cancel()

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)

	// 5. Google Calendar (optional)
	var calendar gcalendar.Calendar
	calendarID := ""
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			calendarID = cfg.GoogleCalendar.CalendarID
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		LLM:         llm,
		Calendar:    calendar,
		PlannerConfig: planner.Config{
			LLMTimeout:   cfg.Planner.LLMTimeout,
			OverrideGate: planner.OverrideGate(cfg.Planner.OverrideGate),
			Temperature:  cfg.Planner.Temperature,
			CalendarID:   calendarID,
			Timezone:     cfg.GoogleCalendar.Timezone,
		},
		SessionConfig: session.Config{
			CacheSize: cfg.Session.CacheSize,
			CacheTTL:  cfg.Session.CacheTTL,
		},
		MiddlewareConfig: middleware.Config{
			CookieName:       cfg.Session.CookieName,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
			TrackedClients:   cfg.RateLimit.TrackedClients,
			TrackedLifetime:  cfg.RateLimit.TrackedLifetime,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
