package usecase

import (
	"time"

	"github.com/google/uuid"

	"quicktask/internal/planner"
	"quicktask/internal/planner/repository"
	"quicktask/pkg/datemath"
	"quicktask/pkg/gcalendar"
	"quicktask/pkg/llmprovider"
	pkgLog "quicktask/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      llmprovider.Generator
	repo     repository.TaskRepository
	calendar gcalendar.Calendar
	cfg      planner.Config
	loc      *time.Location
	dates    *datemath.Resolver
	now      func() time.Time
	newID    func() string
}

// New creates a new planner UseCase instance. repo and calendar may be nil when
// the caller only needs generation (the CLI does this).
func New(
	l pkgLog.Logger,
	llm llmprovider.Generator,
	repo repository.TaskRepository,
	calendar gcalendar.Calendar,
	cfg planner.Config,
) *implUseCase {
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = planner.DefaultLLMTimeout
	}
	if cfg.OverrideGate == "" {
		cfg.OverrideGate = planner.GateCore
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = planner.DefaultTemperature
	}

	loc := time.UTC
	if cfg.Timezone != "" {
		if tz, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = tz
		}
	}

	return &implUseCase{
		l:        l,
		llm:      llm,
		repo:     repo,
		calendar: calendar,
		cfg:      cfg,
		loc:      loc,
		dates:    datemath.NewResolver(loc),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}
