package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"quicktask/config"
	"quicktask/internal/model"
	"quicktask/internal/planner"
	"quicktask/internal/planner/usecase"
	"quicktask/pkg/llmprovider"
	"quicktask/pkg/log"
)

type planOptions struct {
	historyPath string
	gate        string
	regenerate  bool
	verbose     bool
}

func newPlanCmd() *cobra.Command {
	opts := planOptions{}

	cmd := &cobra.Command{
		Use:   "plan [goal]",
		Short: "Ask the AI planner for a task list",
		Long: `Sends the goal, plus an optional conversation history, to the configured LLM
and prints either the clarifying questions or the normalized task list.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVar(&opts.historyPath, "history", "", "YAML file with prior conversation turns (role, content)")
	cmd.Flags().StringVar(&opts.gate, "gate", "", "override gate: core or minimum (defaults to config)")
	cmd.Flags().BoolVar(&opts.regenerate, "regenerate", false, "ask for an alternative plan")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log provider activity")
	return cmd
}

func runPlan(cmd *cobra.Command, prompt string, opts planOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         log.ModeDebug,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	history, err := loadHistory(opts.historyPath)
	if err != nil {
		return err
	}

	gate := planner.OverrideGate(cfg.Planner.OverrideGate)
	if opts.gate != "" {
		gate = planner.OverrideGate(opts.gate)
	}
	if gate != planner.GateCore && gate != planner.GateMinimum {
		return fmt.Errorf("unknown gate %q", gate)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return err
	}
	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)

	uc := usecase.New(logger, llm, nil, nil, planner.Config{
		LLMTimeout:   cfg.Planner.LLMTimeout,
		OverrideGate: gate,
		Temperature:  cfg.Planner.Temperature,
	})

	var out planner.Outcome
	if opts.regenerate {
		// Regeneration is limited to signed-in users on the API.
		sc := model.Scope{UserID: "cli"}
		out, err = uc.Regenerate(ctx, sc, planner.RegenerateInput{Prompt: prompt, History: history})
	} else {
		out, err = uc.Generate(ctx, model.Scope{}, planner.GenerateInput{Prompt: prompt, History: history})
	}
	if err != nil {
		return err
	}

	renderOutcome(cmd.OutOrStdout(), out)
	return nil
}

func loadHistory(path string) ([]model.ConversationTurn, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var turns []model.ConversationTurn
	if err := yaml.Unmarshal(data, &turns); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	for i, t := range turns {
		switch t.Role {
		case model.RoleUser, model.RoleAssistant:
		case "model":
			turns[i].Role = model.RoleAssistant
		default:
			return nil, fmt.Errorf("history turn %d: unknown role %q", i+1, t.Role)
		}
	}
	return turns, nil
}
