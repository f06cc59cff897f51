package usecase

import (
	"context"
	"strings"

	"quicktask/internal/model"
	"quicktask/internal/planner"
	"quicktask/internal/planner/heuristic"
)

// Generate runs one conversation pass: a single model call, then classification
// into clarification questions or a task list.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input planner.GenerateInput) (planner.Outcome, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return planner.Outcome{}, planner.ErrEmptyPrompt
	}

	uc.l.Infof(ctx, "Generate: user=%s history_turns=%d prompt_length=%d", sc.UserID, len(input.History), len(prompt))

	reply, err := uc.complete(ctx, systemPrompt, input.History, prompt)
	if err != nil {
		return planner.Outcome{}, err
	}

	out := planner.Normalize(reply, heuristic.ConversationText(input.History, prompt), uc.cfg.OverrideGate)
	out.RegenerationID = uc.newID()

	uc.logOutcome(ctx, "Generate", out)
	return out, nil
}

// Regenerate replays the conversation for an alternative plan. A blank prompt
// reuses the last user turn, which is then dropped from the history.
func (uc *implUseCase) Regenerate(ctx context.Context, sc model.Scope, input planner.RegenerateInput) (planner.Outcome, error) {
	if !sc.IsAuthenticated() {
		return planner.Outcome{}, planner.ErrUnauthenticated
	}

	prompt, history := replayPrompt(input.Prompt, input.History)
	if prompt == "" {
		return planner.Outcome{}, planner.ErrEmptyPrompt
	}

	uc.l.Infof(ctx, "Regenerate: user=%s previous=%s history_turns=%d", sc.UserID, input.PreviousRegenerationID, len(history))

	reply, err := uc.complete(ctx, systemPrompt, history, prompt)
	if err != nil {
		return planner.Outcome{}, err
	}

	out := planner.NormalizeRegenerated(reply, heuristic.ConversationText(history, prompt), uc.cfg.OverrideGate)
	out.RegenerationID = uc.newID()

	uc.logOutcome(ctx, "Regenerate", out)
	return out, nil
}

// Chat returns free-form planning advice without any parsing.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input planner.ChatInput) (planner.ChatOutput, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return planner.ChatOutput{}, planner.ErrEmptyPrompt
	}

	uc.l.Debugf(ctx, "Chat: user=%s prompt_length=%d", sc.UserID, len(prompt))

	reply, err := uc.complete(ctx, chatSystemPrompt, nil, prompt)
	if err != nil {
		return planner.ChatOutput{}, err
	}
	return planner.ChatOutput{Reply: strings.TrimSpace(reply)}, nil
}

func (uc *implUseCase) logOutcome(ctx context.Context, op string, out planner.Outcome) {
	if out.ClarificationNeeded {
		uc.l.Infof(ctx, "%s: clarification requested questions=%d", op, len(out.Clarifications))
		return
	}
	uc.l.Infof(ctx, "%s: parsed tasks=%d", op, len(out.Tasks))
}
