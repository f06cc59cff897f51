package usecase

import (
	"context"
	"fmt"
	"strings"

	"quicktask/internal/model"
	"quicktask/internal/planner"
	"quicktask/pkg/llmprovider"
)

// complete performs the single model call of a pass, bounded by the configured timeout.
func (uc *implUseCase) complete(ctx context.Context, system string, history []model.ConversationTurn, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.LLMTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(ctx, buildRequest(system, history, prompt, uc.cfg.Temperature))
	if err != nil {
		uc.l.Errorf(ctx, "planner.usecase.complete: %v", err)
		return "", fmt.Errorf("%w: %w", planner.ErrLLMCallFailed, err)
	}
	if resp == nil {
		return "", planner.ErrLLMCallFailed
	}

	uc.l.Debugf(ctx, "planner.usecase.complete: provider=%s model=%s", resp.ProviderName, resp.ModelName)
	return resp.Text(), nil
}

func buildRequest(system string, history []model.ConversationTurn, prompt string, temperature float64) *llmprovider.Request {
	sys := llmprovider.TextMessage(llmprovider.RoleSystem, system)

	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, turn := range history {
		role := llmprovider.RoleUser
		if turn.Role == model.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		messages = append(messages, llmprovider.TextMessage(role, turn.Content))
	}
	messages = append(messages, llmprovider.TextMessage(llmprovider.RoleUser, prompt))

	return &llmprovider.Request{
		SystemInstruction: &sys,
		Messages:          messages,
		Temperature:       temperature,
	}
}

// replayPrompt picks the prompt for a regeneration pass. When the given prompt is
// blank the most recent user turn is used and removed from the returned history.
func replayPrompt(prompt string, history []model.ConversationTurn) (string, []model.ConversationTurn) {
	if p := strings.TrimSpace(prompt); p != "" {
		return p, history
	}

	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != model.RoleUser {
			continue
		}
		rest := make([]model.ConversationTurn, 0, len(history)-1)
		rest = append(rest, history[:i]...)
		rest = append(rest, history[i+1:]...)
		return strings.TrimSpace(history[i].Content), rest
	}
	return "", history
}
