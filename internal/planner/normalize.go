package planner

import (
	"strings"

	"quicktask/internal/model"
	"quicktask/internal/planner/heuristic"
)

const (
	// ApologyText stands in for a clarification request with no usable text.
	ApologyText = "Sorry, I couldn't generate tasks for that prompt. Could you provide more detail?"

	DefaultSummary     = "You've got this! Start with the first task and build momentum from there."
	FallbackSummary    = "Here's a simple first step to get you going. Share a bit more detail for a fuller plan."
	RegeneratedSummary = "Here's another approach you can try!"

	regeneratedSuffix = " (Regenerated)"
)

// FallbackTask is surfaced when a reply yields no valid task.
func FallbackTask() model.TaskDraft {
	return model.TaskDraft{
		Name:        "Start working towards your goal",
		Description: "Break your goal into small steps and complete the first one today.",
		Priority:    model.PriorityMedium,
		Status:      model.StatusPending,
	}
}

// Passes reports whether the accumulated conversation carries enough context
// to override a clarification request.
func (g OverrideGate) Passes(conversation string) bool {
	if g == GateMinimum {
		return heuristic.HasMinimumInfo(conversation)
	}
	return heuristic.HasCoreInfo(conversation)
}

// Normalize classifies one raw model reply and turns it into an Outcome.
// conversation is the lower-cased text produced by heuristic.ConversationText.
func Normalize(reply, conversation string, gate OverrideGate) Outcome {
	return normalize(reply, conversation, gate, DefaultSummary)
}

// NormalizeRegenerated is Normalize for a regeneration pass. Task outcomes get a
// summary that reads as an alternative to the previous plan.
func NormalizeRegenerated(reply, conversation string, gate OverrideGate) Outcome {
	out := normalize(reply, conversation, gate, RegeneratedSummary)
	if len(out.Tasks) > 0 && !strings.Contains(strings.ToLower(out.SummaryMessage), "another") {
		out.SummaryMessage += regeneratedSuffix
	}
	return out
}

func normalize(reply, conversation string, gate OverrideGate, defaultSummary string) Outcome {
	cleaned := heuristic.StripCodeFence(reply)

	clarify := heuristic.IsClarification(cleaned)
	var questions []string
	if clarify {
		questions = heuristic.ExtractBulletLines(cleaned)
		if len(questions) > 0 && gate.Passes(conversation) {
			clarify = false
		}
	}

	if clarify {
		if len(questions) == 0 {
			// A single unbulleted question is still something the user can answer.
			text := cleaned
			if text == "" {
				text = ApologyText
			}
			return Outcome{ClarificationNeeded: true, ClarificationText: text}
		}
		return Outcome{
			ClarificationNeeded: true,
			ClarificationText:   cleaned,
			Clarifications:      questions,
		}
	}

	return tasksOutcome(cleaned, defaultSummary)
}

func tasksOutcome(cleaned, defaultSummary string) Outcome {
	parsed, summary := heuristic.ParseTasks(cleaned)

	tasks := make([]model.TaskDraft, 0, len(parsed))
	for _, d := range parsed {
		if ValidateDraft(d) != nil {
			continue
		}
		tasks = append(tasks, d)
	}

	if len(tasks) == 0 {
		return Outcome{
			Tasks:          []model.TaskDraft{FallbackTask()},
			SummaryMessage: FallbackSummary,
		}
	}

	if summary == "" {
		summary = defaultSummary
	}
	return Outcome{Tasks: tasks, SummaryMessage: summary}
}
