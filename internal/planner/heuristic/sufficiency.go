package heuristic

import (
	"regexp"
	"strings"

	"quicktask/internal/model"
)

var (
	goalRe = regexp.MustCompile(`(?i)\b(goals?|plans?|planning|learn|learning|build|create|start|launch|improve|achieve|prepare|study|master|become|finish|write|develop|get better|want to|trying to|need to)\b`)

	timeframeRe = regexp.MustCompile(`(?i)(\b\d+\s*(minutes?|mins?|hours?|hrs?|days?|weeks?|months?|years?)\b|\b(daily|weekly|monthly|day|days|week|weeks|month|months|year|years|deadline|due|tomorrow|tonight|weekend|timeline|timeframe|asap)\b|\bby (monday|tuesday|wednesday|thursday|friday|saturday|sunday|next|the end)\b)`)

	backgroundRe = regexp.MustCompile(`(?i)\b(beginner|intermediate|advanced|expert|novice|experience|experienced|familiar|background|basics|some knowledge|already know|used to|no prior|new to|from scratch|skill level)\b`)

	methodRe = regexp.MustCompile(`(?i)\b(learn by|learning by|prefer|preference|videos?|courses?|tutorials?|books?|practice|practicing|hands-on|hands on|project-based|projects|reading|youtube|bootcamp|mentor|classes|workshops?|documentation|step by step)\b`)

	noExperienceRe = regexp.MustCompile(`(?i)(\bno (prior |previous )?experience\b|\bnever (done|tried|used|learned|studied)\b|\b(complete|total|absolute) beginner\b|\bzero experience\b|\bno background\b|\bdon't know (anything|much)\b)`)
)

// ConversationText lower-cases and joins every turn's content followed by the current prompt.
func ConversationText(history []model.ConversationTurn, prompt string) string {
	parts := make([]string, 0, len(history)+1)
	for _, turn := range history {
		parts = append(parts, turn.Content)
	}
	parts = append(parts, prompt)
	return strings.ToLower(strings.Join(parts, "\n"))
}

// HasCoreInfo requires goal, timeframe, background and method signals to all be present.
func HasCoreInfo(text string) bool {
	return goalRe.MatchString(text) &&
		timeframeRe.MatchString(text) &&
		backgroundRe.MatchString(text) &&
		methodRe.MatchString(text)
}

// HasMinimumInfo requires goal and timeframe, plus either a background signal or an
// explicit statement of having no experience.
func HasMinimumInfo(text string) bool {
	return goalRe.MatchString(text) &&
		timeframeRe.MatchString(text) &&
		(backgroundRe.MatchString(text) || noExperienceRe.MatchString(text))
}
