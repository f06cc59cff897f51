package heuristic

import "strings"

// ClarificationKeywords are matched as lower-case substrings of an assistant reply.
var ClarificationKeywords = []string{
	"can you tell me more",
	"could you clarify",
	"to help you best",
	"could you provide",
	"help me understand",
	"clarify",
	"a few questions",
	"before i can generate tasks",
}

// IsClarification reports whether text reads like the assistant asking for more information.
func IsClarification(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, k := range ClarificationKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
