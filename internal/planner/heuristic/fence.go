package heuristic

import (
	"regexp"
	"strings"
)

var (
	openingFenceRe = regexp.MustCompile("^```[a-zA-Z]*\\n?")
	closingFenceRe = regexp.MustCompile("```$")
)

// StripCodeFence trims raw and removes a leading ```lang fence and a trailing ``` fence.
// Text that does not start with a fence is only trimmed.
func StripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = openingFenceRe.ReplaceAllString(cleaned, "")
	cleaned = closingFenceRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
