package heuristic

import (
	"regexp"
	"strings"

	"quicktask/internal/model"
)

var (
	listStartRe = regexp.MustCompile(`^(\d+\.|[-•*])` + ws + `+`)
	taskLineRe  = regexp.MustCompile(`^(\d+\.|[-•*])` + ws + `+(.+?)(?:` + ws + `*\((High|Medium|Low)\))?(?:` + ws + `*-` + ws + `*(.+))?$`)
)

type scanState int

const (
	outsideList scanState = iota
	inList
)

// ParseTasks extracts task drafts from a reply that is known not to be a clarification,
// plus the trailing summary text found after the last task.
//
// Drafts may carry an empty name when a list marker is followed only by whitespace;
// callers must validate before surfacing them.
func ParseTasks(cleaned string) ([]model.TaskDraft, string) {
	lines := nonBlankLines(cleaned)
	tasks := scanLines(lines)
	return tasks, summaryAfter(lines, tasks)
}

func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// scanLines runs the list state machine. A blank line closes the current list,
// although ParseTasks never passes one in.
func scanLines(lines []string) []model.TaskDraft {
	var (
		tasks []model.TaskDraft
		state = outsideList
	)

	for _, line := range lines {
		switch {
		case listStartRe.MatchString(line):
			state = inList
			tasks = append(tasks, parseTaskLine(line))
		case line == "":
			state = outsideList
		case state == inList && len(tasks) > 0:
			last := &tasks[len(tasks)-1]
			if last.Description != "" {
				last.Description += " "
			}
			last.Description += line
		}
	}

	return tasks
}

func parseTaskLine(line string) model.TaskDraft {
	m := taskLineRe.FindStringSubmatch(line)
	if m == nil {
		return model.TaskDraft{
			Name:     listStartRe.ReplaceAllString(line, ""),
			Priority: model.PriorityMedium,
			Status:   model.StatusPending,
		}
	}

	draft := model.TaskDraft{
		Name:        strings.TrimSpace(m[2]),
		Priority:    model.PriorityMedium,
		Status:      model.StatusPending,
		Description: strings.TrimSpace(m[4]),
	}
	if m[3] != "" {
		draft.Priority = model.Priority(m[3])
	}
	return draft
}

// summaryAfter joins every line after the first one that mentions the last task's name.
func summaryAfter(lines []string, tasks []model.TaskDraft) string {
	if len(tasks) == 0 {
		return ""
	}
	name := tasks[len(tasks)-1].Name
	for i, l := range lines {
		if strings.Contains(l, name) {
			return strings.TrimSpace(strings.Join(lines[i+1:], " "))
		}
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}
