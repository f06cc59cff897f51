package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quicktask/internal/model"
	"quicktask/internal/planner"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28")).
			Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	priorityStyles = map[model.Priority]lipgloss.Style{
		model.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		model.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		model.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	}
)

func renderOutcome(w io.Writer, out planner.Outcome) {
	if out.ClarificationNeeded {
		fmt.Fprintln(w, titleStyle.Render("Need a little more detail"))
		if len(out.Clarifications) == 0 {
			fmt.Fprintln(w, out.ClarificationText)
			return
		}
		for _, q := range out.Clarifications {
			fmt.Fprintf(w, "  ? %s\n", q)
		}
		return
	}

	renderTasks(w, out.Tasks)
	if out.SummaryMessage != "" {
		fmt.Fprintln(w, summaryStyle.Render(out.SummaryMessage))
	}
	if out.RegenerationID != "" {
		fmt.Fprintln(w, mutedStyle.Render("regeneration id: "+out.RegenerationID))
	}
}

func renderTasks(w io.Writer, tasks []model.TaskDraft) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Tasks (%d)", len(tasks))))
	for i, t := range tasks {
		prio := priorityStyles[t.Priority].Render(string(t.Priority))
		fmt.Fprintf(w, "%2d. %s [%s]\n", i+1, t.Name, prio)

		var meta []string
		if t.Status != model.StatusPending {
			meta = append(meta, string(t.Status))
		}
		if t.DueDate != "" {
			meta = append(meta, "due "+t.DueDate)
		}
		if t.EstimatedTime != nil {
			meta = append(meta, strconv.FormatFloat(*t.EstimatedTime, 'f', -1, 64)+"h")
		}
		if t.Category != "" {
			meta = append(meta, t.Category)
		}
		if t.Description != "" {
			fmt.Fprintf(w, "    %s\n", t.Description)
		}
		if len(meta) > 0 {
			fmt.Fprintf(w, "    %s\n", mutedStyle.Render(strings.Join(meta, " · ")))
		}
	}
}

func renderValidationErrors(w io.Writer, err *planner.BatchValidationError) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("%d invalid task record(s)", len(err.Errors))))
	for _, msg := range err.Messages() {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
}
