package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quicktask",
		Short: "QuickTask turns goals into actionable task lists",
		Long: `QuickTask talks to the configured LLM providers and normalizes their replies
into either clarifying questions or a validated task list.

The parse and validate commands work offline on saved replies and task files.`,
		SilenceUsage: true,
	}

	root.AddCommand(newPlanCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newCalendarAuthCmd())
	return root
}
