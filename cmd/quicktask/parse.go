package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quicktask/internal/planner"
	"quicktask/internal/planner/heuristic"
)

func newParseCmd() *cobra.Command {
	var (
		conversation string
		gate         string
		regenerated  bool
	)

	cmd := &cobra.Command{
		Use:   "parse [reply-file]",
		Short: "Normalize a saved model reply without calling the LLM",
		Long: `Reads a raw model reply from a file (or stdin when no file or "-" is given)
and prints the outcome the planner would produce for it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			reply, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			g := planner.OverrideGate(gate)
			if g != planner.GateCore && g != planner.GateMinimum {
				return fmt.Errorf("unknown gate %q", gate)
			}
			text := heuristic.ConversationText(nil, conversation)

			var out planner.Outcome
			if regenerated {
				out = planner.NormalizeRegenerated(reply, text, g)
			} else {
				out = planner.Normalize(reply, text, g)
			}
			renderOutcome(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&conversation, "conversation", "c", "", "user text the override gate should consider")
	cmd.Flags().StringVar(&gate, "gate", string(planner.GateCore), "override gate: core or minimum")
	cmd.Flags().BoolVar(&regenerated, "regenerated", false, "use regeneration summaries")
	return cmd
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
