package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"quicktask/internal/planner"
)

var errInvalidTasks = errors.New("task file failed validation")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [tasks-file]",
		Short: "Validate a YAML or JSON list of task records",
		Long: `Checks every record the way the save endpoints do and lists each failure.
JSON is accepted since it is valid YAML. Reads stdin when no file or "-" is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			var records []any
			if err := yaml.Unmarshal([]byte(data), &records); err != nil {
				return fmt.Errorf("parse tasks: %w", err)
			}

			drafts, err := planner.ValidateBatch(records)
			if err != nil {
				var batchErr *planner.BatchValidationError
				if errors.As(err, &batchErr) {
					renderValidationErrors(cmd.OutOrStdout(), batchErr)
					return errInvalidTasks
				}
				return err
			}

			renderTasks(cmd.OutOrStdout(), drafts)
			return nil
		},
	}
}
