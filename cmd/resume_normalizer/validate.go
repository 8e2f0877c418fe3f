package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON file against the canonical resume schema",
		Long:  "Validate a canonical Resume JSON file and print a report listing every violation found.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}

			report, err := a.pipeline.ValidateResume(json.RawMessage(data))
			if err != nil {
				return fmt.Errorf("failed to validate resume: %w", err)
			}

			if a.verbose {
				a.printer.PrintValidationReport(report)
			}
			if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.Valid {
				return fmt.Errorf("resume does not validate: %d violation(s)", len(report.Violations))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "Path to the resume JSON file")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
