package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-normalizer/internal/types"
)

type validateOutputResult struct {
	Report   *types.ValidationReport     `json:"report"`
	Response *types.AIGenerationResponse `json:"response,omitempty"`
}

func newValidateOutputCmd(a *app) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "validate-output",
		Short: "Validate a text generator reply against the generation contract",
		Long:  "Strip markdown fences from a generator reply, decode it and check it against the generation schema (1 to 3 options, each with non-empty text).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}

			resp, report, err := a.pipeline.ValidateGenerationOutput(string(data))
			if err != nil {
				return fmt.Errorf("failed to validate output: %w", err)
			}

			if a.verbose {
				a.printer.PrintValidationReport(report)
			}
			if err := writeJSON(cmd.OutOrStdout(), validateOutputResult{Report: report, Response: resp}); err != nil {
				return err
			}
			if !report.Valid {
				return fmt.Errorf("generation output is malformed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "Path to the raw generator reply")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
