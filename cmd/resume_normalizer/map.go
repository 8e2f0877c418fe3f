package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newMapCmd(a *app) *cobra.Command {
	var (
		inputFile string
		canonical bool
		validate  bool
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map structured resume JSON to the universal resume shape",
		Long: `Map resume JSON in any supported shape (canonical, universal, JSON Resume and similar
third-party exports, or a single experience entry) to UniversalResumeData.
With --canonical the canonical Resume JSON view is printed instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}

			mapped, err := a.pipeline.MapResumeJSON(data)
			if err != nil {
				return fmt.Errorf("failed to map resume: %w", err)
			}

			if a.verbose {
				a.printer.PrintUniversalResume(mapped.Universal)
			}

			if validate {
				report, err := a.pipeline.ValidateResume(mapped.Canonical)
				if err != nil {
					return err
				}
				if !report.Valid {
					a.printer.PrintValidationReport(report)
					return fmt.Errorf("mapped resume does not validate: %d violation(s)", len(report.Violations))
				}
			}

			if canonical {
				return writeJSON(cmd.OutOrStdout(), mapped.Canonical)
			}
			return writeJSON(cmd.OutOrStdout(), mapped.Universal)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "Path to the resume JSON file")
	cmd.Flags().BoolVar(&canonical, "canonical", false, "Print the canonical Resume JSON view")
	cmd.Flags().BoolVar(&validate, "validate", false, "Fail when the canonical view violates the resume schema")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
