package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-normalizer/internal/pipeline"
)

func newParseJobCmd(a *app) *cobra.Command {
	var (
		inputFile string
		mimeType  string
	)

	cmd := &cobra.Command{
		Use:   "parse-job",
		Short: "Segment a job posting into a structured JobDescriptionRecord JSON",
		Long:  "Extract the text of a job posting document and segment it heuristically. Parsing never fails; missing fields are omitted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := pipeline.LoadDocument(inputFile, mimeType)
			if err != nil {
				return err
			}

			record, err := a.pipeline.IngestJobDescription(cmd.Context(), doc)
			if err != nil {
				return fmt.Errorf("failed to ingest job posting: %w", err)
			}

			if a.verbose {
				a.printer.PrintJobDescription(record)
			}
			return writeJSON(cmd.OutOrStdout(), record)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "in", "i", "", "Path to the job posting document")
	cmd.Flags().StringVar(&mimeType, "mime", "", "MIME type of the input (default: detected)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
